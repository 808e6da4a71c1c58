package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"mcal/internal/event"
	repo "mcal/internal/event/repository"
	"mcal/internal/model"
	"mcal/pkg/datemath"
)

// ListExpanded returns every occurrence overlapping the closed date range of
// input, sorted by start time. Events whose expansion was cut short still
// contribute what was collected and are reported in Warnings.
func (uc *implUseCase) ListExpanded(ctx context.Context, input event.ListExpandedInput) (event.ListExpandedOutput, error) {
	from := datemath.DateOf(input.StartDate)
	to := datemath.DateOf(input.EndDate)
	if from.After(to) {
		return event.ListExpandedOutput{}, event.ErrInvalidRange
	}

	key := uc.cacheKey(ctx, input)
	if out, ok := uc.cached(ctx, key); ok {
		return out, nil
	}

	candidates, err := uc.repo.ListCandidates(ctx, repo.ListCandidatesOptions{
		From:       from,
		To:         to,
		CalendarID: input.CalendarID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListExpanded ListCandidates: %v", err)
		return event.ListExpandedOutput{}, err
	}

	out := event.ListExpandedOutput{
		Occurrences: []model.Occurrence{},
		Warnings:    []event.Diagnostic{},
	}
	for _, c := range candidates {
		res := uc.expander.Expand(c.Event.Series(), from, to)
		for _, span := range res.Spans {
			out.Occurrences = append(out.Occurrences, model.NewOccurrence(c.Event, c.Color, span))
		}

		if res.Truncated {
			out.Warnings = append(out.Warnings, event.Diagnostic{
				EventID: c.Event.ID,
				Kind:    event.DiagnosticLimitExceeded,
				Message: fmt.Sprintf("expansion stopped after %d steps, later occurrences are missing", uc.expander.MaxOccurrences()),
			})
		}
		if res.Err != nil {
			out.Warnings = append(out.Warnings, event.Diagnostic{
				EventID: c.Event.ID,
				Kind:    event.DiagnosticInvariantViolation,
				Message: res.Err.Error(),
			})
		}
	}

	sort.SliceStable(out.Occurrences, func(i, j int) bool {
		return out.Occurrences[i].StartTime.Before(out.Occurrences[j].StartTime)
	})

	for _, d := range out.Warnings {
		uc.l.Warnf(ctx, "uc.ListExpanded: event %d: %s: %s", d.EventID, d.Kind, d.Message)
	}

	uc.store(ctx, key, out)
	return out, nil
}

// cacheKey returns "" when caching is disabled or unavailable.
func (uc *implUseCase) cacheKey(ctx context.Context, input event.ListExpandedInput) string {
	if uc.expanded == nil {
		return ""
	}

	scope := "all"
	if id, ok := input.CalendarID.Get(); ok {
		scope = strconv.FormatInt(id, 10)
	}
	key, err := uc.expanded.Key(ctx, datemath.FormatDate(input.StartDate), datemath.FormatDate(input.EndDate), scope)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ListExpanded Key: %v", err)
		return ""
	}
	return key
}

func (uc *implUseCase) cached(ctx context.Context, key string) (event.ListExpandedOutput, bool) {
	if key == "" {
		return event.ListExpandedOutput{}, false
	}

	raw, ok, err := uc.expanded.Get(ctx, key)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ListExpanded cache Get: %v", err)
		return event.ListExpandedOutput{}, false
	}
	if !ok {
		return event.ListExpandedOutput{}, false
	}

	var out event.ListExpandedOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		uc.l.Warnf(ctx, "uc.ListExpanded cache decode: %v", err)
		return event.ListExpandedOutput{}, false
	}
	return out, true
}

func (uc *implUseCase) store(ctx context.Context, key string, out event.ListExpandedOutput) {
	if key == "" {
		return
	}

	raw, err := json.Marshal(out)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ListExpanded cache encode: %v", err)
		return
	}
	if err := uc.expanded.Set(ctx, key, raw); err != nil {
		uc.l.Warnf(ctx, "uc.ListExpanded cache Set: %v", err)
	}
}
