package postgre

import (
	"strings"

	repo "mcal/internal/event/repository"
	"mcal/pkg/datemath"
	"mcal/pkg/recurrence"
)

const candidateSelect = `SELECT e.id, e.calendar_id, e.title, e.description, e.location,
	e.start_time, e.end_time, e.is_all_day, e.repeat_frequency, e.repeat_until,
	c.color AS calendar_color
FROM events AS e
JOIN calendars AS c ON c.id = e.calendar_id`

// buildCandidateQuery builds the pre-filter for a range query. Stored
// timestamps and dates are ISO strings, so date comparisons are lexical.
func buildCandidateQuery(opt repo.ListCandidatesOptions) (string, []any) {
	conditions := []string{
		"LEFT(e.start_time, 10) <= ?",
		"(e.repeat_frequency = ? OR e.repeat_until IS NULL OR e.repeat_until >= ?)",
	}
	args := []any{
		datemath.FormatDate(opt.To),
		recurrence.None.String(),
		datemath.FormatDate(opt.From),
	}

	if id, ok := opt.CalendarID.Get(); ok {
		conditions = append(conditions, "e.calendar_id = ?")
		args = append(args, id)
	}

	return candidateSelect + "\nWHERE " + strings.Join(conditions, " AND ") + "\nORDER BY e.id", args
}
