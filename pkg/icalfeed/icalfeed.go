// Package icalfeed renders calendars as RFC 5545 iCalendar feeds.
package icalfeed

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/samber/mo"
	"github.com/teambition/rrule-go"

	"mcal/pkg/recurrence"
)

const (
	productID      = "-//mcal//Calendar Export//EN"
	floatingLayout = "20060102T150405"
)

// Feed is one calendar to export.
type Feed struct {
	Name  string
	Color *string
	// Domain is appended to event ids to build globally unique UIDs.
	Domain string
	Events []Event
	// Expander lists the dates of series that an RRULE cannot express. The
	// zero value selects recurrence.NewExpander().
	Expander recurrence.Expander
}

// Event is one stored event. Start and End are naive local instants and are
// written as floating times.
type Event struct {
	ID          int64
	Title       string
	Description *string
	Location    *string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Frequency   recurrence.Frequency
	Until       mo.Option[time.Time]
}

// Encode writes f as a VCALENDAR with one VEVENT per event. now is used as
// the DTSTAMP of every event.
//
// Monthly series starting after the 28th and yearly series starting on
// Feb 29 are clamped to the end of short months, which RRULE cannot express.
// Those are written as explicit RDATEs from the expander instead, so an
// unbounded one is cut at the expander's step cap.
func Encode(w io.Writer, f Feed, now time.Time) error {
	exp := f.Expander
	if exp.MaxOccurrences() == 0 {
		exp = recurrence.NewExpander()
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropName, f.Name)
	if f.Color != nil && *f.Color != "" {
		cal.Props.SetText(ical.PropColor, *f.Color)
	}

	for _, ev := range f.Events {
		comp, err := newEvent(ev, f.Domain, now, exp)
		if err != nil {
			return err
		}
		cal.Children = append(cal.Children, comp)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("icalfeed: encode: %w", err)
	}
	return nil
}

func newEvent(ev Event, domain string, now time.Time, exp recurrence.Expander) (*ical.Component, error) {
	comp := ical.NewComponent(ical.CompEvent)
	comp.Props.SetText(ical.PropUID, fmt.Sprintf("event-%d@%s", ev.ID, domain))
	comp.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	comp.Props.SetText(ical.PropSummary, ev.Title)
	if ev.Description != nil && *ev.Description != "" {
		comp.Props.SetText(ical.PropDescription, *ev.Description)
	}
	if ev.Location != nil && *ev.Location != "" {
		comp.Props.SetText(ical.PropLocation, *ev.Location)
	}

	if ev.AllDay {
		// DTEND of a date-valued event is exclusive.
		comp.Props.SetDate(ical.PropDateTimeStart, ev.Start)
		comp.Props.SetDate(ical.PropDateTimeEnd, ev.End.AddDate(0, 0, 1))
	} else {
		comp.Props.Set(floating(ical.PropDateTimeStart, ev.Start))
		comp.Props.Set(floating(ical.PropDateTimeEnd, ev.End))
	}

	if clamped(ev) {
		addDates(comp, ev, exp)
	} else if ev.Frequency.IsRecurring() {
		rule, err := RRule(ev.Frequency, ev.Until)
		if err != nil {
			return nil, err
		}
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.Value = rule
		comp.Props.Set(prop)
	}

	return comp, nil
}

// clamped reports whether some step of ev lands on a day its start day does
// not exist in.
func clamped(ev Event) bool {
	switch ev.Frequency {
	case recurrence.Monthly:
		return ev.Start.Day() > 28
	case recurrence.Yearly:
		return ev.Start.Month() == time.February && ev.Start.Day() == 29
	default:
		return false
	}
}

// addDates writes every occurrence after the first as an RDATE.
func addDates(comp *ical.Component, ev Event, exp recurrence.Expander) {
	last := time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
	if u, ok := ev.Until.Get(); ok {
		last = u
	}

	res := exp.Expand(recurrence.Series{
		Start: ev.Start,
		End:   ev.End,
		Rule:  recurrence.Rule{Frequency: ev.Frequency, Until: ev.Until},
	}, ev.Start, last)

	for i, span := range res.Spans {
		if i == 0 {
			continue
		}
		if ev.AllDay {
			prop := ical.NewProp(ical.PropRecurrenceDates)
			prop.SetDate(span.Start)
			comp.Props.Add(prop)
			continue
		}
		comp.Props.Add(floating(ical.PropRecurrenceDates, span.Start))
	}
}

func floating(name string, t time.Time) *ical.Prop {
	prop := ical.NewProp(name)
	prop.Value = t.Format(floatingLayout)
	return prop
}

// RRule renders the RRULE value for a recurring frequency. Until becomes the
// last instant of its day.
func RRule(f recurrence.Frequency, until mo.Option[time.Time]) (string, error) {
	var freq rrule.Frequency
	switch f {
	case recurrence.Daily:
		freq = rrule.DAILY
	case recurrence.Weekly:
		freq = rrule.WEEKLY
	case recurrence.Monthly:
		freq = rrule.MONTHLY
	case recurrence.Yearly:
		freq = rrule.YEARLY
	default:
		return "", fmt.Errorf("icalfeed: %w: %s has no RRULE", recurrence.ErrUnknownFrequency, f)
	}

	opt := rrule.ROption{Freq: freq}
	if u, ok := until.Get(); ok {
		opt.Until = time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 0, time.UTC)
	}
	return opt.RRuleString(), nil
}
