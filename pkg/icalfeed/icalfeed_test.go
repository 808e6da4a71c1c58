package icalfeed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"

	"mcal/pkg/recurrence"
)

func TestRRule(t *testing.T) {
	until := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	got, err := RRule(recurrence.Weekly, mo.Some(until))
	require.NoError(t, err)

	opt, err := rrule.StrToROption(got)
	require.NoError(t, err)
	assert.Equal(t, rrule.WEEKLY, opt.Freq)
	assert.Equal(t, 2026, opt.Until.Year())
	assert.Equal(t, time.March, opt.Until.Month())
	assert.Equal(t, 1, opt.Until.Day())

	_, err = RRule(recurrence.None, mo.None[time.Time]())
	assert.ErrorIs(t, err, recurrence.ErrUnknownFrequency)
}

func TestEncode(t *testing.T) {
	desc := "standup"
	color := "#3366ff"
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	feed := Feed{
		Name:   "Work",
		Color:  &color,
		Domain: "mcal.local",
		Events: []Event{
			{
				ID:          1,
				Title:       "Daily sync",
				Description: &desc,
				Start:       time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
				End:         time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
				Frequency:   recurrence.Daily,
			},
			{
				ID:        2,
				Title:     "Holiday",
				Start:     time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
				End:       time.Date(2024, 12, 25, 23, 59, 59, 999999000, time.UTC),
				AllDay:    true,
				Frequency: recurrence.Yearly,
				Until:     mo.Some(time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)),
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, feed, now))
	out := buf.String()

	assert.Contains(t, out, "DTSTART:20240101T090000\r\n")
	assert.Contains(t, out, "DTEND:20240101T091500\r\n")
	assert.Contains(t, out, "RRULE:FREQ=DAILY")
	assert.Contains(t, out, "UID:event-2@mcal.local")
	assert.True(t, strings.Contains(out, "DTEND;VALUE=DATE:20241226"), out)

	cal, err := ical.NewDecoder(strings.NewReader(out)).Decode()
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)

	summary, err := events[0].Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Daily sync", summary)

	rule := events[1].Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rule)
	opt, err := rrule.StrToROption(rule.Value)
	require.NoError(t, err)
	assert.Equal(t, rrule.YEARLY, opt.Freq)
	assert.Equal(t, 2030, opt.Until.Year())
}

func TestEncodeClampedSeries(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	monthEnd := Event{
		ID:        7,
		Title:     "Invoice run",
		Start:     time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
		Frequency: recurrence.Monthly,
		Until:     mo.Some(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)),
	}

	t.Run("rolling", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, Feed{Name: "Billing", Domain: "mcal.local", Events: []Event{monthEnd}}, now))
		out := buf.String()

		assert.NotContains(t, out, "RRULE")
		assert.Contains(t, out, "DTSTART:20240131T090000\r\n")
		assert.Contains(t, out, "RDATE:20240229T090000\r\n")
		assert.Contains(t, out, "RDATE:20240329T090000\r\n")
		assert.Contains(t, out, "RDATE:20240429T090000\r\n")
		assert.Equal(t, 3, strings.Count(out, "RDATE"))
	})

	t.Run("anchored", func(t *testing.T) {
		feed := Feed{
			Name:     "Billing",
			Domain:   "mcal.local",
			Events:   []Event{monthEnd},
			Expander: recurrence.NewExpander(recurrence.WithClampMode(recurrence.ClampAnchored)),
		}
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, feed, now))
		out := buf.String()

		assert.Contains(t, out, "RDATE:20240229T090000\r\n")
		assert.Contains(t, out, "RDATE:20240331T090000\r\n")
		assert.Contains(t, out, "RDATE:20240430T090000\r\n")
	})

	t.Run("leap day all-day", func(t *testing.T) {
		leap := Event{
			ID:        8,
			Title:     "Leap party",
			Start:     time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			End:       time.Date(2024, 2, 29, 23, 59, 59, 999999000, time.UTC),
			AllDay:    true,
			Frequency: recurrence.Yearly,
			Until:     mo.Some(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)),
		}
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, Feed{Name: "Fun", Domain: "mcal.local", Events: []Event{leap}}, now))
		out := buf.String()

		assert.NotContains(t, out, "RRULE")
		assert.Contains(t, out, "RDATE;VALUE=DATE:20250228\r\n")
		assert.Contains(t, out, "RDATE;VALUE=DATE:20260228\r\n")
	})

	t.Run("unbounded stops at the step cap", func(t *testing.T) {
		open := monthEnd
		open.Until = mo.None[time.Time]()
		feed := Feed{
			Name:     "Billing",
			Domain:   "mcal.local",
			Events:   []Event{open},
			Expander: recurrence.NewExpander(recurrence.WithMaxOccurrences(12)),
		}
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, feed, now))
		assert.Equal(t, 11, strings.Count(buf.String(), "RDATE"))
	})
}
