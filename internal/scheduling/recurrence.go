// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package scheduling

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// Frequency enumerates the supported recurrence frequencies.
type Frequency string

const (
	FreqNone    Frequency = "none"
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
)

// Rule describes how a booking repeats. EndDate is inclusive and is ignored
// for FreqNone.
type Rule struct {
	Type    Frequency
	EndDate time.Time
}

// Day truncates a timestamp to midnight UTC, the canonical occurrence-date
// representation throughout the planner.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey returns the canonical string key for an occurrence date.
func DateKey(t time.Time) string {
	return Day(t).Format(time.DateOnly)
}

// Expand produces the ascending sequence of occurrence dates for a rule,
// starting at startDate and ending at the rule's end date inclusive. The
// expansion is pure and recomputed fresh on every call.
//
// Weekly rules fire on startDate's weekday; monthly rules fire on
// startDate's day-of-month, and months without that day are skipped rather
// than clamped to the month's end (a February series started on the 31st
// produces no February occurrence). An end date earlier than startDate
// yields an empty sequence, not an error; the planner above decides whether
// that is worth rejecting.
func Expand(startDate time.Time, rule Rule) ([]time.Time, error) {
	start := Day(startDate)

	var freq rrule.Frequency
	switch rule.Type {
	case FreqNone, "":
		return []time.Time{start}, nil
	case FreqDaily:
		freq = rrule.DAILY
	case FreqWeekly:
		freq = rrule.WEEKLY
	case FreqMonthly:
		freq = rrule.MONTHLY
	default:
		return nil, fmt.Errorf("unknown recurrence frequency %q", rule.Type)
	}

	end := Day(rule.EndDate)
	if rule.EndDate.IsZero() || end.Before(start) {
		return nil, nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    freq,
		Dtstart: start,
		Until:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("building recurrence rule: %w", err)
	}

	return r.All(), nil
}
