// Package recurrence evaluates recurring-activity rules against
// calendar dates. Evaluation is total: malformed rules never fail, they
// simply do not occur and leave a diagnostic with the caller.
package recurrence

import (
	"time"

	"github.com/kmarens/famsched/core/model"
)

// OccursOn reports whether the activity occurs on the given date. The
// second return value carries a skip reason when the rule could not be
// evaluated; an empty reason with false simply means "not this day".
func OccursOn(activity model.WeeklyActivity, date time.Time) (bool, string) {
	rule := activity.Recurrence
	switch rule.Kind {
	case model.RecurWeekly, "":
		// Day-list match is the whole rule.
		return onScheduledDay(activity.Schedule, date), ""
	case model.RecurBiweekly:
		if !onScheduledDay(activity.Schedule, date) {
			return false, ""
		}
		if rule.StartDate.IsZero() {
			return false, "biweekly rule has no start date"
		}
		// Week index is floored, not truncated, so parity stays
		// consistent for dates before the start date.
		days := int(midnight(date).Sub(midnight(rule.StartDate)).Hours() / 24)
		weeks := days / 7
		if days < 0 && days%7 != 0 {
			weeks--
		}
		return weeks%2 == 0, ""
	case model.RecurMonthly:
		if rule.MonthType != model.MonthTypeSameDate {
			return false, ""
		}
		if rule.StartDate.IsZero() {
			return false, "monthly rule has no start date"
		}
		return date.Day() == rule.StartDate.Day(), ""
	default:
		return false, "unknown recurrence kind " + string(rule.Kind)
	}
}

// Occurrence is one projected occurrence of an activity.
type Occurrence struct {
	Date  time.Time
	Start model.ClockMinutes
}

// NextOccurrences walks forward day by day from the reference time and
// returns the first count matching dates. The walk is bounded so a rule
// that never matches terminates.
func NextOccurrences(activity model.WeeklyActivity, from time.Time, count int) []Occurrence {
	start, err := model.ParseClock(activity.Schedule.StartTime)
	if err != nil {
		start = 0
	}
	var out []Occurrence
	day := midnight(from)
	// Two years covers every supported pattern.
	for i := 0; i < 730 && len(out) < count; i++ {
		if ok, _ := OccursOn(activity, day); ok {
			out = append(out, Occurrence{Date: day, Start: start})
		}
		day = day.AddDate(0, 0, 1)
	}
	return out
}

func onScheduledDay(s model.ActivitySchedule, date time.Time) bool {
	for _, name := range s.Days {
		if d, ok := model.ParseWeekday(name); ok && d == date.Weekday() {
			return true
		}
	}
	return false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
