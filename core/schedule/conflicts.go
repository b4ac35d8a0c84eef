package schedule

import (
	"fmt"

	"github.com/kmarens/famsched/core/model"
)

// ValidateDay runs the fixed rule checks against one assembled day.
// The checks are independent and cumulative: a single day can yield
// several conflicts of different types. Events must already be sorted
// ascending by start.
func ValidateDay(day *model.DaySchedule, group model.AgeGroup) []model.Conflict {
	rules := model.RulesFor(group)
	var conflicts []model.Conflict
	conflicts = append(conflicts, overlapConflicts(day)...)
	conflicts = append(conflicts, overloadConflicts(day, rules)...)
	conflicts = append(conflicts, napConflicts(day, rules)...)
	conflicts = append(conflicts, durationConflicts(day, rules)...)
	return conflicts
}

func overlapConflicts(day *model.DaySchedule) []model.Conflict {
	var out []model.Conflict
	for i := 0; i+1 < len(day.Events); i++ {
		a, b := day.Events[i], day.Events[i+1]
		if a.End <= b.Start {
			continue
		}
		out = append(out, model.Conflict{
			Type:       model.ConflictOverlap,
			Severity:   model.SeverityHigh,
			Day:        day.Weekday,
			EventIDs:   []string{a.ID, b.ID},
			Message:    fmt.Sprintf("%s (%s-%s) overlaps %s (%s-%s)", a.Title, a.Start, a.End, b.Title, b.Start, b.End),
			Suggestion: fmt.Sprintf("move %s to a free slot", b.Title),
		})
	}
	return out
}

func overloadConflicts(day *model.DaySchedule, rules model.AgeRules) []model.Conflict {
	count := day.ActivityCount()
	if count <= rules.MaxActivitiesPerDay {
		return nil
	}
	return []model.Conflict{{
		Type:       model.ConflictOverload,
		Severity:   model.SeverityMedium,
		Day:        day.Weekday,
		Message:    fmt.Sprintf("%d activities exceed the recommended maximum of %d", count, rules.MaxActivitiesPerDay),
		Suggestion: "move an activity to a lighter day",
	}}
}

// napConflicts flags events crowding a nap: anything ending inside the
// buffer before the nap starts, or starting inside the buffer after it
// ends.
func napConflicts(day *model.DaySchedule, rules model.AgeRules) []model.Conflict {
	if rules.NapProtectionMin == 0 {
		return nil
	}
	buffer := model.ClockMinutes(rules.NapProtectionMin)
	var out []model.Conflict
	for _, nap := range day.Events {
		if !isNap(nap) {
			continue
		}
		for _, ev := range day.Events {
			if ev.ID == nap.ID {
				continue
			}
			before := ev.End >= nap.Start-buffer && ev.End <= nap.Start
			after := ev.Start >= nap.End && ev.Start <= nap.End+buffer
			if !before && !after {
				continue
			}
			out = append(out, model.Conflict{
				Type:       model.ConflictNapProtection,
				Severity:   model.SeverityMedium,
				Day:        day.Weekday,
				EventIDs:   []string{nap.ID, ev.ID},
				Message:    fmt.Sprintf("%s is within %d minutes of nap time", ev.Title, rules.NapProtectionMin),
				Suggestion: fmt.Sprintf("keep a %d minute buffer around naps", rules.NapProtectionMin),
			})
		}
	}
	return out
}

func durationConflicts(day *model.DaySchedule, rules model.AgeRules) []model.Conflict {
	var out []model.Conflict
	for _, ev := range day.Events {
		if ev.Type != model.EventActivity || ev.DurationMinutes() <= rules.MaxActivityDuration {
			continue
		}
		out = append(out, model.Conflict{
			Type:       model.ConflictDuration,
			Severity:   model.SeverityLow,
			Day:        day.Weekday,
			EventIDs:   []string{ev.ID},
			Message:    fmt.Sprintf("%s runs %d minutes, above the %d minute limit for this age", ev.Title, ev.DurationMinutes(), rules.MaxActivityDuration),
			Suggestion: "consider a shorter session",
		})
	}
	return out
}

func isNap(ev model.Event) bool {
	return ev.Type == model.EventRoutine && ev.Category == CategorySleep && ev.Title == "Nap"
}
