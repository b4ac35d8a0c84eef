package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/kmarens/famsched/core/model"
)

// Rule-fixed durations for routine anchors, in minutes.
const (
	wakeUpDuration    = 30
	breakfastDuration = 30
	lunchDuration     = 45
	dinnerDuration    = 45
	snackDuration     = 15
	bedtimeDuration   = 60
)

// CategorySleep marks routine events that do not consume free time and
// that nap protection guards.
const CategorySleep = "sleep"

// BuildRoutineEvents expands the daily routine into fixed essential
// events. Missing routine fields produce no event; unparseable times
// are skipped with a diagnostic rather than scheduled at midnight.
func BuildRoutineEvents(childID string, r model.DailyRoutine, diags *model.Diagnostics) []model.Event {
	var events []model.Event
	add := func(slot, title string, at string, duration int, typ model.EventType, category string, fallback model.Responsibility) {
		if at == "" {
			return
		}
		start, err := model.ParseClock(at)
		if err != nil {
			diags.Addf(childID, "routine", slot, "skipping %s: %v", title, err)
			return
		}
		events = append(events, model.Event{
			ID:             uuid.NewString(),
			Title:          title,
			Type:           typ,
			Start:          start,
			End:            start + model.ClockMinutes(duration),
			Priority:       model.PriorityEssential,
			IsFixed:        true,
			Category:       category,
			Responsibility: responsibilityFor(r, slot, fallback),
		})
	}

	add("wake_up", "Wake Up", r.WakeUpTime, wakeUpDuration, model.EventRoutine, "care", model.ResponsibilityAuPair)
	add("breakfast", "Breakfast", r.Breakfast, breakfastDuration, model.EventMeal, "meal", model.ResponsibilityParent)
	for i, t := range r.Lunches {
		add("lunch", numbered("Lunch", i, len(r.Lunches)), t, lunchDuration, model.EventMeal, "meal", model.ResponsibilityParent)
	}
	for i, t := range r.Snacks {
		add("snack", numbered("Snack", i, len(r.Snacks)), t, snackDuration, model.EventMeal, "meal", model.ResponsibilityAuPair)
	}
	add("dinner", "Dinner", r.Dinner, dinnerDuration, model.EventMeal, "meal", model.ResponsibilityParent)
	for _, nap := range r.Naps {
		if nap.DurationMinutes <= 0 {
			continue
		}
		add("nap", "Nap", nap.StartTime, nap.DurationMinutes, model.EventRoutine, CategorySleep, model.ResponsibilityAuPair)
	}
	add("bedtime", "Bedtime", r.Bedtime, bedtimeDuration, model.EventRoutine, CategorySleep, model.ResponsibilityParent)
	return events
}

func numbered(title string, i, total int) string {
	if total <= 1 {
		return title
	}
	return fmt.Sprintf("%s %d", title, i+1)
}

func responsibilityFor(r model.DailyRoutine, slot string, fallback model.Responsibility) model.Responsibility {
	if resp, ok := r.Responsibilities[slot]; ok && resp != "" {
		return resp
	}
	return fallback
}
