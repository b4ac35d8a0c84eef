package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/kmarens/famsched/core/model"
	"github.com/kmarens/famsched/core/recurrence"
)

// ExpandActivities materializes the activities occurring on the given
// date. Each activity is evaluated independently: a malformed entry is
// recorded as a diagnostic and never aborts the others.
func ExpandActivities(childID string, activities []model.WeeklyActivity, date time.Time, diags *model.Diagnostics) []model.Event {
	var events []model.Event
	for _, act := range activities {
		occurs, skip := recurrence.OccursOn(act, date)
		if skip != "" {
			diags.Addf(childID, "recurrence", act.Name, "activity skipped: %s", skip)
		}
		if !occurs {
			continue
		}
		start, err := model.ParseClock(act.Schedule.StartTime)
		if err != nil {
			diags.Addf(childID, "activity", act.Name, "skipping occurrence: %v", err)
			continue
		}
		duration := act.Schedule.DurationMinutes
		if duration <= 0 {
			diags.Addf(childID, "activity", act.Name, "skipping occurrence: non-positive duration %d", duration)
			continue
		}
		events = append(events, model.Event{
			ID:          uuid.NewString(),
			Title:       act.Name,
			Type:        model.EventActivity,
			Start:       start,
			End:         start + model.ClockMinutes(duration),
			Priority:    model.PriorityMedium,
			Category:    act.Category,
			Location:    act.Location.Name,
			TravelMin:   act.Location.TravelMin,
			Equipment:   act.Equipment,
			Preparation: act.Preparation,
		})
	}
	return events
}
