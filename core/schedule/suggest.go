package schedule

import (
	"fmt"

	"github.com/kmarens/famsched/core/model"
)

const (
	freePlayMinMinutes    = 60
	outdoorMinFreeMinutes = 30
	maxWeeklyActivities   = 20
	minWeeklyFreeMinutes  = 300
)

// CategoryOutdoor tags events that count as outdoor time.
const CategoryOutdoor = "outdoor"

// DaySuggestions emits improvement hints for one day from its computed
// free slots.
func DaySuggestions(day *model.DaySchedule) []model.Suggestion {
	var out []model.Suggestion
	weekday := day.Weekday
	for _, slot := range day.FreeSlots {
		if slot.DurationMinutes() < freePlayMinMinutes {
			continue
		}
		out = append(out, model.Suggestion{
			Type:     model.SuggestionFreePlay,
			Priority: model.SeverityMedium,
			Day:      &weekday,
			Message:  fmt.Sprintf("free slot %s-%s is long enough for unstructured play", slot.Start, slot.End),
		})
	}
	if day.FreeMinutes() >= outdoorMinFreeMinutes && !hasOutdoorEvent(day) {
		out = append(out, model.Suggestion{
			Type:     model.SuggestionOutdoorTime,
			Priority: model.SeverityMedium,
			Day:      &weekday,
			Message:  "no outdoor activity scheduled, use some free time outside",
		})
	}
	return out
}

// WeekSuggestions emits balance hints over the whole week.
func WeekSuggestions(week model.WeeklySchedule) []model.Suggestion {
	var out []model.Suggestion
	if week.TotalActivities() > maxWeeklyActivities {
		out = append(out, model.Suggestion{
			Type:     model.SuggestionBalance,
			Priority: model.SeverityHigh,
			Message:  fmt.Sprintf("%d activities this week is a lot, consider dropping some", week.TotalActivities()),
		})
	}
	if week.TotalFreeMinutes() < minWeeklyFreeMinutes {
		out = append(out, model.Suggestion{
			Type:     model.SuggestionBalance,
			Priority: model.SeverityMedium,
			Message:  "less than five hours of weekly free time, add unstructured time",
		})
	}
	return out
}

func hasOutdoorEvent(day *model.DaySchedule) bool {
	for _, ev := range day.Events {
		if ev.Category == CategoryOutdoor {
			return true
		}
	}
	return false
}
