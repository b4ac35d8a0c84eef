package family

import (
	"sort"
	"time"

	"github.com/kmarens/famsched/core/model"
)

// minFamilyTimeMinutes is the shortest window worth reserving.
const minFamilyTimeMinutes = 60

// FamilyTimeSlots intersects every child's free time per weekday and
// keeps windows of at least an hour, sorted by priority descending.
func FamilyTimeSlots(children []ChildWeek) []model.FamilyTimeSlot {
	var out []model.FamilyTimeSlot
	for _, day := range model.WeekDays {
		for _, slot := range commonFreeSlots(children, day) {
			if slot.DurationMinutes() < minFamilyTimeMinutes {
				continue
			}
			out = append(out, model.FamilyTimeSlot{
				Day:             day,
				Start:           slot.Start,
				End:             slot.End,
				DurationMinutes: slot.DurationMinutes(),
				Category:        familyTimeCategory(slot.Start),
				Priority:        familyTimePriority(day, slot),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

func familyTimeCategory(start model.ClockMinutes) model.FamilyTimeCategory {
	switch h := start.Hour(); {
	case h >= 7 && h <= 9:
		return model.FamilyTimeMorning
	case h >= 10 && h <= 16:
		return model.FamilyTimeWeekend
	case h >= 17 && h < 19:
		return model.FamilyTimeDinner
	case h >= 19 && h <= 21:
		return model.FamilyTimeEvening
	default:
		return model.FamilyTimeFlexible
	}
}

// familyTimePriority values longer windows, weekends and the early
// evening hours when the whole family tends to be home.
func familyTimePriority(day time.Weekday, slot model.FreeSlot) int {
	p := slot.DurationMinutes() / 60
	if day == time.Saturday || day == time.Sunday {
		p += 2
	}
	if h := slot.Start.Hour(); h >= 17 && h < 20 {
		p++
	}
	return p
}
