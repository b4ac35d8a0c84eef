package family

import (
	"time"

	"github.com/kmarens/famsched/core/model"
)

// CatalogActivity is one age-appropriate entry children of the same
// bracket could attend side by side.
type CatalogActivity struct {
	Name            string
	Category        string
	DurationMinutes int
}

var parallelCatalog = map[model.AgeGroup][]CatalogActivity{
	model.AgeInfant: {
		{Name: "Parent and baby swim", Category: "physical", DurationMinutes: 30},
		{Name: "Music and movement", Category: "creative", DurationMinutes: 30},
	},
	model.AgeToddler: {
		{Name: "Toddler gym", Category: "physical", DurationMinutes: 45},
		{Name: "Story time", Category: "educational", DurationMinutes: 30},
	},
	model.AgePreschool: {
		{Name: "Creative dance", Category: "creative", DurationMinutes: 45},
		{Name: "Playground meetup", Category: "outdoor", DurationMinutes: 60},
	},
	model.AgeSchool: {
		{Name: "Soccer practice", Category: "physical", DurationMinutes: 60},
		{Name: "Art workshop", Category: "creative", DurationMinutes: 60},
	},
}

// ParallelActivities buckets children into age brackets and, for every
// bracket with at least two children, matches catalog activities
// against a window where all bracket children are free for the full
// duration at the same time.
func ParallelActivities(children []ChildWeek, now time.Time) []model.ParallelActivity {
	brackets := make(map[model.AgeGroup][]ChildWeek)
	for _, cw := range children {
		g := model.AgeGroupFor(cw.Profile.DateOfBirth, now)
		brackets[g] = append(brackets[g], cw)
	}

	var out []model.ParallelActivity
	for _, group := range []model.AgeGroup{model.AgeInfant, model.AgeToddler, model.AgePreschool, model.AgeSchool} {
		members := brackets[group]
		if len(members) < 2 {
			continue
		}
		ids := make([]string, len(members))
		for i, m := range members {
			ids[i] = m.Profile.ID
		}
		for _, cat := range parallelCatalog[group] {
			day, start, ok := simultaneousWindow(members, cat.DurationMinutes)
			if !ok {
				continue
			}
			out = append(out, model.ParallelActivity{
				Bracket:         group,
				ChildIDs:        ids,
				Activity:        cat.Name,
				Category:        cat.Category,
				DurationMinutes: cat.DurationMinutes,
				Day:             day,
				Start:           start,
			})
		}
	}
	return out
}

// simultaneousWindow finds the first weekday slot where every member
// is free for the required duration.
func simultaneousWindow(members []ChildWeek, durationMin int) (time.Weekday, model.ClockMinutes, bool) {
	for _, day := range model.WeekDays {
		for _, slot := range commonFreeSlots(members, day) {
			if slot.DurationMinutes() >= durationMin {
				return day, slot.Start, true
			}
		}
	}
	return time.Monday, 0, false
}
