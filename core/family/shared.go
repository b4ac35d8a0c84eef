package family

import (
	"sort"
	"time"

	"github.com/kmarens/famsched/core/model"
)

const (
	maxSharedAgeRangeYears = 3
	maxSharedStartSpread   = 30 // minutes
	sharedTransportPerKid  = 15 // minutes saved per participating child
	sharedCostPerExtraKid  = 15 // percent saved per additional child
)

type sharedKey struct {
	title    string
	location string
	day      time.Weekday
}

type sharedMember struct {
	childID string
	age     int
	start   model.ClockMinutes
}

// SharedActivities groups activity events across children by title,
// location and weekday. A group qualifies when at least two distinct
// children attend, their ages span at most three years and their start
// times lie within thirty minutes of each other.
func SharedActivities(children []ChildWeek, now time.Time) []model.SharedActivity {
	groups := make(map[sharedKey][]sharedMember)
	var order []sharedKey
	for _, cw := range children {
		age := model.AgeYears(cw.Profile.DateOfBirth, now)
		for _, day := range model.WeekDays {
			ds := cw.Plan.Week.Day(day)
			if ds == nil {
				continue
			}
			for _, ev := range ds.Events {
				if ev.Type != model.EventActivity {
					continue
				}
				key := sharedKey{title: ev.Title, location: ev.Location, day: day}
				if _, seen := groups[key]; !seen {
					order = append(order, key)
				}
				groups[key] = append(groups[key], sharedMember{childID: cw.Profile.ID, age: age, start: ev.Start})
			}
		}
	}

	var out []model.SharedActivity
	for _, key := range order {
		members := dedupeByChild(groups[key])
		if len(members) < 2 {
			continue
		}
		if ageRange(members) > maxSharedAgeRangeYears || startSpread(members) > maxSharedStartSpread {
			continue
		}
		ids := make([]string, len(members))
		for i, m := range members {
			ids[i] = m.childID
		}
		out = append(out, model.SharedActivity{
			Title:             key.title,
			Location:          key.location,
			Day:               key.day,
			ChildIDs:          ids,
			TransportSavedMin: sharedTransportPerKid * len(members),
			CostSavedPercent:  sharedCostPerExtraKid * (len(members) - 1),
			Feasibility:       feasibility(members),
		})
	}
	return out
}

// dedupeByChild keeps one entry per child, the earliest start.
func dedupeByChild(members []sharedMember) []sharedMember {
	sort.SliceStable(members, func(i, j int) bool { return members[i].start < members[j].start })
	seen := make(map[string]bool, len(members))
	var out []sharedMember
	for _, m := range members {
		if seen[m.childID] {
			continue
		}
		seen[m.childID] = true
		out = append(out, m)
	}
	return out
}

func ageRange(members []sharedMember) int {
	min, max := members[0].age, members[0].age
	for _, m := range members[1:] {
		if m.age < min {
			min = m.age
		}
		if m.age > max {
			max = m.age
		}
	}
	return max - min
}

func startSpread(members []sharedMember) int {
	min, max := members[0].start, members[0].start
	for _, m := range members[1:] {
		if m.start < min {
			min = m.start
		}
		if m.start > max {
			max = m.start
		}
	}
	return int(max - min)
}

// feasibility shrinks from 1 as start times spread apart and ages
// diverge. Both inputs are already bounded by the qualifying checks.
func feasibility(members []sharedMember) float64 {
	f := 1.0
	f -= float64(startSpread(members)) / (2 * maxSharedStartSpread)
	f -= float64(ageRange(members)) / (2 * maxSharedAgeRangeYears)
	if f < 0 {
		return 0
	}
	return f
}
