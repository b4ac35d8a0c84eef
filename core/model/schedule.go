package model

import (
	"sort"
	"time"
)

// FreeSlot is a gap of at least MinFreeSlotMinutes inside the day
// window that no busy event occupies.
type FreeSlot struct {
	Start ClockMinutes `json:"start"`
	End   ClockMinutes `json:"end"`
}

// DurationMinutes returns the slot length in minutes.
func (s FreeSlot) DurationMinutes() int { return int(s.End - s.Start) }

// MinFreeSlotMinutes is the shortest gap still counted as free time.
const MinFreeSlotMinutes = 15

// DaySchedule holds one child's events for a single calendar day.
// Events stay ordered ascending by start time after every insertion.
type DaySchedule struct {
	Date      time.Time    `json:"date"`
	Weekday   time.Weekday `json:"weekday"`
	Events    []Event      `json:"events"`
	FreeSlots []FreeSlot   `json:"free_slots"`
}

// Insert places the event keeping ascending start order. Equal starts
// keep insertion order.
func (d *DaySchedule) Insert(ev Event) {
	i := sort.Search(len(d.Events), func(i int) bool {
		return d.Events[i].Start > ev.Start
	})
	d.Events = append(d.Events, Event{})
	copy(d.Events[i+1:], d.Events[i:])
	d.Events[i] = ev
}

// ActivityCount returns the number of activity-type events.
func (d *DaySchedule) ActivityCount() int {
	n := 0
	for _, ev := range d.Events {
		if ev.Type == EventActivity {
			n++
		}
	}
	return n
}

// BusyMinutes sums the duration of all events.
func (d *DaySchedule) BusyMinutes() int {
	total := 0
	for _, ev := range d.Events {
		total += ev.DurationMinutes()
	}
	return total
}

// FreeMinutes sums the duration of all computed free slots.
func (d *DaySchedule) FreeMinutes() int {
	total := 0
	for _, s := range d.FreeSlots {
		total += s.DurationMinutes()
	}
	return total
}

// WeeklySchedule maps the seven weekdays to their day schedules. It is
// created fresh per generation call and never mutated afterwards.
type WeeklySchedule map[time.Weekday]*DaySchedule

// Day returns the schedule for the given weekday, nil if absent.
func (w WeeklySchedule) Day(d time.Weekday) *DaySchedule { return w[d] }

// TotalActivities counts activity-type events across the week.
func (w WeeklySchedule) TotalActivities() int {
	n := 0
	for _, day := range w {
		n += day.ActivityCount()
	}
	return n
}

// TotalFreeMinutes sums free time across the week.
func (w WeeklySchedule) TotalFreeMinutes() int {
	total := 0
	for _, day := range w {
		total += day.FreeMinutes()
	}
	return total
}

// ScheduleMetadata aggregates a generated week for display and
// persistence write-back.
type ScheduleMetadata struct {
	AgeGroup            AgeGroup `json:"age_group"`
	TotalActivities     int      `json:"total_activities"`
	AvgActivitiesPerDay float64  `json:"avg_activities_per_day"`
	TotalFreeHours      float64  `json:"total_free_hours"`
	OverloadedDays      int      `json:"overloaded_days"`
	ConflictCount       int      `json:"conflict_count"`
	SuggestionCount     int      `json:"suggestion_count"`
	BalanceScore        int      `json:"balance_score"` // 0-100
}

// ChildPlan is the full per-child generation result.
type ChildPlan struct {
	ChildID     string           `json:"child_id"`
	ChildName   string           `json:"child_name"`
	Week        WeeklySchedule   `json:"week"`
	Conflicts   []Conflict       `json:"conflicts"`
	Suggestions []Suggestion     `json:"suggestions"`
	Metadata    ScheduleMetadata `json:"metadata"`
	Diagnostics []Diagnostic     `json:"diagnostics,omitempty"`
}
