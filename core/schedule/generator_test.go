package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/kmarens/famsched/core/model"
)

var (
	testNow       = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	testWeekStart = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC) // a Monday
)

func schoolChild() model.ChildProfile {
	return model.ChildProfile{
		ID:          "emma",
		Name:        "Emma",
		DateOfBirth: time.Date(2018, 5, 10, 0, 0, 0, 0, time.UTC), // school age
		Routine: model.DailyRoutine{
			WakeUpTime: "07:00",
			Breakfast:  "08:00",
		},
		SchoolSchedule: map[string][]model.SchoolBlock{
			"monday": {{StartTime: "09:00", EndTime: "15:00"}},
		},
	}
}

func TestGenerateWeekSchoolMorning(t *testing.T) {
	plan := GenerateWeek(schoolChild(), testNow, testWeekStart, Options{})

	mon := plan.Week.Day(time.Monday)
	if mon == nil {
		t.Fatalf("no Monday schedule")
	}
	titles := make([]string, len(mon.Events))
	for i, ev := range mon.Events {
		titles[i] = ev.Title
	}
	if !reflect.DeepEqual(titles, []string{"Wake Up", "Breakfast", "School"}) {
		t.Fatalf("Monday events = %v", titles)
	}
	if len(plan.Conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %v", plan.Conflicts)
	}

	wantSlots := []model.FreeSlot{
		{Start: mustClock(t, "07:30"), End: mustClock(t, "08:00")},
		{Start: mustClock(t, "08:30"), End: mustClock(t, "09:00")},
		{Start: mustClock(t, "15:00"), End: mustClock(t, "20:00")},
	}
	if !reflect.DeepEqual(mon.FreeSlots, wantSlots) {
		t.Fatalf("Monday free slots = %v, want %v", mon.FreeSlots, wantSlots)
	}
}

func TestGenerateWeekEventsSortedAndWellFormed(t *testing.T) {
	child := schoolChild()
	child.Activities = []model.WeeklyActivity{
		{
			ID:       "soccer",
			Name:     "Soccer",
			Category: "physical",
			Schedule: model.ActivitySchedule{Days: []string{"monday", "wednesday"}, StartTime: "16:00", DurationMinutes: 60},
		},
	}
	plan := GenerateWeek(child, testNow, testWeekStart, Options{})

	for _, d := range model.WeekDays {
		day := plan.Week.Day(d)
		if day == nil {
			t.Fatalf("missing day %v", d)
		}
		for i, ev := range day.Events {
			if ev.Start >= ev.End {
				t.Errorf("%v event %q has start >= end", d, ev.Title)
			}
			if i > 0 && day.Events[i-1].Start > ev.Start {
				t.Errorf("%v events not sorted", d)
			}
		}
	}
	if plan.Week.Day(time.Wednesday).ActivityCount() != 1 {
		t.Fatalf("Wednesday should carry the soccer occurrence")
	}
	if plan.Week.Day(time.Tuesday).ActivityCount() != 0 {
		t.Fatalf("Tuesday should carry no activity")
	}
}

func TestGenerateWeekMetadata(t *testing.T) {
	child := schoolChild()
	child.Activities = []model.WeeklyActivity{
		{
			ID:       "soccer",
			Name:     "Soccer",
			Schedule: model.ActivitySchedule{Days: []string{"monday"}, StartTime: "16:00", DurationMinutes: 60},
		},
	}
	plan := GenerateWeek(child, testNow, testWeekStart, Options{})
	meta := plan.Metadata

	if meta.AgeGroup != model.AgeSchool {
		t.Errorf("age group = %s", meta.AgeGroup)
	}
	if meta.TotalActivities != 1 {
		t.Errorf("total activities = %d", meta.TotalActivities)
	}
	if meta.BalanceScore < 0 || meta.BalanceScore > 100 {
		t.Errorf("balance score %d out of range", meta.BalanceScore)
	}
	if meta.ConflictCount != len(plan.Conflicts) {
		t.Errorf("conflict count mismatch")
	}
}

func TestGenerateWeekDeterministic(t *testing.T) {
	child := schoolChild()
	a := GenerateWeek(child, testNow, testWeekStart, Options{})
	b := GenerateWeek(child, testNow, testWeekStart, Options{})
	if a.Metadata != b.Metadata {
		t.Fatalf("metadata differs between runs: %+v vs %+v", a.Metadata, b.Metadata)
	}
	if len(a.Conflicts) != len(b.Conflicts) || len(a.Suggestions) != len(b.Suggestions) {
		t.Fatalf("generation is not deterministic")
	}
}

func TestGenerateWeekMalformedActivityIsDiagnosed(t *testing.T) {
	child := schoolChild()
	child.Activities = []model.WeeklyActivity{
		{
			ID:       "broken",
			Name:     "Broken",
			Schedule: model.ActivitySchedule{Days: []string{"monday"}, StartTime: "four pm", DurationMinutes: 60},
		},
		{
			ID:       "soccer",
			Name:     "Soccer",
			Schedule: model.ActivitySchedule{Days: []string{"monday"}, StartTime: "16:00", DurationMinutes: 60},
		},
	}
	plan := GenerateWeek(child, testNow, testWeekStart, Options{})

	if plan.Week.Day(time.Monday).ActivityCount() != 1 {
		t.Fatalf("the well-formed activity must survive")
	}
	if len(plan.Diagnostics) == 0 {
		t.Fatalf("expected diagnostics for the malformed activity")
	}
}

func TestGenerateWeekMissingDOBUsesAssumedGroup(t *testing.T) {
	child := schoolChild()
	child.DateOfBirth = time.Time{}
	plan := GenerateWeek(child, testNow, testWeekStart, Options{})
	if plan.Metadata.AgeGroup != model.DefaultAgeGroup {
		t.Fatalf("age group = %s, want %s", plan.Metadata.AgeGroup, model.DefaultAgeGroup)
	}
}
