package family

import (
	"testing"
	"time"

	"github.com/kmarens/famsched/core/model"
	"github.com/kmarens/famsched/core/schedule"
)

var (
	testNow       = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	testWeekStart = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
)

// buildChild generates a plan for a child born the given number of
// years before the reference time.
func buildChild(t *testing.T, id string, ageYears int, activities ...model.WeeklyActivity) ChildWeek {
	t.Helper()
	profile := model.ChildProfile{
		ID:          id,
		Name:        id,
		DateOfBirth: testNow.AddDate(-ageYears, -1, 0),
		Routine: model.DailyRoutine{
			WakeUpTime: "07:00",
			Breakfast:  "08:00",
			Dinner:     "18:00",
		},
		Activities: activities,
	}
	plan := schedule.GenerateWeek(profile, testNow, testWeekStart, schedule.Options{})
	return ChildWeek{Profile: profile, Plan: plan}
}

func soccer(start string) model.WeeklyActivity {
	return model.WeeklyActivity{
		ID:       "soccer",
		Name:     "Soccer",
		Category: "physical",
		Location: model.ActivityLocation{Name: "City Sports Park", TravelMin: 10},
		Schedule: model.ActivitySchedule{Days: []string{"monday"}, StartTime: start, DurationMinutes: 60},
	}
}

func TestSharedActivityForSiblings(t *testing.T) {
	a := buildChild(t, "emma", 5, soccer("16:00"))
	b := buildChild(t, "liam", 6, soccer("16:00"))

	shared := SharedActivities([]ChildWeek{a, b}, testNow)
	if len(shared) != 1 {
		t.Fatalf("expected one shared activity, got %v", shared)
	}
	s := shared[0]
	if s.Title != "Soccer" || s.Day != time.Monday {
		t.Fatalf("unexpected group: %+v", s)
	}
	if len(s.ChildIDs) != 2 {
		t.Fatalf("both children must appear: %v", s.ChildIDs)
	}
	if s.TransportSavedMin != 30 {
		t.Errorf("transport saving = %d, want 30", s.TransportSavedMin)
	}
	if s.CostSavedPercent != 15 {
		t.Errorf("cost saving = %d, want 15", s.CostSavedPercent)
	}
	if s.Feasibility < 0 || s.Feasibility > 1 {
		t.Errorf("feasibility %f out of range", s.Feasibility)
	}
}

func TestSharedActivityRejectsWideAgeGap(t *testing.T) {
	a := buildChild(t, "emma", 4, soccer("16:00"))
	b := buildChild(t, "noah", 9, soccer("16:00"))

	if shared := SharedActivities([]ChildWeek{a, b}, testNow); len(shared) != 0 {
		t.Fatalf("five year gap must not group: %v", shared)
	}
}

func TestSharedActivityRejectsSpreadStarts(t *testing.T) {
	a := buildChild(t, "emma", 5, soccer("16:00"))
	b := buildChild(t, "liam", 6, soccer("17:00"))

	if shared := SharedActivities([]ChildWeek{a, b}, testNow); len(shared) != 0 {
		t.Fatalf("an hour apart must not group: %v", shared)
	}
}

func TestSharedActivityGroupInvariants(t *testing.T) {
	a := buildChild(t, "emma", 5, soccer("16:00"))
	b := buildChild(t, "liam", 6, soccer("16:30"))
	c := buildChild(t, "mia", 7, soccer("16:15"))

	for _, s := range SharedActivities([]ChildWeek{a, b, c}, testNow) {
		if len(s.ChildIDs) < 2 {
			t.Errorf("group with fewer than two children: %+v", s)
		}
	}
}

func TestCarpoolScoreThreshold(t *testing.T) {
	far := model.WeeklyActivity{
		ID:       "swim",
		Name:     "Swimming",
		Location: model.ActivityLocation{Name: "Aqua Center", TravelMin: 30},
		Schedule: model.ActivitySchedule{Days: []string{"monday", "wednesday", "friday"}, StartTime: "17:00", DurationMinutes: 45},
	}
	near := model.WeeklyActivity{
		ID:       "piano",
		Name:     "Piano",
		Location: model.ActivityLocation{Name: "Music School", TravelMin: 5},
		Schedule: model.ActivitySchedule{Days: []string{"tuesday"}, StartTime: "16:00", DurationMinutes: 30},
	}
	cw := buildChild(t, "emma", 6, far, near)

	options := CarpoolOptions([]ChildWeek{cw}, 0.7)
	if len(options) != 1 {
		t.Fatalf("only the far, frequent activity qualifies: %v", options)
	}
	opt := options[0]
	if opt.ActivityID != "swim" {
		t.Fatalf("wrong activity surfaced: %+v", opt)
	}
	if opt.Score <= 0.7 || opt.Score > 1 {
		t.Errorf("score %f outside (0.7,1]", opt.Score)
	}
	if opt.TimeSavedMin != 15 {
		t.Errorf("time saving = %d, want 15", opt.TimeSavedMin)
	}
}

func TestCarpoolScoresAlwaysInRange(t *testing.T) {
	variants := []model.WeeklyActivity{
		soccer("16:00"),
		{
			ID:       "art",
			Name:     "Art",
			Location: model.ActivityLocation{Name: "Studio", TravelMin: 45},
			Schedule: model.ActivitySchedule{Days: []string{"monday", "tuesday", "thursday", "friday"}, StartTime: "15:00", DurationMinutes: 60},
		},
	}
	cw := buildChild(t, "emma", 6, variants...)
	for _, opt := range CarpoolOptions([]ChildWeek{cw}, 0) {
		if opt.Score < 0 || opt.Score > 1 {
			t.Errorf("score %f out of [0,1]", opt.Score)
		}
	}
}

func TestFamilyTimeEveningBonding(t *testing.T) {
	// Both children share the whole free day; Saturday evening windows
	// must surface with the weekend bonus.
	a := buildChild(t, "emma", 5)
	b := buildChild(t, "liam", 6)

	slots := FamilyTimeSlots([]ChildWeek{a, b})
	if len(slots) == 0 {
		t.Fatalf("expected family time slots")
	}
	for i := 0; i+1 < len(slots); i++ {
		if slots[i].Priority < slots[i+1].Priority {
			t.Fatalf("slots not sorted by priority desc")
		}
	}
}

func TestFamilyTimeSaturdayEvening(t *testing.T) {
	// Construct plans directly so both children are free exactly
	// Saturday 19:00-20:00.
	slot := model.FreeSlot{Start: 19 * 60, End: 20 * 60}
	mk := func(id string) ChildWeek {
		week := make(model.WeeklySchedule)
		for _, d := range model.WeekDays {
			day := &model.DaySchedule{Weekday: d}
			if d == time.Saturday {
				day.FreeSlots = []model.FreeSlot{slot}
			}
			week[d] = day
		}
		return ChildWeek{
			Profile: model.ChildProfile{ID: id},
			Plan:    model.ChildPlan{ChildID: id, Week: week},
		}
	}

	slots := FamilyTimeSlots([]ChildWeek{mk("a"), mk("b")})
	if len(slots) != 1 {
		t.Fatalf("expected exactly one slot, got %v", slots)
	}
	got := slots[0]
	if got.Category != model.FamilyTimeEvening {
		t.Errorf("category = %s, want evening_bonding", got.Category)
	}
	if got.DurationMinutes != 60 {
		t.Errorf("duration = %d, want 60", got.DurationMinutes)
	}
	// 60/60 + weekend bonus + evening bonus.
	if got.Priority != 4 {
		t.Errorf("priority = %d, want 4", got.Priority)
	}
}

func TestFamilyTimeRequiresAllChildrenFree(t *testing.T) {
	free := buildChild(t, "emma", 5)
	busy := buildChild(t, "liam", 6)
	for _, d := range model.WeekDays {
		busy.Plan.Week[d].FreeSlots = nil
	}

	if slots := FamilyTimeSlots([]ChildWeek{free, busy}); len(slots) != 0 {
		t.Fatalf("one fully busy child leaves no family time: %v", slots)
	}
}

func TestParallelActivitiesSameBracket(t *testing.T) {
	a := buildChild(t, "emma", 6)
	b := buildChild(t, "liam", 8)

	parallel := ParallelActivities([]ChildWeek{a, b}, testNow)
	if len(parallel) == 0 {
		t.Fatalf("two school-age children should match catalog activities")
	}
	for _, p := range parallel {
		if p.Bracket != model.AgeSchool {
			t.Errorf("bracket = %s", p.Bracket)
		}
		if len(p.ChildIDs) != 2 {
			t.Errorf("both children expected: %v", p.ChildIDs)
		}
	}
}

func TestParallelActivitiesNeedTwoChildren(t *testing.T) {
	a := buildChild(t, "emma", 6)
	b := buildChild(t, "baby", 1)

	if parallel := ParallelActivities([]ChildWeek{a, b}, testNow); len(parallel) != 0 {
		t.Fatalf("singleton brackets must not match: %v", parallel)
	}
}

func TestRecommendationsOrderedByPriority(t *testing.T) {
	a := buildChild(t, "emma", 6, soccer("16:00"))
	b := buildChild(t, "liam", 6, soccer("16:00"))
	children := []ChildWeek{a, b}

	recs := Recommendations(children, nil, nil, nil)
	if len(recs) == 0 {
		t.Fatalf("expected recommendations")
	}
	for i := 0; i+1 < len(recs); i++ {
		if recs[i].Priority.Rank() < recs[i+1].Priority.Rank() {
			t.Fatalf("recommendations not sorted: %v", recs)
		}
	}
	// No family time passed in: protecting it must be recommended.
	foundFamilyTime := false
	for _, r := range recs {
		if r.Type == model.RecommendFamilyTime {
			foundFamilyTime = true
			if r.Priority != model.SeverityHigh {
				t.Errorf("family time priority = %s", r.Priority)
			}
		}
	}
	if !foundFamilyTime {
		t.Fatalf("missing family time recommendation: %v", recs)
	}
}

func TestDiversityRecommendation(t *testing.T) {
	// Only physical activities scheduled: four categories missing.
	a := buildChild(t, "emma", 6, soccer("16:00"))
	recs := Recommendations([]ChildWeek{a}, nil, nil, make([]model.FamilyTimeSlot, 3))

	found := false
	for _, r := range recs {
		if r.Type == model.RecommendDiversity {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a diversity recommendation: %v", recs)
	}
}

func TestOptimizeRequiresChildren(t *testing.T) {
	c := NewCoordinator()
	if _, err := c.Optimize(nil, testNow); err == nil {
		t.Fatalf("expected an error for an empty family")
	}
}

func TestOptimizeZeroPenaltyHonored(t *testing.T) {
	cw := ChildWeek{
		Profile: model.ChildProfile{ID: "emma"},
		Plan: model.ChildPlan{
			ChildID:   "emma",
			Week:      model.WeeklySchedule{},
			Conflicts: make([]model.Conflict, 2),
			Metadata:  model.ScheduleMetadata{OverloadedDays: 1},
		},
	}
	c := Coordinator{Config: Config{ConflictPenalty: intp(0), OverloadPenalty: intp(0)}}

	result, err := c.Optimize([]ChildWeek{cw}, testNow)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	// Explicitly configured zero penalties must not be re-defaulted.
	if result.OptimizationScore != 100 {
		t.Fatalf("score = %d, want 100", result.OptimizationScore)
	}
}

func TestOptimizeScoreInRange(t *testing.T) {
	a := buildChild(t, "emma", 5, soccer("16:00"))
	b := buildChild(t, "liam", 6, soccer("16:00"))
	c := NewCoordinator()

	result, err := c.Optimize([]ChildWeek{a, b}, testNow)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if result.OptimizationScore < 0 || result.OptimizationScore > 100 {
		t.Fatalf("score %d out of range", result.OptimizationScore)
	}
	if len(result.CoordinatedActivities) != 1 {
		t.Fatalf("expected the shared soccer group: %v", result.CoordinatedActivities)
	}
}

func TestOptimizeFreshResultPerCall(t *testing.T) {
	a := buildChild(t, "emma", 5, soccer("16:00"))
	b := buildChild(t, "liam", 6, soccer("16:00"))
	c := NewCoordinator()

	r1, err := c.Optimize([]ChildWeek{a, b}, testNow)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	r2, err := c.Optimize([]ChildWeek{a, b}, testNow)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if r1.OptimizationScore != r2.OptimizationScore {
		t.Fatalf("optimization is not deterministic")
	}
}
