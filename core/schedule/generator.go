package schedule

import (
	"time"

	"github.com/kmarens/famsched/core/logger"
	"github.com/kmarens/famsched/core/model"
)

// Options tunes week generation. The zero value is usable after
// SetDefaults.
type Options struct {
	Window  DayWindow
	Scoring ScoringConfig
	Log     logger.Logger
}

// SetDefaults fills unset options with the reference configuration.
func (o *Options) SetDefaults() {
	if o.Window == (DayWindow{}) {
		o.Window = DefaultDayWindow()
	}
	o.Scoring.SetDefaults()
	if o.Log == nil {
		o.Log = logger.NopLogger{}
	}
}

// GenerateWeek assembles, validates and scores one child's week. The
// reference time drives age-group derivation and nothing else; the
// week runs seven days from weekStart, which callers align to Monday.
// The returned plan is a fresh value and is never mutated afterwards.
func GenerateWeek(child model.ChildProfile, now, weekStart time.Time, opts Options) model.ChildPlan {
	opts.SetDefaults()
	group := child.AgeGroup(now)

	var diags model.Diagnostics
	week := make(model.WeeklySchedule, len(model.WeekDays))
	var conflicts []model.Conflict
	var suggestions []model.Suggestion

	for i := 0; i < len(model.WeekDays); i++ {
		date := weekStart.AddDate(0, 0, i)
		weekday := date.Weekday()
		day := &model.DaySchedule{Date: date, Weekday: weekday}

		for _, ev := range BuildRoutineEvents(child.ID, child.Routine, &diags) {
			day.Insert(ev)
		}
		for _, ev := range BuildSchoolEvents(child.ID, child.SchoolSchedule[model.WeekdayKey(weekday)], &diags) {
			day.Insert(ev)
		}
		for _, ev := range ExpandActivities(child.ID, child.Activities, date, &diags) {
			day.Insert(ev)
		}

		day.FreeSlots = FreeTimeSlots(day, opts.Window)
		conflicts = append(conflicts, ValidateDay(day, group)...)
		suggestions = append(suggestions, DaySuggestions(day)...)
		week[weekday] = day
	}
	suggestions = append(suggestions, WeekSuggestions(week)...)

	for _, d := range diags {
		opts.Log.Warnf("child %s: %s/%s: %s", child.ID, d.Stage, d.Subject, d.Message)
	}

	return model.ChildPlan{
		ChildID:     child.ID,
		ChildName:   child.Name,
		Week:        week,
		Conflicts:   conflicts,
		Suggestions: suggestions,
		Metadata:    buildMetadata(week, group, conflicts, suggestions, opts),
		Diagnostics: diags,
	}
}

func buildMetadata(week model.WeeklySchedule, group model.AgeGroup, conflicts []model.Conflict, suggestions []model.Suggestion, opts Options) model.ScheduleMetadata {
	total := week.TotalActivities()
	return model.ScheduleMetadata{
		AgeGroup:            group,
		TotalActivities:     total,
		AvgActivitiesPerDay: float64(total) / float64(len(model.WeekDays)),
		TotalFreeHours:      float64(week.TotalFreeMinutes()) / 60,
		OverloadedDays:      OverloadedDays(week, group),
		ConflictCount:       len(conflicts),
		SuggestionCount:     len(suggestions),
		BalanceScore:        BalanceScore(week, conflicts, group, opts.Scoring),
	}
}
