package schedule

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/kmarens/famsched/core/model"
)

// ScoringConfig holds the tunable weights of the weekly balance score.
// The defaults are the reference values; they have no documented
// derivation and are deliberately configuration, not constants. Fields
// are pointers so an explicit zero weight is distinguishable from
// unset.
type ScoringConfig struct {
	ConflictPenalty   *int `json:"conflict_penalty" yaml:"conflict_penalty"`
	OverloadPenalty   *int `json:"overload_penalty" yaml:"overload_penalty"`
	EvenFreeTimeBonus *int `json:"even_free_time_bonus" yaml:"even_free_time_bonus"`
	FreeTimeStdDevMin *int `json:"free_time_stddev_minutes" yaml:"free_time_stddev_minutes"`
}

// SetDefaults fills unset fields with the reference weights.
func (c *ScoringConfig) SetDefaults() {
	if c.ConflictPenalty == nil {
		c.ConflictPenalty = intp(10)
	}
	if c.OverloadPenalty == nil {
		c.OverloadPenalty = intp(15)
	}
	if c.EvenFreeTimeBonus == nil {
		c.EvenFreeTimeBonus = intp(10)
	}
	if c.FreeTimeStdDevMin == nil {
		c.FreeTimeStdDevMin = intp(60)
	}
}

// Validate rejects negative weights. Unset fields are fine, they get
// the reference values later.
func (c ScoringConfig) Validate() error {
	for _, p := range []*int{c.ConflictPenalty, c.OverloadPenalty, c.EvenFreeTimeBonus, c.FreeTimeStdDevMin} {
		if p != nil && *p < 0 {
			return errors.New("scoring weights must not be negative")
		}
	}
	return nil
}

func intp(v int) *int { return &v }

// BalanceScore reduces a generated week to a 0-100 health metric:
// conflicts and overloaded days subtract, an even free-time spread
// across the week adds. Deterministic for a fixed input.
func BalanceScore(week model.WeeklySchedule, conflicts []model.Conflict, group model.AgeGroup, cfg ScoringConfig) int {
	cfg.SetDefaults()
	score := 100
	score -= *cfg.ConflictPenalty * len(conflicts)
	score -= *cfg.OverloadPenalty * OverloadedDays(week, group)
	if FreeTimeStdDev(week) < float64(*cfg.FreeTimeStdDevMin) {
		score += *cfg.EvenFreeTimeBonus
	}
	return clampScore(score)
}

// OverloadedDays counts days whose activity count exceeds the limit
// for the age group.
func OverloadedDays(week model.WeeklySchedule, group model.AgeGroup) int {
	max := model.RulesFor(group).MaxActivitiesPerDay
	n := 0
	for _, day := range week {
		if day.ActivityCount() > max {
			n++
		}
	}
	return n
}

// FreeTimeStdDev returns the standard deviation of daily free minutes.
func FreeTimeStdDev(week model.WeeklySchedule) float64 {
	minutes := make([]float64, 0, len(week))
	for _, d := range model.WeekDays {
		if day := week.Day(d); day != nil {
			minutes = append(minutes, float64(day.FreeMinutes()))
		}
	}
	if len(minutes) < 2 {
		return 0
	}
	return stat.StdDev(minutes, nil)
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
