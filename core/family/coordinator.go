package family

import (
	"errors"
	"time"

	"github.com/kmarens/famsched/core/logger"
	"github.com/kmarens/famsched/core/model"
)

// ChildWeek pairs a child's profile with their generated plan. The
// coordinator reads both and owns neither.
type ChildWeek struct {
	Profile model.ChildProfile
	Plan    model.ChildPlan
}

// Coordinator computes family-level optimizations over all children's
// generated weeks. It is a pure fan-in step: every per-child plan must
// be complete before Optimize runs.
type Coordinator struct {
	Config Config
	Log    logger.Logger
}

// NewCoordinator returns a coordinator with the reference weights.
func NewCoordinator() Coordinator {
	var cfg Config
	cfg.SetDefaults()
	return Coordinator{Config: cfg, Log: logger.NopLogger{}}
}

// Optimize builds a fresh FamilyOptimizationResult from the supplied
// weeks. Supplying no children is a caller error. The reference time
// only drives age derivation.
func (c Coordinator) Optimize(children []ChildWeek, now time.Time) (model.FamilyOptimizationResult, error) {
	if len(children) == 0 {
		return model.FamilyOptimizationResult{}, errors.New("family optimization requires at least one child")
	}
	cfg := c.Config
	if err := cfg.Validate(); err != nil {
		return model.FamilyOptimizationResult{}, err
	}
	cfg.SetDefaults()
	log := c.Log
	if log == nil {
		log = logger.NopLogger{}
	}

	shared := SharedActivities(children, now)
	carpool := CarpoolOptions(children, *cfg.CarpoolThreshold)
	familyTime := FamilyTimeSlots(children)
	parallel := ParallelActivities(children, now)
	recs := Recommendations(children, shared, carpool, familyTime)

	result := model.FamilyOptimizationResult{
		CoordinatedActivities: shared,
		CarpoolOptions:        carpool,
		FamilyTimeSlots:       familyTime,
		ParallelActivities:    parallel,
		Recommendations:       recs,
		OptimizationScore:     optimizationScore(cfg, children, shared, familyTime),
	}
	log.Debugw("family optimization complete", map[string]any{
		"children":    len(children),
		"shared":      len(shared),
		"carpool":     len(carpool),
		"family_time": len(familyTime),
		"score":       result.OptimizationScore,
	})
	return result, nil
}

// optimizationScore penalizes conflicts and overloaded days across all
// children and rewards coordination opportunities, clamped to [0,100].
// The config must already have its defaults applied.
func optimizationScore(cfg Config, children []ChildWeek, shared []model.SharedActivity, familyTime []model.FamilyTimeSlot) int {
	score := 100
	for _, cw := range children {
		score -= *cfg.ConflictPenalty * len(cw.Plan.Conflicts)
		score -= *cfg.OverloadPenalty * cw.Plan.Metadata.OverloadedDays
	}
	score += *cfg.SharedActivityBonus * len(shared)
	score += *cfg.FamilyTimeBonus * len(familyTime)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// freeSlotsOn returns a child's free slots for the given weekday.
func freeSlotsOn(cw ChildWeek, day time.Weekday) []model.FreeSlot {
	if d := cw.Plan.Week.Day(day); d != nil {
		return d.FreeSlots
	}
	return nil
}

// intersect keeps the portions of a and b that overlap.
func intersect(a, b []model.FreeSlot) []model.FreeSlot {
	var out []model.FreeSlot
	for _, x := range a {
		for _, y := range b {
			start, end := x.Start, x.End
			if y.Start > start {
				start = y.Start
			}
			if y.End < end {
				end = y.End
			}
			if end > start {
				out = append(out, model.FreeSlot{Start: start, End: end})
			}
		}
	}
	return out
}

// commonFreeSlots intersects the free slots of every supplied child on
// one weekday. The result is empty as soon as one child has none.
func commonFreeSlots(children []ChildWeek, day time.Weekday) []model.FreeSlot {
	if len(children) == 0 {
		return nil
	}
	common := freeSlotsOn(children[0], day)
	for _, cw := range children[1:] {
		common = intersect(common, freeSlotsOn(cw, day))
		if len(common) == 0 {
			return nil
		}
	}
	return common
}
