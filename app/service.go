// Package app wires the engine packages into a planner service: it
// fans out per-child schedule generation, fans the results into the
// family coordinator and publishes planner events for observers.
package app

import (
	"errors"
	"sync"
	"time"

	"github.com/kmarens/famsched/config"
	"github.com/kmarens/famsched/core/events"
	"github.com/kmarens/famsched/core/family"
	"github.com/kmarens/famsched/core/logger"
	"github.com/kmarens/famsched/core/model"
	"github.com/kmarens/famsched/core/schedule"
	"github.com/kmarens/famsched/internal/eventbus"
)

// Planner generates conflict-checked weekly schedules for every child
// of a family and the cross-child optimization on top. It holds no
// state between calls; every plan is a fresh value.
type Planner struct {
	opts        schedule.Options
	coordinator family.Coordinator
	log         logger.Logger
	bus         *eventbus.Bus[events.PlanEvent]
}

// New builds a planner from the configuration.
func New(cfg *config.Config, log logger.Logger) (*Planner, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	window, err := cfg.DayWindow.Window()
	if err != nil {
		return nil, err
	}
	return &Planner{
		opts:        schedule.Options{Window: window, Scoring: cfg.Scoring, Log: log},
		coordinator: family.Coordinator{Config: cfg.Family, Log: log},
		log:         log,
		bus:         eventbus.New[events.PlanEvent](),
	}, nil
}

// Bus exposes the planner event bus for observers such as the metrics
// collector.
func (p *Planner) Bus() *eventbus.Bus[events.PlanEvent] { return p.bus }

// Close shuts the event bus down.
func (p *Planner) Close() { p.bus.Close() }

// PlanFamily generates every child's week concurrently and runs the
// family optimization over the assembled results. All time inputs are
// explicit: now drives age derivation, weekStart is the Monday the
// week runs from. Supplying no children is a caller error.
func (p *Planner) PlanFamily(children []model.ChildProfile, now, weekStart time.Time) (model.FamilyPlan, error) {
	if len(children) == 0 {
		return model.FamilyPlan{}, errors.New("no children supplied")
	}

	weeks := make([]family.ChildWeek, len(children))
	var wg sync.WaitGroup
	for i, child := range children {
		wg.Add(1)
		go func(i int, child model.ChildProfile) {
			defer wg.Done()
			plan := schedule.GenerateWeek(child, now, weekStart, p.opts)
			weeks[i] = family.ChildWeek{Profile: child, Plan: plan}
		}(i, child)
	}
	wg.Wait()

	var allDiags model.Diagnostics
	plans := make([]model.ChildPlan, len(weeks))
	for i, cw := range weeks {
		plans[i] = cw.Plan
		allDiags = append(allDiags, cw.Plan.Diagnostics...)
		p.bus.Publish(events.ScheduleGenerated{
			ChildID:      cw.Profile.ID,
			AgeGroup:     cw.Plan.Metadata.AgeGroup,
			Conflicts:    len(cw.Plan.Conflicts),
			Diagnostics:  len(cw.Plan.Diagnostics),
			BalanceScore: cw.Plan.Metadata.BalanceScore,
		})
	}

	optimization, err := p.coordinator.Optimize(weeks, now)
	if err != nil {
		return model.FamilyPlan{}, err
	}
	p.bus.Publish(events.FamilyOptimized{
		Children:          len(children),
		OptimizationScore: optimization.OptimizationScore,
	})
	p.log.Infof("planned week for %d children, optimization score %d", len(children), optimization.OptimizationScore)

	return model.FamilyPlan{
		Children:     plans,
		Optimization: optimization,
		Diagnostics:  allDiags,
	}, nil
}

// NextMonday returns the Monday on or after the given time, at
// midnight in its location.
func NextMonday(from time.Time) time.Time {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}
