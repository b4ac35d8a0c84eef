// Package events defines the planner events emitted on the event bus.
//
// Available event types:
//   - ScheduleGenerated: one child's week finished generating
//   - FamilyOptimized: family-level optimization completed
package events

import "github.com/kmarens/famsched/core/model"

// PlanEvent is the union of events carried on the planner bus.
type PlanEvent interface{ planEvent() }

// ScheduleGenerated is published after one child's week is built.
type ScheduleGenerated struct {
	ChildID      string
	AgeGroup     model.AgeGroup
	Conflicts    int
	Diagnostics  int
	BalanceScore int
}

func (ScheduleGenerated) planEvent() {}

// FamilyOptimized is published once per family optimization pass.
type FamilyOptimized struct {
	Children          int
	OptimizationScore int
}

func (FamilyOptimized) planEvent() {}
