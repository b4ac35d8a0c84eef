// Package metrics defines the sink interface planner observability
// backends implement. The engine itself never records metrics; the
// planner service forwards events to a configured sink.
package metrics

import "github.com/kmarens/famsched/core/model"

// Sink receives planning events.
type Sink interface {
	// RecordScheduleGenerated is called once per generated child week.
	RecordScheduleGenerated(childID string, group model.AgeGroup, conflicts, diagnostics, balanceScore int) error
	// RecordFamilyOptimized is called once per family optimization.
	RecordFamilyOptimized(children, optimizationScore int) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordScheduleGenerated(string, model.AgeGroup, int, int, int) error { return nil }
func (NopSink) RecordFamilyOptimized(int, int) error                               { return nil }

// MultiSink fans events out to several sinks, returning the first
// error encountered.
type MultiSink []Sink

func (m MultiSink) RecordScheduleGenerated(childID string, group model.AgeGroup, conflicts, diagnostics, balanceScore int) error {
	for _, s := range m {
		if err := s.RecordScheduleGenerated(childID, group, conflicts, diagnostics, balanceScore); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiSink) RecordFamilyOptimized(children, optimizationScore int) error {
	for _, s := range m {
		if err := s.RecordFamilyOptimized(children, optimizationScore); err != nil {
			return err
		}
	}
	return nil
}
