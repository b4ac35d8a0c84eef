package metrics

import (
	"github.com/kmarens/famsched/core/events"
	"github.com/kmarens/famsched/core/logger"
	coremetrics "github.com/kmarens/famsched/core/metrics"
	"github.com/kmarens/famsched/internal/eventbus"
)

// Collector drains planner events from the bus into a metrics sink.
type Collector struct {
	sub  <-chan events.PlanEvent
	bus  *eventbus.Bus[events.PlanEvent]
	done chan struct{}
}

// NewCollector subscribes to the bus and starts forwarding events.
func NewCollector(bus *eventbus.Bus[events.PlanEvent], sink coremetrics.Sink, log logger.Logger) *Collector {
	if log == nil {
		log = logger.NopLogger{}
	}
	c := &Collector{sub: bus.Subscribe(), bus: bus, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		for ev := range c.sub {
			var err error
			switch e := ev.(type) {
			case events.ScheduleGenerated:
				err = sink.RecordScheduleGenerated(e.ChildID, e.AgeGroup, e.Conflicts, e.Diagnostics, e.BalanceScore)
			case events.FamilyOptimized:
				err = sink.RecordFamilyOptimized(e.Children, e.OptimizationScore)
			}
			if err != nil {
				log.Warnf("metrics sink: %v", err)
			}
		}
	}()
	return c
}

// Close unsubscribes and waits for the forwarding goroutine to drain.
func (c *Collector) Close() {
	c.bus.Unsubscribe(c.sub)
	<-c.done
}
