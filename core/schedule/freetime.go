package schedule

import (
	"sort"

	"github.com/kmarens/famsched/core/model"
)

// DayWindow bounds the portion of the day free time is computed over.
type DayWindow struct {
	Start model.ClockMinutes `json:"start"`
	End   model.ClockMinutes `json:"end"`
}

// DefaultDayWindow spans 07:00 to 20:00.
func DefaultDayWindow() DayWindow {
	return DayWindow{Start: 7 * 60, End: 20 * 60}
}

// FreeTimeSlots computes the gaps between busy intervals inside the
// window. Sleep-category routine events do not occupy free time. Gaps
// shorter than model.MinFreeSlotMinutes are discarded; together with
// the busy intervals the returned slots tile the window exactly.
func FreeTimeSlots(day *model.DaySchedule, window DayWindow) []model.FreeSlot {
	busy := busyIntervals(day, window)
	var slots []model.FreeSlot
	cursor := window.Start
	for _, iv := range busy {
		if iv.Start-cursor >= model.MinFreeSlotMinutes {
			slots = append(slots, model.FreeSlot{Start: cursor, End: iv.Start})
		}
		if iv.End > cursor {
			cursor = iv.End
		}
	}
	if window.End-cursor >= model.MinFreeSlotMinutes {
		slots = append(slots, model.FreeSlot{Start: cursor, End: window.End})
	}
	return slots
}

// busyIntervals returns merged, window-clipped busy intervals sorted by
// start.
func busyIntervals(day *model.DaySchedule, window DayWindow) []model.FreeSlot {
	var raw []model.FreeSlot
	for _, ev := range day.Events {
		if ev.Type == model.EventRoutine && ev.Category == CategorySleep {
			continue
		}
		start, end := ev.Start, ev.End
		if start < window.Start {
			start = window.Start
		}
		if end > window.End {
			end = window.End
		}
		if end <= start {
			continue
		}
		raw = append(raw, model.FreeSlot{Start: start, End: end})
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i].Start < raw[j].Start })
	var merged []model.FreeSlot
	for _, iv := range raw {
		if n := len(merged); n > 0 && iv.Start <= merged[n-1].End {
			if iv.End > merged[n-1].End {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
