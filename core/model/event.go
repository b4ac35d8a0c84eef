package model

// EventType classifies a scheduled event.
type EventType string

const (
	EventSchool   EventType = "school"
	EventRoutine  EventType = "routine"
	EventMeal     EventType = "meal"
	EventActivity EventType = "activity"
)

// Priority ranks events from immovable essentials to fully flexible.
type Priority int

const (
	PriorityEssential Priority = 1
	PriorityHigh      Priority = 2
	PriorityMedium    Priority = 3
	PriorityLow       Priority = 4
	PriorityFlexible  Priority = 5
)

// Event is one scheduled item on a child's day. Start must be strictly
// before End.
type Event struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Type           EventType      `json:"type"`
	Start          ClockMinutes   `json:"start"`
	End            ClockMinutes   `json:"end"`
	Priority       Priority       `json:"priority"`
	IsFixed        bool           `json:"is_fixed"` // school/routine/meal events are immovable
	Category       string         `json:"category,omitempty"`
	Responsibility Responsibility `json:"responsibility,omitempty"`
	Location       string         `json:"location,omitempty"`
	TravelMin      int            `json:"travel_minutes,omitempty"`
	Equipment      []string       `json:"equipment,omitempty"`
	Preparation    []string       `json:"preparation,omitempty"`
}

// DurationMinutes returns the event length in minutes.
func (e Event) DurationMinutes() int { return int(e.End - e.Start) }

// Overlaps reports whether two events share any time.
func (e Event) Overlaps(o Event) bool {
	return e.Start < o.End && o.Start < e.End
}
