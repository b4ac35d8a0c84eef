package model

import "time"

// ConflictType names the fixed set of rule checks.
type ConflictType string

const (
	ConflictOverlap       ConflictType = "overlap"
	ConflictOverload      ConflictType = "overload"
	ConflictDuration      ConflictType = "duration"
	ConflictNapProtection ConflictType = "nap_protection"
)

// Severity grades a conflict or suggestion.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities for sorting, higher is more urgent.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// Conflict is a purely descriptive rule violation found on one day.
type Conflict struct {
	Type       ConflictType `json:"type"`
	Severity   Severity     `json:"severity"`
	Day        time.Weekday `json:"day"`
	EventIDs   []string     `json:"event_ids"`
	Message    string       `json:"message"`
	Suggestion string       `json:"suggestion,omitempty"`
}

// SuggestionType names the kinds of schedule improvements emitted.
type SuggestionType string

const (
	SuggestionFreePlay    SuggestionType = "free_play"
	SuggestionOutdoorTime SuggestionType = "outdoor_time"
	SuggestionBalance     SuggestionType = "balance"
)

// Suggestion is an improvement hint for a day or the whole week.
type Suggestion struct {
	Type     SuggestionType `json:"type"`
	Priority Severity       `json:"priority"`
	Day      *time.Weekday  `json:"day,omitempty"` // nil for weekly suggestions
	Message  string         `json:"message"`
}
