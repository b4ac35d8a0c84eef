package model

import "time"

// SharedActivity is an opportunity for two or more children to attend
// the same activity together.
type SharedActivity struct {
	Title             string       `json:"title"`
	Location          string       `json:"location"`
	Day               time.Weekday `json:"day"`
	ChildIDs          []string     `json:"child_ids"`
	TransportSavedMin int          `json:"transport_saved_minutes"`
	CostSavedPercent  int          `json:"cost_saved_percent"`
	Feasibility       float64      `json:"feasibility"` // 0-1
}

// CarpoolOption scores how worthwhile coordinating transportation for
// one child's activity is. Score is always in [0,1]; only options with
// score strictly above the carpool threshold are surfaced.
type CarpoolOption struct {
	ChildID          string  `json:"child_id"`
	ActivityID       string  `json:"activity_id"`
	ActivityName     string  `json:"activity_name"`
	Location         string  `json:"location"`
	DaysPerWeek      int     `json:"days_per_week"`
	Score            float64 `json:"score"`
	TimeSavedMin     int     `json:"time_saved_minutes"`
	CostSavedPercent int     `json:"cost_saved_percent"`
	StressReduction  string  `json:"stress_reduction"`
}

// FamilyTimeCategory labels a protected family slot by time of day.
type FamilyTimeCategory string

const (
	FamilyTimeMorning  FamilyTimeCategory = "morning_routine"
	FamilyTimeWeekend  FamilyTimeCategory = "weekend_activity"
	FamilyTimeDinner   FamilyTimeCategory = "dinner_time"
	FamilyTimeEvening  FamilyTimeCategory = "evening_bonding"
	FamilyTimeFlexible FamilyTimeCategory = "flexible"
)

// FamilyTimeSlot is a window where every child is simultaneously free.
type FamilyTimeSlot struct {
	Day             time.Weekday       `json:"day"`
	Start           ClockMinutes       `json:"start"`
	End             ClockMinutes       `json:"end"`
	DurationMinutes int                `json:"duration_minutes"`
	Category        FamilyTimeCategory `json:"category"`
	Priority        int                `json:"priority"`
}

// ParallelActivity matches same-age-bracket children with a catalog
// activity they could attend at the same time.
type ParallelActivity struct {
	Bracket         AgeGroup     `json:"bracket"`
	ChildIDs        []string     `json:"child_ids"`
	Activity        string       `json:"activity"`
	Category        string       `json:"category"`
	DurationMinutes int          `json:"duration_minutes"`
	Day             time.Weekday `json:"day"`
	Start           ClockMinutes `json:"start"`
}

// RecommendationType names family-level recommendation categories.
type RecommendationType string

const (
	RecommendTransportation RecommendationType = "transportation"
	RecommendBalance        RecommendationType = "balance"
	RecommendFamilyTime     RecommendationType = "family_time"
	RecommendDiversity      RecommendationType = "diversity"
)

// Recommendation is a ranked family-level advice entry.
type Recommendation struct {
	Type     RecommendationType `json:"type"`
	Priority Severity           `json:"priority"`
	Message  string             `json:"message"`
}

// FamilyOptimizationResult is the fan-in output across all children.
// It references the per-child plans it was built from but does not own
// them; a fresh result is produced per optimization call.
type FamilyOptimizationResult struct {
	CoordinatedActivities []SharedActivity   `json:"coordinated_activities"`
	CarpoolOptions        []CarpoolOption    `json:"carpool_options"`
	FamilyTimeSlots       []FamilyTimeSlot   `json:"family_time_slots"`  // sorted by priority desc
	ParallelActivities    []ParallelActivity `json:"parallel_activities"`
	Recommendations       []Recommendation   `json:"recommendations"`    // sorted by priority desc
	OptimizationScore     int                `json:"optimization_score"` // 0-100
}

// FamilyPlan bundles every child's plan with the family optimization.
type FamilyPlan struct {
	Children     []ChildPlan              `json:"children"`
	Optimization FamilyOptimizationResult `json:"optimization"`
	Diagnostics  Diagnostics              `json:"diagnostics,omitempty"`
}
