package model

import "time"

// Responsibility identifies who is accountable for an event occurrence.
type Responsibility string

const (
	ResponsibilityParent Responsibility = "parent"
	ResponsibilityAuPair Responsibility = "au_pair"
	ResponsibilityShared Responsibility = "shared"
	ResponsibilityAware  Responsibility = "aware"
)

// AgeGroup buckets a child by age and drives the rule-table lookups.
type AgeGroup string

const (
	AgeInfant    AgeGroup = "infant"
	AgeToddler   AgeGroup = "toddler"
	AgePreschool AgeGroup = "preschool"
	AgeSchool    AgeGroup = "school"
)

// DefaultAgeGroup is assumed when a child has no date of birth on record.
const DefaultAgeGroup = AgePreschool

// AgeGroupFor derives the age group from a date of birth at the given
// reference time. A zero dob yields DefaultAgeGroup.
func AgeGroupFor(dob, now time.Time) AgeGroup {
	if dob.IsZero() {
		return DefaultAgeGroup
	}
	years := AgeYears(dob, now)
	switch {
	case years < 2:
		return AgeInfant
	case years < 4:
		return AgeToddler
	case years < 6:
		return AgePreschool
	default:
		return AgeSchool
	}
}

// AgeYears returns full years elapsed between dob and now.
func AgeYears(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// AgeRules holds the per-age-group limits used by conflict validation.
type AgeRules struct {
	MaxActivitiesPerDay int
	NapProtectionMin    int // buffer in minutes around nap events
	MaxActivityDuration int // minutes
}

var ageRules = map[AgeGroup]AgeRules{
	AgeInfant:    {MaxActivitiesPerDay: 1, NapProtectionMin: 45, MaxActivityDuration: 30},
	AgeToddler:   {MaxActivitiesPerDay: 2, NapProtectionMin: 30, MaxActivityDuration: 60},
	AgePreschool: {MaxActivitiesPerDay: 3, NapProtectionMin: 15, MaxActivityDuration: 90},
	AgeSchool:    {MaxActivitiesPerDay: 4, NapProtectionMin: 0, MaxActivityDuration: 120},
}

// RulesFor returns the limits for the given age group.
func RulesFor(g AgeGroup) AgeRules { return ageRules[g] }

// Nap is one scheduled nap within a daily routine.
type Nap struct {
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// DailyRoutine describes the recurring daily anchors of a child.
// All times are "HH:MM" strings as stored by the document layer; empty
// fields mean the slot does not exist for this child.
type DailyRoutine struct {
	WakeUpTime       string                    `json:"wake_up_time"`
	Breakfast        string                    `json:"breakfast"`
	Lunches          []string                  `json:"lunches"`
	Snacks           []string                  `json:"snacks"`
	Dinner           string                    `json:"dinner"`
	Naps             []Nap                     `json:"naps"`
	Bedtime          string                    `json:"bedtime"`
	Responsibilities map[string]Responsibility `json:"responsibilities"`
}

// SchoolBlock is one fixed school period on a weekday.
type SchoolBlock struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	BlockType string `json:"block_type"` // e.g. "school", "kindergarten", "after_school"
	TravelMin int    `json:"travel_minutes"`
}

// ActivityLocation describes where a weekly activity takes place.
type ActivityLocation struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	TravelMin int    `json:"travel_minutes"`
}

// ActivitySchedule is the recurring pattern of a weekly activity.
type ActivitySchedule struct {
	Days            []string `json:"days"` // lowercase weekday names
	StartTime       string   `json:"start_time"`
	DurationMinutes int      `json:"duration_minutes"`
}

// WeeklyActivity is one recurring activity from a child's configuration.
type WeeklyActivity struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"` // physical, creative, social, educational, outdoor
	Location    ActivityLocation `json:"location"`
	Schedule    ActivitySchedule `json:"schedule"`
	Recurrence  RecurrenceRule   `json:"recurrence"`
	Equipment   []string         `json:"equipment"`
	Preparation []string         `json:"preparation"`
	Contact     string           `json:"contact"`
}

// ChildProfile is the read-only input record for one child. The engine
// never mutates it and assumes nothing about how it was stored.
type ChildProfile struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	DateOfBirth    time.Time                `json:"date_of_birth"`
	Routine        DailyRoutine             `json:"daily_routine"`
	SchoolSchedule map[string][]SchoolBlock `json:"school_schedule"` // weekday name -> blocks
	Activities     []WeeklyActivity         `json:"weekly_activities"`
}

// AgeGroup derives the child's age group at the reference time.
func (c ChildProfile) AgeGroup(now time.Time) AgeGroup {
	return AgeGroupFor(c.DateOfBirth, now)
}
