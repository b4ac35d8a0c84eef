package model

import (
	"fmt"
	"time"
)

// RecurrenceKind discriminates the supported recurrence patterns.
type RecurrenceKind string

const (
	RecurWeekly   RecurrenceKind = "weekly"
	RecurBiweekly RecurrenceKind = "biweekly"
	RecurMonthly  RecurrenceKind = "monthly"
)

// MonthTypeSameDate repeats a monthly activity on the start date's
// day-of-month. Other month types are not supported and never occur.
const MonthTypeSameDate = "same_date"

// RecurrenceRule is the declarative pattern deciding which calendar
// dates an activity occurs on. Kind selects which fields are relevant:
// weekly uses the schedule's day list, biweekly additionally needs
// StartDate for week parity, monthly needs StartDate and MonthType.
type RecurrenceRule struct {
	Kind      RecurrenceKind `json:"kind"`
	StartDate time.Time      `json:"start_date"`
	MonthType string         `json:"month_type"`
}

// Validate rejects unknown kinds. A missing start date is not an error
// here: biweekly and monthly rules without one simply never occur, per
// the skip-not-fail policy.
func (r RecurrenceRule) Validate() error {
	switch r.Kind {
	case RecurWeekly, RecurBiweekly, RecurMonthly, "":
		return nil
	default:
		return fmt.Errorf("unknown recurrence kind %q", r.Kind)
	}
}
