package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockMinutes is a time of day expressed as minutes from midnight.
// It is the canonical within-day representation: "HH:MM" strings are
// parsed once at the model boundary and never travel further.
type ClockMinutes int

// ParseClock converts an "HH:MM" string to ClockMinutes. The whole
// string must be consumed: trailing text like "16:00pm" is rejected.
func ParseClock(s string) (ClockMinutes, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return ClockMinutes(h*60 + m), nil
}

// String formats the time back to "HH:MM".
func (c ClockMinutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Hour returns the hour component.
func (c ClockMinutes) Hour() int { return int(c) / 60 }

// At anchors the clock time on the given calendar date.
func (c ClockMinutes) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), int(c)%60, 0, 0, date.Location())
}

// Weekday names as they appear in configuration data, Monday first.
var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ParseWeekday resolves a lowercase weekday name.
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[name]
	return d, ok
}

// WeekdayKey returns the lowercase name used as configuration key.
func WeekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// WeekDays lists the seven weekdays Monday first, matching the order a
// weekly schedule is assembled in.
var WeekDays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}
