package model

import "fmt"

// Diagnostic records a skipped or malformed input item. The engine
// accumulates diagnostics instead of failing the batch, so callers and
// tests can assert on what was dropped.
type Diagnostic struct {
	ChildID string `json:"child_id,omitempty"`
	Stage   string `json:"stage"`   // e.g. "routine", "recurrence", "school"
	Subject string `json:"subject"` // the offending field or activity
	Message string `json:"message"`
}

// Diagnostics collects diagnostics during one generation pass.
type Diagnostics []Diagnostic

// Addf appends a formatted diagnostic.
func (d *Diagnostics) Addf(childID, stage, subject, format string, args ...any) {
	*d = append(*d, Diagnostic{
		ChildID: childID,
		Stage:   stage,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	})
}
