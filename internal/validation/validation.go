// Package validation checks record input before any I/O happens.
package validation

import (
	"fmt"
	"strings"
)

// Error reports malformed input to a mutating operation. It names the
// offending field so callers can surface a precise message.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateRecordInput checks the name and value supplied to add or
// update. The name must be non-empty after trimming; the value must be
// present.
func ValidateRecordInput(name, value string) error {
	if strings.TrimSpace(name) == "" {
		return &Error{Field: "name", Reason: "must be non-empty"}
	}
	if value == "" {
		return &Error{Field: "value", Reason: "must be present"}
	}
	return nil
}
