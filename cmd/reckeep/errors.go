package main

import (
	"fmt"
	"strings"
)

// CLIError represents a user-friendly CLI error with context and suggestions
type CLIError struct {
	Operation   string   // The operation that failed (e.g., "add", "update")
	Cause       string   // The underlying cause (e.g., "record not found")
	Details     string   // Additional technical details
	Suggestions []string // Helpful suggestions for the user
	Underlying  error    // Original error for debugging
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var msg strings.Builder

	if e.Operation != "" {
		msg.WriteString(fmt.Sprintf("Failed to %s", e.Operation))
	} else {
		msg.WriteString("Operation failed")
	}

	if e.Cause != "" {
		msg.WriteString(fmt.Sprintf(": %s", e.Cause))
	}

	if e.Details != "" {
		msg.WriteString(fmt.Sprintf(" (%s)", e.Details))
	}

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n\nSuggestions:")
		for i, suggestion := range e.Suggestions {
			msg.WriteString(fmt.Sprintf("\n  %d. %s", i+1, suggestion))
		}
	}

	return msg.String()
}

// Unwrap returns the underlying error for error chain compatibility
func (e *CLIError) Unwrap() error {
	return e.Underlying
}

// NewNotFoundError creates an error for a missing record id
func NewNotFoundError(operation string, id int64) *CLIError {
	return &CLIError{
		Operation: operation,
		Cause:     fmt.Sprintf("record with id %d not found", id),
		Suggestions: []string{
			"Run 'reckeep list' to see existing records and their ids",
		},
	}
}

// NewStoreError creates an error for store-related issues
func NewStoreError(operation string, underlying error) *CLIError {
	cause := "store operation failed"
	details := ""

	if underlying != nil {
		details = underlying.Error()

		errStr := strings.ToLower(underlying.Error())
		switch {
		case strings.Contains(errStr, "permission denied"):
			cause = "insufficient permissions to access the store file"
		case strings.Contains(errStr, "could not acquire file lock"):
			cause = "store is currently locked by another process"
		case strings.Contains(errStr, "failed to parse json"):
			cause = "store file is corrupted"
		}
	}

	return &CLIError{
		Operation:  operation,
		Cause:      cause,
		Details:    details,
		Underlying: underlying,
		Suggestions: []string{
			"Check file permissions and directory access",
			"Verify --store points at a valid store file",
		},
	}
}
