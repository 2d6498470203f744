package reckeep

import (
	"errors"
	"fmt"

	"github.com/reckeep/reckeep/internal/validation"
)

// ValidationError reports malformed input to a mutating operation. It
// is surfaced before any I/O occurs, so the collection is unchanged.
type ValidationError = validation.Error

// StoreError wraps a Durable Store read or write failure. Store
// failures are always fatal to the current operation; the new
// collection is either fully persisted or not persisted at all.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: store failure: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
