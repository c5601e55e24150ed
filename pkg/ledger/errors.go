package ledger

import (
	"fmt"
)

// ValidationError means the caller handed a mutation malformed input.
// Recoverable: correct the input and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError means a mutation targeted an id that is not in the store.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no transaction with id %q", e.ID)
}
