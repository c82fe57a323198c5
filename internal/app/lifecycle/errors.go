package lifecycle

import "fmt"

// NotFoundError means the request id did not resolve.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("request %s not found", e.ID)
}

// InvalidTransitionError rejects an operation attempted on a request that
// is not in the required prior state.
type InvalidTransitionError struct {
	ID   string
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("request %s: cannot move from %q to %q", e.ID, e.From, e.To)
}

// ValidationError rejects a draft that fails required-field or enum checks.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError means a concurrent writer got there first: the version the
// caller read is no longer current. Re-read and retry.
type ConflictError struct {
	ID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("request %s was modified concurrently", e.ID)
}
