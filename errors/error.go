package errors

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// UnregisteredExchangeError occurs when planFor is queried for an exchange
// that never registered with the coordinator
type UnregisteredExchangeError struct{ ExchangeID int }

// Error returns a textual representation of this UnregisteredExchangeError
func (e UnregisteredExchangeError) Error() string {
	return fmt.Sprintf("exchange %d is not registered with this coordinator", e.ExchangeID)
}

// InvariantViolationError occurs when estimation discovers that a structural
// invariant of the surrounding system was broken, e.g. mismatched
// pre-shuffle partition counts across statistics that are supposed to share
// one partitioner. It poisons the coordinator.
type InvariantViolationError struct{ Reason string }

// Error returns a textual representation of this InvariantViolationError
func (e InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violation: %s", e.Reason)
}

// NewInvariantViolation wraps one or more violations discovered during a
// single validation pass (for example, several exchanges simultaneously
// reporting different P) into a single InvariantViolationError, so a caller
// sees the complete set rather than only the first one found. Returns nil if
// violations is empty.
func NewInvariantViolation(violations *multierror.Error) error {
	if violations == nil || len(violations.Errors) == 0 {
		return nil
	}
	return InvariantViolationError{Reason: violations.Error()}
}

// UpstreamStageFailedError wraps the failure of a submitted map stage. It
// poisons the coordinator: every subsequent planFor call re-raises this same
// error.
type UpstreamStageFailedError struct{ Cause error }

// Error returns a textual representation of this UpstreamStageFailedError
func (e UpstreamStageFailedError) Error() string {
	return fmt.Sprintf("upstream map stage failed: %s", e.Cause.Error())
}

// Unwrap allows errors.Is / errors.As to see through to the underlying cause
func (e UpstreamStageFailedError) Unwrap() error {
	return e.Cause
}

// UnexpectedRegistrationCountError occurs when estimation runs with a
// different number of registered exchanges than the coordinator was
// constructed to expect
type UnexpectedRegistrationCountError struct {
	Expected uint32
	Actual   uint32
}

// Error returns a textual representation of this UnexpectedRegistrationCountError
func (e UnexpectedRegistrationCountError) Error() string {
	return fmt.Sprintf("expected %d registered exchanges, found %d", e.Expected, e.Actual)
}
