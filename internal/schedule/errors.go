package schedule

import (
	"errors"
	"fmt"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
)

// ErrorKind classifies failures detected locally, before any backend call.
// Backend errors are passed through verbatim and carry no kind.
type ErrorKind string

const (
	InvalidFormat      ErrorKind = "invalid_format"
	OrderingViolation  ErrorKind = "ordering_violation"
	WindowViolation    ErrorKind = "window_violation"
	DurationViolation  ErrorKind = "duration_violation"
	MissingReason      ErrorKind = "missing_reason"
	NoEmployeeAssigned ErrorKind = "no_employee_assigned"
	InvalidTransition  ErrorKind = "invalid_transition"
)

type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a validation error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}

// PartialSwapError reports a swap where exactly one of the two underlying
// moves succeeded. The applied half is already committed on the backend and
// reflected in the snapshot returned alongside this error; the engine does
// not attempt a compensating move, the caller must re-fetch and reconcile.
type PartialSwapError struct {
	AppliedShiftID string        // original id of the half whose move succeeded
	AppliedShift   *domain.Shift // backend-issued replacement for that half
	FailedShiftID  string        // original id of the half whose move failed
	Cause          error
}

func (e *PartialSwapError) Error() string {
	return fmt.Sprintf("partial swap failure: move of shift %s applied, move of shift %s failed: %v",
		e.AppliedShiftID, e.FailedShiftID, e.Cause)
}

func (e *PartialSwapError) Unwrap() error {
	return e.Cause
}
