package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a missing entity. Repositories translate
// gorm.ErrRecordNotFound into this so callers never depend on the ORM.
var ErrNotFound = errors.New("not found")

// ErrConfirmationRequired is returned when a destructive action needs an
// explicit second step (e.g. suspending a driver with pending documents).
var ErrConfirmationRequired = errors.New("confirmation required")

// ValidationError: missing or malformed required input, raised before any
// data-access call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError: booking status guard violation.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// Approval block causes, distinct human-readable reasons behind the same
// error type.
const (
	CauseNoDocuments       = "no_documents"
	CauseRejectedDocuments = "has_rejected_documents"
	CausePendingDocuments  = "has_pending_documents"
)

// ApprovalBlockedError: driver verification gate refused the approval.
type ApprovalBlockedError struct {
	Cause string
}

func (e *ApprovalBlockedError) Error() string {
	switch e.Cause {
	case CauseRejectedDocuments:
		return "driver has rejected documents"
	case CausePendingDocuments:
		return "driver has documents awaiting review"
	default:
		return "driver has not submitted any documents"
	}
}

// ConflictError: a guarded update matched zero rows because another writer
// got there first.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// GatewayError wraps a failed data-access call with the operation name.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *GatewayError) Unwrap() error { return e.Err }

func Gateway(op string, err error) error {
	if err == nil {
		return nil
	}
	return &GatewayError{Op: op, Err: err}
}
