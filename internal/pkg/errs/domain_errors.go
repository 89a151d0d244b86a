package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for fulfillment workflow failures. Every workflow error type
// below unwraps to one of these so callers can branch with errors.Is.
var (
	ErrPreconditionFailed     = errors.New("precondition failed")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrInvalidAssignee        = errors.New("invalid assignee")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// PreconditionFailedError indicates that a gating condition required by an
// operation was false at the time it was attempted. The caller is expected to
// resolve the condition rather than retry.
type PreconditionFailedError struct {
	Reason string
	ID     any
	Cause  error
}

// NewPreconditionFailedError creates a PreconditionFailedError without an underlying cause.
func NewPreconditionFailedError(reason string, id any) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason, ID: id}
}

// NewPreconditionFailedErrorWithCause creates a PreconditionFailedError wrapping an underlying cause.
func NewPreconditionFailedErrorWithCause(reason string, id any, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason, ID: id, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s, ID is: %s (cause: %s)",
			ErrPreconditionFailed, e.Reason, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s, ID is: %s", ErrPreconditionFailed, e.Reason, e.ID))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// InvalidTransitionError indicates that a requested status or stage change is
// not legal from the current state. It usually means the caller holds a stale
// view of the order.
type InvalidTransitionError struct {
	From  string
	To    string
	ID    any
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError without an underlying cause.
func NewInvalidTransitionError(from, to string, id any) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, ID: id}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, id any, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, ID: id, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s -> %s, ID is: %s (cause: %s)",
			ErrInvalidTransition, e.From, e.To, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s, ID is: %s", ErrInvalidTransition, e.From, e.To, e.ID))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InvalidAssigneeError indicates that the target of an assignment is not an
// eligible, active staff member.
type InvalidAssigneeError struct {
	Reason  string
	StaffID any
	Cause   error
}

// NewInvalidAssigneeError creates an InvalidAssigneeError without an underlying cause.
func NewInvalidAssigneeError(reason string, staffID any) *InvalidAssigneeError {
	return &InvalidAssigneeError{Reason: reason, StaffID: staffID}
}

// NewInvalidAssigneeErrorWithCause creates an InvalidAssigneeError wrapping an underlying cause.
func NewInvalidAssigneeErrorWithCause(reason string, staffID any, cause error) *InvalidAssigneeError {
	return &InvalidAssigneeError{Reason: reason, StaffID: staffID, Cause: cause}
}

func (e *InvalidAssigneeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s, staff ID is: %s (cause: %s)",
			ErrInvalidAssignee, e.Reason, e.StaffID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s, staff ID is: %s", ErrInvalidAssignee, e.Reason, e.StaffID))
}

func (e *InvalidAssigneeError) Unwrap() error {
	return ErrInvalidAssignee
}

// ConcurrentModificationError indicates that a conditional write lost a race
// against another writer. The recommended caller policy is a single automatic
// refetch-and-retry before surfacing the failure.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConcurrentModificationError creates a ConcurrentModificationError without an underlying cause.
func NewConcurrentModificationError(paramName string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id}
}

// NewConcurrentModificationErrorWithCause creates a ConcurrentModificationError wrapping an underlying cause.
func NewConcurrentModificationErrorWithCause(paramName string, id any, cause error) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConcurrentModificationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s, ID is: %s (cause: %s)",
			ErrConcurrentModification, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s, ID is: %s", ErrConcurrentModification, e.ParamName, e.ID))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
