package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the coarse lifecycle bucket of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//	   │             │
//	   └─> Cancelled <┘
//	(cancel is a terminal override from any non-completed status)
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is placed but items have not
	// entered active processing yet.
	Pending

	// Processing indicates staff are actively working the order through the
	// work stages.
	Processing

	// Completed indicates the order has been delivered.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled is a terminal override reachable from any non-completed status.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateAssign checks if the status allows staff assignment without
// performing any transition. Assignment (and reassignment) is allowed while
// the order is Pending or Processing.
func (s Status) ValidateAssign() error {
	if s != Pending && s != Processing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign staff", s.String()),
		)
	}
	return nil
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (items verified and received)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) StartProcessing() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}
	return Processing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Processing -> Completed (order delivered)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Processing -> Cancelled
//
// Completed and Cancelled are terminal; cancelling again is not a transition.
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}

// StatusForStage derives the coarse status bucket implied by a catalog stage:
// pre-work stages map to Pending, work stages to Processing, and Delivered to
// Completed. Cancellation is an explicit override and never derived.
func StatusForStage(stage Stage) (Status, error) {
	if err := stage.Validate(); err != nil {
		return Unknown, err
	}
	switch {
	case stage == Delivered:
		return Completed, nil
	case stage.IsWorkStage():
		return Processing, nil
	default:
		return Pending, nil
	}
}
