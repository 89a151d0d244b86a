// Package errs provides standardized error types for the laundry fulfillment
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for value validation:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and for fulfillment workflow failures:
//   - PreconditionFailedError: A gating condition (e.g. item verification) was false
//   - InvalidTransitionError: A status/stage change is not legal from the current state
//   - InvalidAssigneeError: The assignment target is not an eligible staff member
//   - ConcurrentModificationError: A conditional write lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Errors are never swallowed by the core: every failure is returned with the
// offending identifiers attached so the caller can render a specific message.
package errs
