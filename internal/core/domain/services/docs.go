// Package services provides domain services that derive views across the order
// aggregate without mutating it. It implements logic that doesn't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - ProgressProjector: Derives the customer-facing completion percentage and
//     rendered timeline from an order's current stage and history
//   - SortByStage: The work-queue ordering used when listing a staff member's orders
//
// Domain services here are pure functions of their inputs, safe to call
// arbitrarily often from polling-refresh UIs.
package services
