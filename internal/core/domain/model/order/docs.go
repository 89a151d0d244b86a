// Package order provides domain entities and business logic for laundry order
// fulfillment. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns status, current stage, items, and timeline
//   - Status: A state machine that enforces valid status transitions
//   - Stage: The fixed ten-stage fulfillment catalog and its pure lookups
//   - Item: A service line whose individual item names must match its quantity
//   - StageEvent: One entry in the order's append-only stage timeline
//
// Key business rules:
//   - The current stage is always a member of the fixed stage catalog
//   - Status follows pending -> processing -> completed, with cancelled as a
//     terminal override from any non-completed status
//   - Entering processing is gated on every item of the order being verified
//   - Completed coincides exactly with the delivered stage
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
