// Package ports defines the contracts between the fulfillment core and its
// infrastructure collaborators: the order and tag stores, the staff
// directory, and the order event publisher. These interfaces establish the
// boundary the core talks through instead of performing raw HTTP or SQL,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update is a conditional write: the mutation is applied only if the stored
// row still carries the version the aggregate was loaded with, atomically.
// A lost race surfaces as ConcurrentModificationError so the caller can
// refetch and retry; the order is never left partially updated.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate as a conditional
	// write against the version the aggregate was loaded with. Returns
	// ConcurrentModificationError when the stored version no longer matches,
	// ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, complete
	// with items and timeline.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStaff retrieves all orders assigned to the given staff member.
	// Unassigned orders are never returned here.
	GetAllByStaff(ctx context.Context, staffID kernel.UUID) ([]*order.Order, error)
}
