package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to interested
// consumers (customer notifications, analytics). Publishing happens after a
// successful commit and is best-effort: a publish failure never rolls back
// or fails the business operation.
type OrderEventPublisher interface {
	// PublishOrderChanged emits the order's post-commit state.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
