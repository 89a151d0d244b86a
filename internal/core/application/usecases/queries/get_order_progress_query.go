package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderProgressQueryIsNotConstructed = errors.New(
	"GetOrderProgressQuery must be created via NewGetOrderProgressQuery constructor",
)

// GetOrderProgressQuery retrieves the customer-facing progress view of an
// order: a completion percentage and the rendered stage timeline.
//
// Example:
//
//	query, err := NewGetOrderProgressQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	progress, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order progress: %w", err)
//	}
//
//	fmt.Printf("Order %s is %d%% complete\n", progress.OrderCode, progress.Percent)
type GetOrderProgressQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderProgressQuery creates a query for an order's progress view.
func NewGetOrderProgressQuery(orderID kernel.UUID) (GetOrderProgressQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderProgressQuery{}, err
	}

	return GetOrderProgressQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderProgressQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderProgressQueryIsNotConstructed)
}

// OrderID returns the order whose progress is requested.
func (q GetOrderProgressQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderProgressQueryResponse is the rendered progress view of one order.
type GetOrderProgressQueryResponse struct {
	OrderID      kernel.UUID
	OrderCode    string
	Status       order.Status
	CurrentStage order.Stage
	Percent      int
	Timeline     []services.TimelineStep
}
