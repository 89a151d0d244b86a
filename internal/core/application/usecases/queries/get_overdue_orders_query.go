package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
		"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
	)
	ErrAsOfIsRequired = errors.New("asOf timestamp is required")
)

// GetOverdueOrdersQuery retrieves undelivered orders whose estimated
// delivery has passed. Terminal orders and orders without an estimate are
// never considered overdue.
//
// Example:
//
//	query, err := NewGetOverdueOrdersQuery(time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get overdue orders: %w", err)
//	}
//
//	for _, o := range overdue {
//	    fmt.Printf("Order %s overdue since %s\n", o.OrderCode, o.EstimatedDelivery)
//	}
type GetOverdueOrdersQuery struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query for orders overdue as of the
// given reference time.
func NewGetOverdueOrdersQuery(asOf time.Time) (GetOverdueOrdersQuery, error) {
	if asOf.IsZero() {
		return GetOverdueOrdersQuery{}, ErrAsOfIsRequired
	}

	return GetOverdueOrdersQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// AsOf returns the reference time overdueness is judged against.
func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueOrdersQueryResponse is one overdue order, with enough context
// to chase it: who it is assigned to and how late it is running.
type GetOverdueOrdersQueryResponse struct {
	ID                kernel.UUID
	OrderCode         string
	AssignedStaffID   *kernel.UUID
	Status            order.Status
	CurrentStage      order.Stage
	EstimatedDelivery time.Time
}
