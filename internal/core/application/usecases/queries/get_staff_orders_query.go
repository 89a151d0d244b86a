package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStaffOrdersQueryIsNotConstructed = errors.New(
	"GetStaffOrdersQuery must be created via NewGetStaffOrdersQuery constructor",
)

// GetStaffOrdersQuery retrieves the work queue of a single staff member:
// exactly the orders currently assigned to them. Unassigned orders never
// appear in the result.
//
// Example:
//
//	query, err := NewGetStaffOrdersQuery(staffID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get staff orders: %w", err)
//	}
//
//	fmt.Printf("%d orders in queue\n", len(orders))
type GetStaffOrdersQuery struct { //nolint:recvcheck //using for validation
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStaffOrdersQuery creates a query for a staff member's assigned orders.
func NewGetStaffOrdersQuery(staffID kernel.UUID) (GetStaffOrdersQuery, error) {
	if err := staffID.Validate(); err != nil {
		return GetStaffOrdersQuery{}, err
	}

	return GetStaffOrdersQuery{
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaffOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaffOrdersQueryIsNotConstructed)
}

// StaffID returns the staff member whose queue is requested.
func (q GetStaffOrdersQuery) StaffID() kernel.UUID {
	return q.staffID
}

// GetStaffOrdersQueryResponse is one entry of a staff member's work queue.
type GetStaffOrdersQueryResponse struct {
	ID                kernel.UUID
	OrderCode         string
	Status            order.Status
	CurrentStage      order.Stage
	ItemCount         int
	Amount            decimal.Decimal
	EstimatedDelivery *time.Time
}
