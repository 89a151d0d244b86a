package queries

import (
	"context"

	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// GetStaffOrdersQueryHandler builds a staff member's work queue from the
// order repository. Orders deep in processing surface first so active work
// is never buried under orders that have not started, with the order code
// as a stable tie-break.
type GetStaffOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetStaffOrdersQueryHandler creates a handler for staff work queue queries.
func NewGetStaffOrdersQueryHandler(orderRepository ports.OrderRepository) GetStaffOrdersQueryHandler {
	return GetStaffOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle returns the orders assigned to the staff member named in the query,
// ordered by catalog stage position, deepest first.
func (h GetStaffOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaffOrdersQuery,
) ([]GetStaffOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepository.GetAllByStaff(ctx, query.StaffID())
	if err != nil {
		return nil, err
	}

	services.SortByStage(orders)

	responses := make([]GetStaffOrdersQueryResponse, 0, len(orders))
	for _, aggregate := range orders {
		responses = append(responses, GetStaffOrdersQueryResponse{
			ID:                aggregate.ID(),
			OrderCode:         aggregate.OrderCode(),
			Status:            aggregate.Status(),
			CurrentStage:      aggregate.CurrentStage(),
			ItemCount:         len(aggregate.Items()),
			Amount:            aggregate.Amount(),
			EstimatedDelivery: aggregate.EstimatedDelivery(),
		})
	}

	return responses, nil
}
