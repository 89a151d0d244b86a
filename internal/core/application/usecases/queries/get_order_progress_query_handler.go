package queries

import (
	"context"

	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// GetOrderProgressQueryHandler fetches an order aggregate and projects it
// into the customer-facing progress view. The projection itself lives in
// the domain projector; the handler only wires fetch and render together.
type GetOrderProgressQueryHandler struct {
	orderRepository ports.OrderRepository
	projector       services.ProgressProjector
}

// NewGetOrderProgressQueryHandler creates a handler for order progress queries.
func NewGetOrderProgressQueryHandler(orderRepository ports.OrderRepository) GetOrderProgressQueryHandler {
	return GetOrderProgressQueryHandler{
		orderRepository: orderRepository,
		projector:       services.NewProgressProjector(),
	}
}

// Handle returns the progress view of the order named in the query.
// Returns ObjectNotFoundError when the order does not exist.
func (h GetOrderProgressQueryHandler) Handle(
	ctx context.Context,
	query GetOrderProgressQuery,
) (GetOrderProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderProgressQueryResponse{}, err
	}

	return GetOrderProgressQueryResponse{
		OrderID:      aggregate.ID(),
		OrderCode:    aggregate.OrderCode(),
		Status:       aggregate.Status(),
		CurrentStage: aggregate.CurrentStage(),
		Percent:      h.projector.ProgressPercent(aggregate),
		Timeline:     h.projector.RenderTimeline(aggregate),
	}, nil
}
