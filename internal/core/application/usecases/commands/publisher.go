package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// publishOrderChanged announces a committed order state to downstream
// consumers. Publishing is best-effort: failures are logged and never fail
// the command, the database commit already happened.
func publishOrderChanged(ctx context.Context, publisher ports.OrderEventPublisher, aggregate *order.Order) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		slog.Error("Failed to publish order change",
			"orderId", aggregate.ID().String(), "error", err)
	}
}
