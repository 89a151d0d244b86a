package commands

import (
	"context"
	"time"

	"laundry/internal/core/ports"
)

// AdvanceStageCommandHandler advances a processing order one stage. Reaching
// the delivered stage completes the order. Advancing a non-processing order
// or past delivered is an InvalidTransitionError from the aggregate.
type AdvanceStageCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewAdvanceStageCommandHandler creates a handler for stage advancement.
func NewAdvanceStageCommandHandler(uowFactory OrderUoWFactory, publisher ports.OrderEventPublisher) AdvanceStageCommandHandler {
	return AdvanceStageCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the stage advancement command.
func (h AdvanceStageCommandHandler) Handle(ctx context.Context, cmd AdvanceStageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AdvanceStage(time.Now().UTC(), cmd.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, aggregate)
	return nil
}
