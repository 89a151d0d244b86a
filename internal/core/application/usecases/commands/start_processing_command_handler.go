package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/tag"
	"laundry/internal/core/ports"
)

// StartProcessingCommandHandler moves an order into active work. The
// verification ledger is read inside the same transaction as the order write,
// so a tag registered concurrently cannot slip past the all-verified gate.
//
// Example:
//
//	handler := NewStartProcessingCommandHandler(uowFactory, publisher)
//	cmd, _ := NewStartProcessingCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	var precondition *errs.PreconditionFailedError
//	if errors.As(err, &precondition) {
//	    log.Printf("Not ready: %v", err)
//	}
type StartProcessingCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewStartProcessingCommandHandler creates a handler for starting order processing.
// Requires a UoWFactory because the decision reads tags and writes the order.
func NewStartProcessingCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) StartProcessingCommandHandler {
	return StartProcessingCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the start-processing command.
// Reads the order and its tags in one transaction, lets the aggregate decide,
// and persists the transition. A PreconditionFailedError means the order was
// not Pending or not every tag was verified.
func (h StartProcessingCommandHandler) Handle(ctx context.Context, cmd StartProcessingCommand) error {
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

	tags, err := uow.TagRepository().GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.StartProcessing(tag.AllVerified(tags), time.Now().UTC()); err != nil {
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
