package commands

import (
	"context"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/tag"
	"laundry/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order intake.
// Creates the order in Pending status at the order_placed stage and registers
// one pending verification tag per garment, all in a single transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateOrderCommand(orderID, "ORD-2024-001", customerID, items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now awaiting pickup confirmation
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order intake operations.
// Requires a UoWFactory because intake writes both the order and its tags.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, publisher ports.OrderEventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order intake command.
// Builds the aggregate, persists it together with one pending tag per
// individual garment, and announces the new order after commit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(input.ServiceID, input.Quantity, input.IndividualItems, input.UnitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.OrderCode(), cmd.CustomerID(), items, time.Now().UTC())
	if err != nil {
		return err
	}
	if err = newOrder.Schedule(cmd.PickupDate(), cmd.EstimatedDelivery()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	tagRepo := uow.TagRepository()
	for _, input := range cmd.Items() {
		for _, description := range input.IndividualItems {
			garmentTag, tagErr := tag.NewTag(newTagID(), newOrder.ID(), description)
			if tagErr != nil {
				return tagErr
			}
			if tagErr = tagRepo.Add(ctx, garmentTag); tagErr != nil {
				return tagErr
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, newOrder)
	return nil
}

// newTagID mints a printable tag identifier in the RF-XXXXXXXX form used on
// the physical garment labels.
func newTagID() string {
	return "RF-" + strings.ToUpper(kernel.NewUUID().String()[:8])
}
