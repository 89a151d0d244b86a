package commands

import (
	"context"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// AssignStaffCommandHandler assigns an order to a staff member's work queue.
// The assignee must be an active staff member per the staff directory;
// anyone else is rejected with InvalidAssigneeError before the order is read.
//
// Example:
//
//	handler := NewAssignStaffCommandHandler(uowFactory, staffDirectory, publisher)
//	cmd, _ := NewAssignStaffCommand(orderID, staffID)
//	err := handler.Handle(ctx, cmd)
//	var invalidAssignee *errs.InvalidAssigneeError
//	if errors.As(err, &invalidAssignee) {
//	    log.Printf("Cannot assign: %v", err)
//	}
type AssignStaffCommandHandler struct {
	uowFactory     OrderUoWFactory
	staffDirectory ports.StaffDirectory
	publisher      ports.OrderEventPublisher
}

// NewAssignStaffCommandHandler creates a handler for staff assignment.
func NewAssignStaffCommandHandler(
	uowFactory OrderUoWFactory,
	staffDirectory ports.StaffDirectory,
	publisher ports.OrderEventPublisher,
) AssignStaffCommandHandler {
	return AssignStaffCommandHandler{
		uowFactory:     uowFactory,
		staffDirectory: staffDirectory,
		publisher:      publisher,
	}
}

// Handle processes the staff assignment command.
func (h AssignStaffCommandHandler) Handle(ctx context.Context, cmd AssignStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	active, err := h.staffDirectory.IsActiveStaff(ctx, cmd.StaffID())
	if err != nil {
		return err
	}
	if !active {
		return errs.NewInvalidAssigneeError("staff member is not active", cmd.StaffID().String())
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AssignStaff(cmd.StaffID()); err != nil {
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
