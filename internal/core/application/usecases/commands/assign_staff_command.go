package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAssignStaffCommandIsNotConstructed = errors.New(
	"AssignStaffCommand must be created via NewAssignStaffCommand constructor",
)

// AssignStaffCommand puts an order on a staff member's work queue.
// Reassignment is the same command: the previous assignee is overwritten
// without history.
type AssignStaffCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignStaffCommand creates a command to assign an order to a staff member.
func NewAssignStaffCommand(orderID, staffID kernel.UUID) (AssignStaffCommand, error) {
	if err := errors.Join(orderID.Validate(), staffID.Validate()); err != nil {
		return AssignStaffCommand{}, err
	}

	return AssignStaffCommand{
		orderID: orderID,
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignStaffCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignStaffCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StaffID returns the staff member receiving the order.
func (c AssignStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}
