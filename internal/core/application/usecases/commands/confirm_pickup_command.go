package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand records that the driver collected the garments from
// the customer, moving the order from order_placed to pickup_confirmed.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm pickup of an order.
func NewConfirmPickupCommand(orderID kernel.UUID) (ConfirmPickupCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return ConfirmPickupCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// OrderID returns the order to confirm pickup for.
func (c ConfirmPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}
