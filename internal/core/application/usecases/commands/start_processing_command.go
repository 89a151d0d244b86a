package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrStartProcessingCommandIsNotConstructed = errors.New(
	"StartProcessingCommand must be created via NewStartProcessingCommand constructor",
)

// StartProcessingCommand begins work on an order: Pending → Processing at the
// items_received stage. The handler gates the transition on every garment tag
// of the order being verified.
type StartProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartProcessingCommand creates a command to start processing an order.
func NewStartProcessingCommand(orderID kernel.UUID) (StartProcessingCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartProcessingCommand{}, err
	}

	return StartProcessingCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProcessingCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessingCommandIsNotConstructed)
}

// OrderID returns the order to start processing.
func (c StartProcessingCommand) OrderID() kernel.UUID {
	return c.orderID
}
