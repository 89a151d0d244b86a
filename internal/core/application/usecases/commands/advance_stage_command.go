package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAdvanceStageCommandIsNotConstructed = errors.New(
	"AdvanceStageCommand must be created via NewAdvanceStageCommand constructor",
)

// AdvanceStageCommand moves a processing order one step forward in the stage
// catalog. Notes are attached to the newly entered stage's timeline entry.
type AdvanceStageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

// NewAdvanceStageCommand creates a command to advance an order's stage.
// Notes are optional.
func NewAdvanceStageCommand(orderID kernel.UUID, notes string) (AdvanceStageCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceStageCommand{}, err
	}

	return AdvanceStageCommand{
		orderID: orderID,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStageCommandIsNotConstructed)
}

// OrderID returns the order to advance.
func (c AdvanceStageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the optional stage notes.
func (c AdvanceStageCommand) Notes() string {
	return c.notes
}
