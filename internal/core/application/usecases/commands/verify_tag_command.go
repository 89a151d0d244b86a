package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var (
	ErrVerifyTagCommandIsNotConstructed = errors.New(
		"VerifyTagCommand must be created via NewVerifyTagCommand constructor",
	)
	ErrTagIDIsRequired = errors.New("tag ID is required")
)

// VerifyTagCommand records that a staff member physically checked in the
// garment carrying the given tag. Notes capture observed condition
// ("small stain on collar").
type VerifyTagCommand struct { //nolint:recvcheck //using for validation
	tagID string
	notes string

	guard guard.ConstructorGuard
}

// NewVerifyTagCommand creates a command to verify a garment tag.
// Notes are optional.
func NewVerifyTagCommand(tagID, notes string) (VerifyTagCommand, error) {
	if tagID == "" {
		return VerifyTagCommand{}, ErrTagIDIsRequired
	}

	return VerifyTagCommand{
		tagID: tagID,
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyTagCommand) Validate() error {
	return c.guard.Validate(ErrVerifyTagCommandIsNotConstructed)
}

// TagID returns the printed tag identifier to verify.
func (c VerifyTagCommand) TagID() string {
	return c.tagID
}

// Notes returns the optional verification notes.
func (c VerifyTagCommand) Notes() string {
	return c.notes
}
