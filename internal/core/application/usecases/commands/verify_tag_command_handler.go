package commands

import (
	"context"
	"time"
)

// VerifyTagCommandHandler marks one garment tag as verified. Verifying an
// already-verified tag succeeds without touching the original verification
// record. An unknown tag surfaces as ObjectNotFoundError from the repository.
//
// Verification never advances the order; StartProcessing reads the ledger
// when the operator decides to begin work.
type VerifyTagCommandHandler struct {
	uowFactory TagUoWFactory
}

// NewVerifyTagCommandHandler creates a handler for tag verification.
func NewVerifyTagCommandHandler(uowFactory TagUoWFactory) VerifyTagCommandHandler {
	return VerifyTagCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tag verification command.
func (h VerifyTagCommandHandler) Handle(ctx context.Context, cmd VerifyTagCommand) error {
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

	tagRepo := uow.TagRepository()
	garmentTag, err := tagRepo.Get(ctx, cmd.TagID())
	if err != nil {
		return err
	}

	if changed := garmentTag.Verify(time.Now().UTC(), cmd.Notes()); changed {
		if err = tagRepo.Update(ctx, garmentTag); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
