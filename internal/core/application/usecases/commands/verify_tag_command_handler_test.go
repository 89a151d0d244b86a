package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tag"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyTagCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	pendingTag, err := tag.NewTag("RF-001", orderID, "blue shirt")
	require.NoError(t, err)

	cmd, _ := commands.NewVerifyTagCommand("RF-001", "intact")

	repo := new(MockTagRepository)
	uow := new(MockTagUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TagRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "RF-001").Return(pendingTag, nil).Once(),
		repo.On("Update", mock.Anything, pendingTag).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTagUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyTagCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, pendingTag.IsVerified())
	require.Equal(t, "intact", pendingTag.VerificationNotes())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestVerifyTagCommandHandler_Handle_AlreadyVerified_NoWrite(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	verifiedTag := newVerifiedTag(t, orderID, "RF-002")
	originalAt := *verifiedTag.VerifiedAt()

	cmd, _ := commands.NewVerifyTagCommand("RF-002", "second look")

	repo := new(MockTagRepository)
	uow := new(MockTagUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TagRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "RF-002").Return(verifiedTag, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTagUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyTagCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// re-verify keeps the original record and skips the write
	require.Equal(t, originalAt, *verifiedTag.VerifiedAt())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestVerifyTagCommandHandler_Handle_UnknownTag(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewVerifyTagCommand("RF-MISSING", "")

	repo := new(MockTagRepository)
	uow := new(MockTagUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TagRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, "RF-MISSING").
			Return(nil, errs.NewObjectNotFoundError("tag", "RF-MISSING")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTagUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewVerifyTagCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
