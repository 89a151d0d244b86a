package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/tag"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartProcessingCommandHandler_Handle_AllVerified(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	require.NoError(t, pending.ConfirmPickup(time.Now().UTC()))
	cmd, _ := commands.NewStartProcessingCommand(pending.ID())

	tags := []*tag.Tag{
		newVerifiedTag(t, pending.ID(), "RF-001"),
		newVerifiedTag(t, pending.ID(), "RF-002"),
	}

	orderRepo := new(MockOrderRepository)
	tagRepo := new(MockTagRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TagRepository").Return(tagRepo).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	tagRepo.On("GetAllForOrder", mock.Anything, pending.ID()).Return(tags, nil).Once()
	orderRepo.On("Update", mock.Anything, pending).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, pending).Return(nil).Once()

	h := commands.NewStartProcessingCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Processing, pending.Status())
	require.Equal(t, order.ItemsReceived, pending.CurrentStage())
	orderRepo.AssertExpectations(t)
	tagRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestStartProcessingCommandHandler_Handle_UnverifiedTagBlocks(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	require.NoError(t, pending.ConfirmPickup(time.Now().UTC()))
	cmd, _ := commands.NewStartProcessingCommand(pending.ID())

	unverified, err := tag.NewTag("RF-003", pending.ID(), "lone sock")
	require.NoError(t, err)
	tags := []*tag.Tag{newVerifiedTag(t, pending.ID(), "RF-001"), unverified}

	orderRepo := new(MockOrderRepository)
	tagRepo := new(MockTagRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TagRepository").Return(tagRepo).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	tagRepo.On("GetAllForOrder", mock.Anything, pending.ID()).Return(tags, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartProcessingCommandHandler(factory, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)

	var preconditionErr *errs.PreconditionFailedError
	require.ErrorAs(t, err, &preconditionErr)
	require.Equal(t, order.Pending, pending.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestStartProcessingCommandHandler_Handle_ZeroTagsVacuouslyVerified(t *testing.T) {
	ctx := t.Context()
	pending := newPendingOrder(t)
	require.NoError(t, pending.ConfirmPickup(time.Now().UTC()))
	cmd, _ := commands.NewStartProcessingCommand(pending.ID())

	orderRepo := new(MockOrderRepository)
	tagRepo := new(MockTagRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TagRepository").Return(tagRepo).Once()
	orderRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once()
	tagRepo.On("GetAllForOrder", mock.Anything, pending.ID()).Return([]*tag.Tag{}, nil).Once()
	orderRepo.On("Update", mock.Anything, pending).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartProcessingCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Processing, pending.Status())
}

func TestStartProcessingCommandHandler_Handle_AlreadyProcessing(t *testing.T) {
	ctx := t.Context()
	processing := newProcessingOrder(t)
	cmd, _ := commands.NewStartProcessingCommand(processing.ID())

	orderRepo := new(MockOrderRepository)
	tagRepo := new(MockTagRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TagRepository").Return(tagRepo).Once()
	orderRepo.On("Get", mock.Anything, processing.ID()).Return(processing, nil).Once()
	tagRepo.On("GetAllForOrder", mock.Anything, processing.ID()).Return([]*tag.Tag{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartProcessingCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)

	var preconditionErr *errs.PreconditionFailedError
	require.ErrorAs(t, err, &preconditionErr)
}
