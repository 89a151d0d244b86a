package queries_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetStaffOrdersQueryHandler_OrdersDeepestStageFirst(t *testing.T) {
	staffID := kernel.NewUUID()
	placed := newOrderAtStage(t, "ORD-2024-010", order.OrderPlaced)
	washing := newOrderAtStage(t, "ORD-2024-011", order.Washing)
	folding := newOrderAtStage(t, "ORD-2024-012", order.Folding)

	repository := &MockOrderRepository{}
	repository.On("GetAllByStaff", mock.Anything, staffID).
		Return([]*order.Order{placed, washing, folding}, nil)

	handler := queries.NewGetStaffOrdersQueryHandler(repository)
	query, err := queries.NewGetStaffOrdersQuery(staffID)
	require.NoError(t, err)

	result, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "ORD-2024-012", result[0].OrderCode)
	assert.Equal(t, order.Folding, result[0].CurrentStage)
	assert.Equal(t, "ORD-2024-011", result[1].OrderCode)
	assert.Equal(t, "ORD-2024-010", result[2].OrderCode)
	repository.AssertExpectations(t)
}

func TestGetStaffOrdersQueryHandler_SameStageTieBreaksOnCode(t *testing.T) {
	staffID := kernel.NewUUID()
	second := newOrderAtStage(t, "ORD-2024-021", order.Drying)
	first := newOrderAtStage(t, "ORD-2024-020", order.Drying)

	repository := &MockOrderRepository{}
	repository.On("GetAllByStaff", mock.Anything, staffID).
		Return([]*order.Order{second, first}, nil)

	handler := queries.NewGetStaffOrdersQueryHandler(repository)
	query, err := queries.NewGetStaffOrdersQuery(staffID)
	require.NoError(t, err)

	result, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "ORD-2024-020", result[0].OrderCode)
	assert.Equal(t, "ORD-2024-021", result[1].OrderCode)
}

func TestGetStaffOrdersQueryHandler_MapsOrderFields(t *testing.T) {
	staffID := kernel.NewUUID()
	aggregate := newOrderAtStage(t, "ORD-2024-030", order.Washing)

	repository := &MockOrderRepository{}
	repository.On("GetAllByStaff", mock.Anything, staffID).
		Return([]*order.Order{aggregate}, nil)

	handler := queries.NewGetStaffOrdersQueryHandler(repository)
	query, err := queries.NewGetStaffOrdersQuery(staffID)
	require.NoError(t, err)

	result, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, aggregate.ID(), result[0].ID)
	assert.Equal(t, order.Processing, result[0].Status)
	assert.Equal(t, 1, result[0].ItemCount)
	assert.True(t, aggregate.Amount().Equal(result[0].Amount))
	assert.Nil(t, result[0].EstimatedDelivery)
}

func TestGetStaffOrdersQueryHandler_NoAssignedOrders(t *testing.T) {
	staffID := kernel.NewUUID()

	repository := &MockOrderRepository{}
	repository.On("GetAllByStaff", mock.Anything, staffID).
		Return([]*order.Order{}, nil)

	handler := queries.NewGetStaffOrdersQueryHandler(repository)
	query, err := queries.NewGetStaffOrdersQuery(staffID)
	require.NoError(t, err)

	result, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGetStaffOrdersQueryHandler_RepositoryError(t *testing.T) {
	staffID := kernel.NewUUID()
	repoErr := errors.New("connection refused")

	repository := &MockOrderRepository{}
	repository.On("GetAllByStaff", mock.Anything, staffID).
		Return(nil, repoErr)

	handler := queries.NewGetStaffOrdersQueryHandler(repository)
	query, err := queries.NewGetStaffOrdersQuery(staffID)
	require.NoError(t, err)

	result, err := handler.Handle(t.Context(), query)

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, result)
}

func TestGetStaffOrdersQueryHandler_InvalidQuery(t *testing.T) {
	repository := &MockOrderRepository{}
	handler := queries.NewGetStaffOrdersQueryHandler(repository)

	result, err := handler.Handle(t.Context(), queries.GetStaffOrdersQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStaffOrdersQueryIsNotConstructed)
	assert.Nil(t, result)
	repository.AssertNotCalled(t, "GetAllByStaff")
}
