package commands_test

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/tag"
	"laundry/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStaff(ctx context.Context, staffID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTagRepository struct{ mock.Mock }

func (m *MockTagRepository) Add(ctx context.Context, t *tag.Tag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTagRepository) Update(ctx context.Context, t *tag.Tag) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTagRepository) Get(ctx context.Context, tagID string) (*tag.Tag, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tag.Tag), args.Error(1)
}

func (m *MockTagRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*tag.Tag, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tag.Tag), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockTagUoW struct{ mock.Mock }

func (m *MockTagUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTagUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTagUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTagUoW) TagRepository() ports.TagRepository {
	args := m.Called()
	return args.Get(0).(ports.TagRepository)
}

type MockTagUoWFactory struct{ mock.Mock }

func (m *MockTagUoWFactory) Create() commands.TagUoW {
	args := m.Called()
	return args.Get(0).(commands.TagUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TagRepository() ports.TagRepository {
	args := m.Called()
	return args.Get(0).(ports.TagRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockStaffDirectory struct{ mock.Mock }

func (m *MockStaffDirectory) IsActiveStaff(ctx context.Context, staffID kernel.UUID) (bool, error) {
	args := m.Called(ctx, staffID)
	return args.Bool(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// newPendingOrder builds a pending order with one two-garment service line.
func newPendingOrder(t interface{ Fatalf(string, ...any) }) *order.Order {
	item, err := order.NewItem(
		"wash-fold", 2, []string{"blue shirt", "white shirt"}, decimal.NewFromFloat(4.50))
	if err != nil {
		t.Fatalf("item: %v", err)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-2024-001", kernel.NewUUID(),
		[]order.Item{item}, time.Now().UTC())
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	return o
}

// newProcessingOrder builds an order already in Processing at items_received.
func newProcessingOrder(t interface{ Fatalf(string, ...any) }) *order.Order {
	o := newPendingOrder(t)
	if err := o.ConfirmPickup(time.Now().UTC()); err != nil {
		t.Fatalf("confirm pickup: %v", err)
	}
	if err := o.StartProcessing(true, time.Now().UTC()); err != nil {
		t.Fatalf("start processing: %v", err)
	}
	return o
}

// newVerifiedTag builds a verified tag for the given order.
func newVerifiedTag(t interface{ Fatalf(string, ...any) }, orderID kernel.UUID, tagID string) *tag.Tag {
	garmentTag, err := tag.NewTag(tagID, orderID, "garment")
	if err != nil {
		t.Fatalf("tag: %v", err)
	}
	garmentTag.Verify(time.Now().UTC(), "")
	return garmentTag
}
