package queries_test

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

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

// newOrderWithCode builds a pending order carrying the given code, with one
// two-garment service line.
func newOrderWithCode(t interface{ Fatalf(string, ...any) }, code string) *order.Order {
	item, err := order.NewItem(
		"wash-fold", 2, []string{"blue shirt", "white shirt"}, decimal.NewFromFloat(4.50))
	if err != nil {
		t.Fatalf("item: %v", err)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), code, kernel.NewUUID(),
		[]order.Item{item}, time.Now().UTC())
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	return o
}

// newOrderAtStage builds an order advanced to the given work stage.
func newOrderAtStage(t interface{ Fatalf(string, ...any) }, code string, stage order.Stage) *order.Order {
	o := newOrderWithCode(t, code)
	if stage == order.OrderPlaced {
		return o
	}

	now := time.Now().UTC()
	if err := o.ConfirmPickup(now); err != nil {
		t.Fatalf("confirm pickup: %v", err)
	}
	if stage == order.PickupConfirmed {
		return o
	}

	if err := o.StartProcessing(true, now); err != nil {
		t.Fatalf("start processing: %v", err)
	}
	for o.CurrentStage() != stage {
		if err := o.AdvanceStage(now, ""); err != nil {
			t.Fatalf("advance to %s: %v", stage, err)
		}
	}
	return o
}
