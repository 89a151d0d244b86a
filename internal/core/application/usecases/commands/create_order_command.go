package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderCodeIsRequired = errors.New("order code is required")
	ErrItemsAreRequired    = errors.New("at least one item is required")
)

// ItemInput describes one service line of an incoming order: which service,
// how many garments, the garment descriptions, and the unit price. The
// individual item count must match the quantity; the domain constructor
// enforces it.
type ItemInput struct {
	ServiceID       string
	Quantity        int
	IndividualItems []string
	UnitPrice       decimal.Decimal
}

// CreateOrderCommand represents a request to register a new laundry order.
// Encapsulates the customer, the human-facing order code, and the service
// lines with their garments.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "ORD-2024-001", customerID,
//	    []ItemInput{{ServiceID: "wash-fold", Quantity: 2,
//	        IndividualItems: []string{"blue shirt", "white shirt"},
//	        UnitPrice: decimal.NewFromFloat(4.50)}}, nil, &estimatedDelivery)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	orderCode         string
	customerID        kernel.UUID
	items             []ItemInput
	pickupDate        *time.Time
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new laundry order.
// Validates that both IDs are valid, the order code is not empty, and at
// least one item is present. Item internals and the pickup/delivery window
// are validated by the domain when the handler builds the aggregate; both
// dates are optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderCode string,
	customerID kernel.UUID,
	items []ItemInput,
	pickupDate *time.Time,
	estimatedDelivery *time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderCode(orderCode),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.setSchedule(pickupDate, estimatedDelivery)
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderCode returns the human-facing order code.
func (c CreateOrderCommand) OrderCode() string {
	return c.orderCode
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested service lines.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// PickupDate returns the agreed pickup date, or nil when not scheduled.
func (c CreateOrderCommand) PickupDate() *time.Time {
	return c.pickupDate
}

// EstimatedDelivery returns the promised delivery date, or nil when not
// scheduled.
func (c CreateOrderCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return ErrOrderCodeIsRequired
	}

	c.orderCode = orderCode
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = make([]ItemInput, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setSchedule(pickupDate, estimatedDelivery *time.Time) {
	if pickupDate != nil {
		pickup := *pickupDate
		c.pickupDate = &pickup
	}
	if estimatedDelivery != nil {
		delivery := *estimatedDelivery
		c.estimatedDelivery = &delivery
	}
}
