package order

import (
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a service line within an order: one service applied to a quantity
// of physical items, each named individually so it can be tagged and tracked
// through verification.
//
// Invariant: the number of individual item names must equal the quantity.
// This is enforced at construction, before the order can be confirmed for
// pickup, so the verification ledger can register exactly one tag per
// physical item.
type Item struct {
	serviceID       string
	quantity        int
	individualItems []string
	unitPrice       decimal.Decimal
}

// NewItem creates a validated order item.
//
// Rules:
//   - serviceID must not be empty
//   - quantity must be positive
//   - individualItems must contain exactly quantity names
//   - unitPrice must not be negative
func NewItem(serviceID string, quantity int, individualItems []string, unitPrice decimal.Decimal) (Item, error) {
	if serviceID == "" {
		return Item{}, errs.NewValueIsRequiredError("serviceID")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if len(individualItems) != quantity {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"individual items are invalid",
			fmt.Errorf("%d item names do not match quantity %d", len(individualItems), quantity),
		)
	}
	if unitPrice.IsNegative() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}

	names := make([]string, len(individualItems))
	copy(names, individualItems)

	return Item{
		serviceID:       serviceID,
		quantity:        quantity,
		individualItems: names,
		unitPrice:       unitPrice,
	}, nil
}

// ServiceID returns the identifier of the service line.
func (i Item) ServiceID() string {
	return i.serviceID
}

// Quantity returns the number of physical items in this line.
func (i Item) Quantity() int {
	return i.quantity
}

// IndividualItems returns a copy of the physical item names.
func (i Item) IndividualItems() []string {
	names := make([]string, len(i.individualItems))
	copy(names, i.individualItems)
	return names
}

// UnitPrice returns the price per unit at the time of ordering.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns quantity multiplied by unit price.
func (i Item) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
