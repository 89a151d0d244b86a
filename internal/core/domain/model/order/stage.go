package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Stage represents one step in the fixed ten-step physical fulfillment
// sequence an order passes through, from intake to delivery.
//
// Catalog order:
//
//	order_placed -> pickup_confirmed -> items_received -> washing -> drying ->
//	folding -> quality_check -> ready_for_delivery -> out_for_delivery -> delivered
//
// The first two stages are pre-work stages handled before staff pick up the
// order. The remaining eight, items_received through delivered, are the work
// stages staff actively progress through.
//
// Stage is a value object: all operations are pure total functions over the
// closed catalog, and the catalog defined here is the single source of
// ordering and adjacency truth for the whole application.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// OrderPlaced is the initial stage when an order is first created.
	OrderPlaced

	// PickupConfirmed indicates the pickup has been scheduled and confirmed.
	PickupConfirmed

	// ItemsReceived is the first work stage: items are physically at the facility.
	ItemsReceived

	// Washing indicates the items are being washed.
	Washing

	// Drying indicates the items are being dried.
	Drying

	// Folding indicates the items are being folded.
	Folding

	// QualityCheck indicates the items are undergoing final inspection.
	QualityCheck

	// ReadyForDelivery indicates the order is packed and awaiting a driver.
	ReadyForDelivery

	// OutForDelivery indicates the order is on its way to the customer.
	OutForDelivery

	// Delivered is the terminal stage: the order reached the customer.
	Delivered
)

// WorkStageCount is the number of work stages (ItemsReceived through Delivered).
const WorkStageCount = 8

// catalog lists all stages in fulfillment order.
func catalog() []Stage {
	return []Stage{
		OrderPlaced,
		PickupConfirmed,
		ItemsReceived,
		Washing,
		Drying,
		Folding,
		QualityCheck,
		ReadyForDelivery,
		OutForDelivery,
		Delivered,
	}
}

// getStageStrings returns a map of Stage values to their string representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:     "unknown",
		OrderPlaced:      "order_placed",
		PickupConfirmed:  "pickup_confirmed",
		ItemsReceived:    "items_received",
		Washing:          "washing",
		Drying:           "drying",
		Folding:          "folding",
		QualityCheck:     "quality_check",
		ReadyForDelivery: "ready_for_delivery",
		OutForDelivery:   "out_for_delivery",
		Delivered:        "delivered",
	}
}

// Stages returns the full catalog in fulfillment order.
// The returned slice is a fresh copy on every call.
func Stages() []Stage {
	return catalog()
}

// StageFromString parses a stage from its snake_case catalog name.
// Returns an error for names outside the catalog.
func StageFromString(s string) (Stage, error) {
	for stage, name := range getStageStrings() {
		if name == s && stage != StageUnknown {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("%q is not a catalog stage", s),
	)
}

// Validate checks if the Stage value is a member of the catalog.
// StageUnknown (0) and any other values are invalid.
func (s Stage) Validate() error {
	if _, ok := getStageStrings()[s]; !ok || s == StageUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%d is not a valid stage", s),
		)
	}
	return nil
}

// String returns the snake_case catalog name of the stage.
// Implements fmt.Stringer; safe to call on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the stage immediately following s in catalog order.
// The second return value is false when s is terminal (Delivered) or not a
// catalog member.
func (s Stage) Next() (Stage, bool) {
	if s.Validate() != nil || s == Delivered {
		return StageUnknown, false
	}
	return s + 1, true
}

// IsWorkStage reports whether s is one of the eight stages staff actively
// perform (ItemsReceived through Delivered).
func (s Stage) IsWorkStage() bool {
	return s >= ItemsReceived && s <= Delivered
}

// WorkStageIndex returns the 1-based position of s within the work stages,
// or 0 if s is not a work stage.
func (s Stage) WorkStageIndex() int {
	if !s.IsWorkStage() {
		return 0
	}
	return int(s-ItemsReceived) + 1
}

// CatalogIndex returns the 0-based position of s in the catalog,
// or -1 if s is not a catalog member.
func (s Stage) CatalogIndex() int {
	if s.Validate() != nil {
		return -1
	}
	return int(s - OrderPlaced)
}
