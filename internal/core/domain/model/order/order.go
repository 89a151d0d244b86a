package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a laundry order in the system. It is the aggregate root
// that owns the order's status and current stage, and it is the single
// authority for legal lifecycle transitions.
//
// Order follows these invariants:
//   - currentStage is always a member of the fixed stage catalog
//   - status is Completed if and only if currentStage is Delivered
//   - Cancelled is a terminal override; the stage is kept as a historical record
//   - the timeline is append-only
//   - every item's individual names match its quantity
//
// The aggregate carries an optimistic-concurrency version. Repositories apply
// every mutation as a conditional write against that version, so two callers
// racing on the same order can never both win.
type Order struct {
	// id is the stable unique identifier for the order
	id kernel.UUID

	// orderCode is the human-facing code, e.g. "ORD-2024-001"
	orderCode string

	// customerID references the ordering customer
	customerID kernel.UUID

	// assignedStaffID is the staff member working the order (nil if unassigned)
	assignedStaffID *kernel.UUID

	// status is the coarse lifecycle bucket
	status Status

	// currentStage is the order's position in the stage catalog
	currentStage Stage

	// items are the service lines with their individually named physical items
	items []Item

	// pickupDate and estimatedDelivery are optional schedule dates
	pickupDate        *time.Time
	estimatedDelivery *time.Time

	// amount is the monetary total, owned by billing and read-only here
	amount decimal.Decimal

	// timeline is the append-only record of stage transitions
	timeline []StageEvent

	// version is the optimistic-concurrency token managed by the repository
	version int

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status at the OrderPlaced stage,
// with the placement recorded as the first timeline entry. The monetary
// amount is computed from the items' prices.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - orderCode: human-facing code (must not be empty)
//   - customerID: ordering customer (must be a valid UUID)
//   - items: at least one service line
//   - placedAt: timestamp recorded for the order_placed timeline entry
func NewOrder(
	id kernel.UUID,
	orderCode string,
	customerID kernel.UUID,
	items []Item,
	placedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderCode == "" {
		return nil, errs.NewValueIsRequiredError("orderCode")
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	placed, err := NewStageEvent(OrderPlaced, placedAt, "")
	if err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		orderCode:     orderCode,
		customerID:    customerID,
		status:        Pending,
		currentStage:  OrderPlaced,
		items:         copyItems(items),
		timeline:      []StageEvent{placed},
		isConstructed: true,
	}
	o.amount = totalAmount(o.items)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// history. It re-validates the cross-field invariants so corrupt rows cannot
// produce an aggregate in an illegal state.
func RestoreOrder(
	id kernel.UUID,
	orderCode string,
	customerID kernel.UUID,
	assignedStaffID *kernel.UUID,
	status Status,
	currentStage Stage,
	items []Item,
	pickupDate *time.Time,
	estimatedDelivery *time.Time,
	amount decimal.Decimal,
	timeline []StageEvent,
	version int,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderCode == "" {
		return nil, errs.NewValueIsRequiredError("orderCode")
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := currentStage.Validate(); err != nil {
		return nil, err
	}
	if err := validateStatusStage(status, currentStage); err != nil {
		return nil, err
	}
	if assignedStaffID != nil {
		if err := assignedStaffID.Validate(); err != nil {
			return nil, err
		}
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version")
	}

	events := make([]StageEvent, len(timeline))
	copy(events, timeline)

	return &Order{
		id:                id,
		orderCode:         orderCode,
		customerID:        customerID,
		assignedStaffID:   assignedStaffID,
		status:            status,
		currentStage:      currentStage,
		items:             copyItems(items),
		pickupDate:        pickupDate,
		estimatedDelivery: estimatedDelivery,
		amount:            amount,
		timeline:          events,
		version:           version,
		isConstructed:     true,
	}, nil
}

// validateStatusStage enforces the coupling between status and stage:
// Completed exactly at Delivered, and a Processing order is always at a
// work stage. Cancelled keeps whatever stage it was at.
func validateStatusStage(status Status, stage Stage) error {
	if status == Completed && stage != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("completed order must be at the delivered stage"),
		)
	}
	if status != Completed && status != Cancelled && stage == Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			errors.New("delivered stage requires completed status"),
		)
	}
	if status == Processing && !stage.IsWorkStage() {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			errors.New("processing order must be at a work stage"),
		)
	}
	return nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderCode returns the human-facing order code.
func (o *Order) OrderCode() string {
	return o.orderCode
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// AssignedStaff returns the assigned staff member's ID.
// Returns nil if no staff member is assigned.
func (o *Order) AssignedStaff() *kernel.UUID {
	return o.assignedStaffID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CurrentStage returns the order's position in the stage catalog.
func (o *Order) CurrentStage() Stage {
	return o.currentStage
}

// Items returns a copy of the order's service lines.
func (o *Order) Items() []Item {
	return copyItems(o.items)
}

// PickupDate returns the scheduled pickup date, or nil.
func (o *Order) PickupDate() *time.Time {
	return o.pickupDate
}

// EstimatedDelivery returns the estimated delivery date, or nil.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// Amount returns the monetary total of the order.
func (o *Order) Amount() decimal.Decimal {
	return o.amount
}

// Timeline returns a copy of the append-only stage history.
func (o *Order) Timeline() []StageEvent {
	events := make([]StageEvent, len(o.timeline))
	copy(events, o.timeline)
	return events
}

// Version returns the optimistic-concurrency token the aggregate was
// loaded with.
func (o *Order) Version() int {
	return o.version
}

// Schedule sets the optional pickup and estimated delivery dates.
// When both are set, the pickup must not be after the estimated delivery.
func (o *Order) Schedule(pickupDate, estimatedDelivery *time.Time) error {
	if pickupDate != nil && estimatedDelivery != nil && pickupDate.After(*estimatedDelivery) {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickup date is invalid",
			errors.New("pickup date is after the estimated delivery date"),
		)
	}
	o.pickupDate = pickupDate
	o.estimatedDelivery = estimatedDelivery
	return nil
}

// ConfirmPickup moves a pending order from OrderPlaced to PickupConfirmed.
// The status stays Pending; pickup confirmation is a pre-work stage.
func (o *Order) ConfirmPickup(now time.Time) error {
	if o.status != Pending || o.currentStage != OrderPlaced {
		return errs.NewInvalidTransitionError(
			o.currentStage.String(), PickupConfirmed.String(), o.id.String(),
		)
	}
	return o.moveToStage(PickupConfirmed, now, "")
}

// StartProcessing moves a pending order into active processing at the
// ItemsReceived stage.
//
// Preconditions:
//   - the order must be Pending
//   - every verification tag for the order must be verified (allVerified);
//     the caller observes the verification ledger and passes the result here,
//     so the gate stays auditable independently of any UI flow
//
// A failed precondition is reported as PreconditionFailedError and leaves the
// order unchanged.
func (o *Order) StartProcessing(allVerified bool, now time.Time) error {
	if o.status != Pending {
		return errs.NewPreconditionFailedError("order is not pending", o.id.String())
	}
	if !allVerified {
		return errs.NewPreconditionFailedError("all items must be verified", o.id.String())
	}

	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}

	if err = o.moveToStage(ItemsReceived, now, ""); err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AdvanceStage moves a processing order to the next catalog stage, marking
// the superseded timeline entry completed and appending a new entry with the
// given staff notes. Reaching Delivered also completes the order.
//
// Returns InvalidTransitionError if the order is not Processing or is already
// at the terminal stage.
func (o *Order) AdvanceStage(now time.Time, notes string) error {
	if o.status != Processing {
		return errs.NewInvalidTransitionError(
			o.status.String(), Processing.String(), o.id.String(),
		)
	}

	next, ok := o.currentStage.Next()
	if !ok {
		return errs.NewInvalidTransitionError(
			o.currentStage.String(), "next stage", o.id.String(),
		)
	}

	if next == Delivered {
		newStatus, err := o.status.Complete()
		if err != nil {
			return err
		}
		if err = o.moveToStage(next, now, notes); err != nil {
			return err
		}
		o.status = newStatus
		return nil
	}

	return o.moveToStage(next, now, notes)
}

// Cancel marks the order cancelled. The current stage is left untouched as a
// historical record; no further transitions are permitted afterwards.
//
// Returns InvalidTransitionError if the order is already Completed or
// Cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), Cancelled.String(), o.id.String(), err,
		)
	}
	o.status = newStatus
	return nil
}

// AssignStaff assigns (or reassigns) the order to a staff member.
// Reassignment overwrites the previous assignee without recording history.
// Assigning the current assignee again is a no-op success.
//
// Eligibility of the staff member (role and active status) is the caller's
// responsibility; this method only enforces that the order is still open.
func (o *Order) AssignStaff(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateAssign(); err != nil {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), o.status.String(), o.id.String(), err,
		)
	}

	o.assignedStaffID = &staffID
	return nil
}

// moveToStage marks the current timeline entry completed and appends a new
// entry for the stage that just became current.
func (o *Order) moveToStage(next Stage, now time.Time, notes string) error {
	event, err := NewStageEvent(next, now, notes)
	if err != nil {
		return err
	}

	if n := len(o.timeline); n > 0 {
		o.timeline[n-1] = o.timeline[n-1].complete()
	}
	o.timeline = append(o.timeline, event)
	o.currentStage = next
	return nil
}

func copyItems(items []Item) []Item {
	copied := make([]Item, len(items))
	copy(copied, items)
	return copied
}

func totalAmount(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice())
	}
	return total
}
