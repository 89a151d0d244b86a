// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper
// indexing for efficient querying by status and staff assignment.
//
// The Version column is the optimistic-concurrency token: every update is
// conditioned on it and bumps it by one.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderCode         string     `gorm:"uniqueIndex;size:20"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;index"`
	AssignedStaffID   *uuid.UUID `gorm:"type:uuid;index"`
	Status            int        `gorm:"index"`
	CurrentStage      int
	PickupDate        *time.Time
	EstimatedDelivery *time.Time
	Amount            decimal.Decimal `gorm:"type:numeric(10,2)"`
	Version           int

	Items    []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Timeline []StageEventDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one service line of an order. The individual item
// names are stored as a JSON array; their count always equals Quantity.
type OrderItemDTO struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ServiceID       string    `gorm:"size:64"`
	Quantity        int
	IndividualItems []string        `gorm:"serializer:json"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StageEventDTO represents one entry of an order's append-only stage
// timeline. Seq preserves the append order.
type StageEventDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Seq       int
	Stage     int
	Timestamp time.Time
	Completed bool
	Notes     string
}

// TableName specifies the database table name for timeline entries.
func (StageEventDTO) TableName() string {
	return "order_timeline"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var staffID *uuid.UUID
	if id := aggregate.AssignedStaff(); id != nil {
		raw := id.Bytes()
		staffID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:         aggregate.ID().Bytes(),
			ServiceID:       item.ServiceID(),
			Quantity:        item.Quantity(),
			IndividualItems: item.IndividualItems(),
			UnitPrice:       item.UnitPrice(),
		})
	}

	timeline := aggregate.Timeline()
	eventDTOs := make([]StageEventDTO, 0, len(timeline))
	for seq, event := range timeline {
		eventDTOs = append(eventDTOs, StageEventDTO{
			OrderID:   aggregate.ID().Bytes(),
			Seq:       seq,
			Stage:     int(event.Stage()),
			Timestamp: event.Timestamp(),
			Completed: event.Completed(),
			Notes:     event.Notes(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		OrderCode:         aggregate.OrderCode(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		AssignedStaffID:   staffID,
		Status:            int(aggregate.Status()),
		CurrentStage:      int(aggregate.CurrentStage()),
		PickupDate:        aggregate.PickupDate(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		Amount:            aggregate.Amount(),
		Version:           aggregate.Version(),
		Items:             itemDTOs,
		Timeline:          eventDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-validates the cross-field invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var staffID *kernel.UUID
	if dto.AssignedStaffID != nil {
		sID, staffErr := kernel.UUIDFromBytes((*dto.AssignedStaffID)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		staffID = &sID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.ServiceID,
			itemDTO.Quantity,
			itemDTO.IndividualItems,
			itemDTO.UnitPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	timeline := make([]order.StageEvent, 0, len(dto.Timeline))
	for _, eventDTO := range dto.Timeline {
		event, eventErr := order.RestoreStageEvent(
			order.Stage(eventDTO.Stage),
			eventDTO.Timestamp,
			eventDTO.Completed,
			eventDTO.Notes,
		)
		if eventErr != nil {
			return nil, eventErr
		}
		timeline = append(timeline, event)
	}

	return order.RestoreOrder(
		id,
		dto.OrderCode,
		customerID,
		staffID,
		order.Status(dto.Status),
		order.Stage(dto.CurrentStage),
		items,
		dto.PickupDate,
		dto.EstimatedDelivery,
		dto.Amount,
		timeline,
		dto.Version,
	)
}
