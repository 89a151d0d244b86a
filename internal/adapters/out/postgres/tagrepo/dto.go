// Package tagrepo persists the item verification ledger. Each row is one
// physical tag attached to a garment at intake; the row is keyed by the tag
// ID printed on the label, not by a surrogate.
package tagrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tag"

	"github.com/google/uuid"
)

// TagDTO represents the database structure for persisting verification tags.
type TagDTO struct {
	TagID             string    `gorm:"primaryKey;size:64"`
	OrderID           uuid.UUID `gorm:"type:uuid;index"`
	ItemDescription   string
	Status            int `gorm:"index"`
	VerifiedAt        *time.Time
	VerificationNotes string
}

// TableName specifies the database table name for verification tags.
func (TagDTO) TableName() string {
	return "verification_tags"
}

// fromDomain converts a tag domain aggregate to its database representation.
func fromDomain(aggregate *tag.Tag) TagDTO {
	return TagDTO{
		TagID:             aggregate.TagID(),
		OrderID:           aggregate.OrderID().Bytes(),
		ItemDescription:   aggregate.ItemDescription(),
		Status:            int(aggregate.Status()),
		VerifiedAt:        aggregate.VerifiedAt(),
		VerificationNotes: aggregate.VerificationNotes(),
	}
}

// toDomain converts a database DTO to a tag domain aggregate.
func toDomain(dto TagDTO) (*tag.Tag, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return tag.RestoreTag(
		dto.TagID,
		orderID,
		dto.ItemDescription,
		tag.Status(dto.Status),
		dto.VerifiedAt,
		dto.VerificationNotes,
	)
}
