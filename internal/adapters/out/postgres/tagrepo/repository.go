package tagrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tag"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTagRepository implements TagRepository using GORM.
type GormTagRepository struct {
	db *gorm.DB
}

// NewGormTagRepository creates a new GORM tag repository.
func NewGormTagRepository(db *gorm.DB) *GormTagRepository {
	return &GormTagRepository{db: db}
}

// Add saves a new verification tag to the database.
func (r *GormTagRepository) Add(ctx context.Context, aggregate *tag.Tag) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves changes to an existing tag as a conditional write: the row is
// only touched while it is still pending, so the one legal transition
// (pending to verified) is an atomic check-and-set. When a concurrent
// verification has already won, the stored verifiedAt and notes are left
// untouched and the update reports success, keeping re-verification
// idempotent across transactions as well as within the aggregate.
func (r *GormTagRepository) Update(ctx context.Context, aggregate *tag.Tag) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TagDTO{}).
		Where("tag_id = ? AND status = ?", dto.TagID, int(tag.Pending)).
		Updates(map[string]any{
			"status":             dto.Status,
			"verified_at":        dto.VerifiedAt,
			"verification_notes": dto.VerificationNotes,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&TagDTO{}).
			Where("tag_id = ?", dto.TagID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("tag", aggregate.TagID())
		}
		// already verified by a concurrent writer; the first verification stands
		return nil
	}

	return nil
}

// Get retrieves a tag by its printed identifier.
func (r *GormTagRepository) Get(ctx context.Context, tagID string) (*tag.Tag, error) {
	if tagID == "" {
		return nil, errs.NewValueIsRequiredError("tagID")
	}

	var dto TagDTO
	err := r.db.WithContext(ctx).First(&dto, "tag_id = ?", tagID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tag", tagID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves every tag registered for the given order.
func (r *GormTagRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*tag.Tag, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TagDTO
	err := r.db.WithContext(ctx).
		Order("tag_id").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	tags := make([]*tag.Tag, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	return tags, nil
}
