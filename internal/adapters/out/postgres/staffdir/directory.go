// Package staffdir answers staff eligibility checks against the shared users
// table. The fulfillment core does not own staff records; it only reads them
// to gate task assignment.
package staffdir

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormStaffDirectory implements StaffDirectory over the users table.
type GormStaffDirectory struct {
	db *gorm.DB
}

// NewGormStaffDirectory creates a new GORM-backed staff directory.
func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

// IsActiveStaff reports whether the given ID belongs to an active staff
// member. An unknown ID is simply not active, never an error.
func (d *GormStaffDirectory) IsActiveStaff(ctx context.Context, staffID kernel.UUID) (bool, error) {
	if err := staffID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := d.db.WithContext(ctx).
		Table("users").
		Where("id = ? AND role = ? AND status = ?", staffID.Bytes(), "staff", "active").
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
