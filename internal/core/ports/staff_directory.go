package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// StaffDirectory answers eligibility questions about staff members. It is an
// external collaborator of the fulfillment core: the core never owns staff
// records, it only checks them before assignment.
type StaffDirectory interface {
	// IsActiveStaff reports whether the given ID belongs to a user with the
	// staff role whose account is active.
	IsActiveStaff(ctx context.Context, staffID kernel.UUID) (bool, error)
}
