package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/tag"
)

// TagRepository defines the persistence contract for the item verification
// ledger. Tags are registered at order intake and mutated only by the
// verification operation; they are never deleted while the order is active.
type TagRepository interface {
	// Add persists a new verification tag.
	Add(ctx context.Context, aggregate *tag.Tag) error

	// Update persists changes to an existing tag. The write only lands while
	// the stored row is still pending; when a concurrent verification already
	// won, the stored record is kept and Update reports success.
	// Returns ObjectNotFoundError for unknown tags.
	Update(ctx context.Context, aggregate *tag.Tag) error

	// Get retrieves a tag by its identifier.
	// Returns ObjectNotFoundError for unknown tags.
	Get(ctx context.Context, tagID string) (*tag.Tag, error)

	// GetAllForOrder retrieves every tag registered for the given order,
	// in tag ID order.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*tag.Tag, error)
}
