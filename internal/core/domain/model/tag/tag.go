// Package tag provides the item verification ledger: one verification record
// per physical item in an order. An order's items must all be verified before
// the order may enter active processing.
//
// Verification is monotonic. Once a tag is verified it never regresses to
// pending, and re-verifying an already verified tag is a harmless no-op that
// keeps the original verification timestamp. Verification never advances the
// owning order's stage; the staff workflow observes AllVerified and triggers
// the stage transition explicitly, so the gate can be inspected and audited
// independently of the workflow that consumes it.
package tag

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrTagIsNotConstructed is returned when a Tag instance was not created
	// through the NewTag or RestoreTag factory methods.
	ErrTagIsNotConstructed = errors.New("Tag must be created via NewTag or RestoreTag")
)

// Status represents the verification state of a tag.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending means the physical item has not been verified at intake yet.
	Pending

	// Verified means the item has been checked in. Verification is monotonic:
	// there is no administrative action that moves a tag back to Pending.
	Verified
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Verified:      "verified",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != Verified {
		return errs.NewValueIsInvalidError("tag status is invalid")
	}
	return nil
}

// String returns the lowercase name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Tag is a verification record for one physical item within an order,
// registered at intake (e.g. "RF001" for a blue shirt in ORD-2024-001).
// A tag's orderID always references an existing order; tags are never deleted
// while the order is active.
type Tag struct {
	// tagID is the human-facing tag identifier, e.g. "RF001"
	tagID string

	// orderID references the owning order (many tags per order)
	orderID kernel.UUID

	// itemDescription names the physical item the tag is attached to
	itemDescription string

	// status is the verification state
	status Status

	// verifiedAt is set once, at the first successful verification
	verifiedAt *time.Time

	// verificationNotes are recorded with the verification
	verificationNotes string

	// isConstructed ensures the tag was created via a factory method
	isConstructed bool
}

// NewTag registers a pending verification record for one physical item.
func NewTag(tagID string, orderID kernel.UUID, itemDescription string) (*Tag, error) {
	if tagID == "" {
		return nil, errs.NewValueIsRequiredError("tagID")
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &Tag{
		tagID:           tagID,
		orderID:         orderID,
		itemDescription: itemDescription,
		status:          Pending,
		isConstructed:   true,
	}, nil
}

// RestoreTag reconstructs a Tag from persistence.
func RestoreTag(
	tagID string,
	orderID kernel.UUID,
	itemDescription string,
	status Status,
	verifiedAt *time.Time,
	verificationNotes string,
) (*Tag, error) {
	if tagID == "" {
		return nil, errs.NewValueIsRequiredError("tagID")
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status == Verified && verifiedAt == nil {
		return nil, errs.NewValueIsRequiredError("verifiedAt")
	}

	return &Tag{
		tagID:             tagID,
		orderID:           orderID,
		itemDescription:   itemDescription,
		status:            status,
		verifiedAt:        verifiedAt,
		verificationNotes: verificationNotes,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Tag instance was properly constructed through a
// factory method.
func (t *Tag) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTagIsNotConstructed
	}
	return nil
}

// TagID returns the human-facing tag identifier.
func (t *Tag) TagID() string {
	return t.tagID
}

// OrderID returns the owning order's identifier.
func (t *Tag) OrderID() kernel.UUID {
	return t.orderID
}

// ItemDescription returns the description of the tagged physical item.
func (t *Tag) ItemDescription() string {
	return t.itemDescription
}

// Status returns the verification state.
func (t *Tag) Status() Status {
	return t.status
}

// VerifiedAt returns when the tag was first verified, or nil while pending.
func (t *Tag) VerifiedAt() *time.Time {
	return t.verifiedAt
}

// VerificationNotes returns the notes recorded at verification.
func (t *Tag) VerificationNotes() string {
	return t.verificationNotes
}

// IsVerified reports whether the tag has been verified.
func (t *Tag) IsVerified() bool {
	return t.status == Verified
}

// Verify marks the tag verified, recording the notes and timestamp.
//
// Verifying an already verified tag is not an error but changes nothing:
// the original verifiedAt and notes are kept. The returned bool reports
// whether this call changed the tag.
func (t *Tag) Verify(now time.Time, notes string) bool {
	if t.status == Verified {
		return false
	}

	t.status = Verified
	t.verifiedAt = &now
	t.verificationNotes = notes
	return true
}

// AllVerified reports whether every tag in the ledger slice is verified.
// An order with zero tags is vacuously all-verified; the workflow preserves
// this so orders registered without individual items can still proceed.
func AllVerified(tags []*Tag) bool {
	for _, t := range tags {
		if !t.IsVerified() {
			return false
		}
	}
	return true
}
