package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID,
// i.e. one that bypassed the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by orders, customers, and staff
// members. It wraps github.com/google/uuid so aggregates never depend on the
// library directly and so a zero-value identifier is always detectable.
//
// The zero value is invalid; obtain instances through NewUUID, UUIDFromString,
// or UUIDFromBytes. The type is immutable and safe to copy.
//
//	orderID := kernel.NewUUID()
//
//	staffID, err := kernel.UUIDFromString(request.StaffID)
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a fresh random (version 4) identifier. Used wherever a new
// aggregate is created: placing an order, registering a customer.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses an identifier from its textual form, as received in
// HTTP path parameters or read back from text columns. All formats accepted by
// uuid.Parse are allowed, including braced and urn:uuid: variants.
//
//	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes reconstructs an identifier from its 16-byte binary form, the
// shape in which repositories store it. Rejects slices of the wrong length and
// the nil UUID, so a row with a zeroed ID column cannot slip into the domain.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String renders the canonical "xxxxxxxx-xxxx-..." form, used in log fields,
// API responses, and error messages. A zero value renders as all zeros.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence mapping. DTO
// conversion needs the raw value; domain code should not.
//
//	dto.ID = order.ID().Bytes()
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two identifiers refer to the same aggregate.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value. Aggregate
// constructors call this on every identifier they receive, which keeps an
// unset order or customer reference from ever being persisted.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
