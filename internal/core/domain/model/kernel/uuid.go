package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating the nil identifier.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("id")

// UUID identifies couriers, orders, storage places and domain events.
// The zero value is the nil UUID and stands for "no identifier".
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// ParseUUID accepts the textual forms understood by uuid.Parse.
// The nil UUID parses successfully and fails only on Validate.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("invalid UUID format: %w", err))
	}
	return UUID{id: id}, nil
}

// UUIDFromGoogle wraps an identifier read from storage or from a generated API type.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// String returns the canonical lowercase hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Google exposes the underlying value for adapters. The result is a copy.
func (u UUID) Google() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsNil reports whether u is the nil UUID.
func (u UUID) IsNil() bool {
	return u.id == uuid.Nil
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.IsNil() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText lets UUID be logged and encoded as its canonical string.
func (u UUID) MarshalText() ([]byte, error) {
	return u.id.MarshalText()
}
