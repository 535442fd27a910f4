package kernel

import (
	"fmt"

	"depot/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the zero UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, ParseUUID or UUIDFrom")

// seedNamespace scopes identifiers derived from names (see UUIDFromName).
var seedNamespace = uuid.MustParse("5b0d7e43-7a51-4d8e-9f3c-2e6c1f0a9d11")

// UUID identifies warehouses, slots and packages.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// ParseUUID parses the canonical textual form, with or without braces, urn prefix or hyphens.
func ParseUUID(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUIDFrom(id)
}

// UUIDFrom wraps a uuid.UUID coming from a driver or a request binder.
func UUIDFrom(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// UUIDFromName derives a stable identifier from a name, so that seeded
// warehouses and slots keep their ids between runs.
func UUIDFromName(name string) UUID {
	return UUID{id: uuid.NewSHA1(seedNamespace, []byte(name))}
}

func (u UUID) String() string {
	return u.id.String()
}

// Raw returns the underlying uuid.UUID for persistence and transport DTOs.
func (u UUID) Raw() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
