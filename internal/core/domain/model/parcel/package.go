package parcel

import (
	"errors"
	"unicode/utf8"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

const (
	MinTrackingNumberLength = 6
	MaxTrackingNumberLength = 30
	MinAddressLength        = 6
	MaxAddressLength        = 350
)

// ErrPackageIsNotConstructed is returned by Validate for a zero Package.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage constructor")

// Package is the aggregate root for a parcel stored in, and later shipped from,
// a warehouse slot.
//
// Invariants:
//   - tracking number is 6 to 30 characters, address 6 to 350 characters
//   - the slot reference is present if and only if the status is InStorage
//
// Example usage:
//
//	pkg, err := parcel.NewPackage(kernel.NewUUID(), "MX-1872BR",
//	    "398 Peninsula Ave, San Francisco, CA 94134, USA", slotID)
//	if err != nil {
//	    return err
//	}
//	released, err := pkg.MarkShipped() // released == &slotID
type Package struct {
	id             kernel.UUID
	trackingNumber string
	address        string
	status         Status

	// slotID is the occupied slot, nil once shipped
	slotID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewPackage creates an InStorage package bound to slotID. The slot must
// already be reserved for id by the caller.
//
// Parameters:
//   - id: Unique identifier of the package
//   - trackingNumber: Carrier tracking number, 6 to 30 characters
//   - address: Destination address, 6 to 350 characters
//   - slotID: The reserved slot
//
// Returns:
//   - *Package: The new package in InStorage
//   - error: Aggregated validation errors, if any
func NewPackage(id kernel.UUID, trackingNumber, address string, slotID kernel.UUID) (*Package, error) {
	return RestorePackage(id, trackingNumber, address, InStorage, &slotID)
}

// RestorePackage rebuilds a package from storage and re-checks its invariants.
func RestorePackage(
	id kernel.UUID,
	trackingNumber, address string,
	status Status,
	slotID *kernel.UUID,
) (*Package, error) {
	pkg := &Package{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pkg.setID(id),
		pkg.setTrackingNumber(trackingNumber),
		pkg.setAddress(address),
		pkg.setStatus(status, slotID),
	); err != nil {
		return nil, err
	}

	return pkg, nil
}

func (p *Package) ID() kernel.UUID {
	return p.id
}

func (p *Package) TrackingNumber() string {
	return p.trackingNumber
}

func (p *Package) Address() string {
	return p.address
}

func (p *Package) Status() Status {
	return p.status
}

// SlotID returns the occupied slot, or nil for a shipped package.
func (p *Package) SlotID() *kernel.UUID {
	if p.slotID == nil {
		return nil
	}
	id := *p.slotID
	return &id
}

// MarkShipped moves the package to Shipped and returns the slot it held so the
// caller can release it. For an already shipped package it returns nil and no error.
func (p *Package) MarkShipped() (*kernel.UUID, error) {
	newStatus, err := p.status.Ship()
	if err != nil {
		return nil, err
	}

	released := p.slotID
	p.status = newStatus
	p.slotID = nil
	return released, nil
}

func (p *Package) IsEqual(other *Package) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// ValidateTrackingNumber checks the tracking number length in characters.
func ValidateTrackingNumber(trackingNumber string) error {
	return validateLength("trackingNumber", trackingNumber, MinTrackingNumberLength, MaxTrackingNumberLength)
}

// ValidateAddress checks the address length in characters.
func ValidateAddress(address string) error {
	return validateLength("address", address, MinAddressLength, MaxAddressLength)
}

func validateLength(param, value string, minLength, maxLength int) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	n := utf8.RuneCountInString(value)
	if n < minLength || n > maxLength {
		return errs.NewValueIsOutOfRangeError(param, n, minLength, maxLength)
	}
	return nil
}

func (p *Package) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Package) setTrackingNumber(trackingNumber string) error {
	if err := ValidateTrackingNumber(trackingNumber); err != nil {
		return err
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Package) setAddress(address string) error {
	if err := ValidateAddress(address); err != nil {
		return err
	}
	p.address = address
	return nil
}

func (p *Package) setStatus(status Status, slotID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if slotID != nil {
		if err := slotID.Validate(); err != nil {
			return err
		}
		id := *slotID
		slotID = &id
	}
	if err := status.ValidateSlot(slotID != nil); err != nil {
		return err
	}
	p.status = status
	p.slotID = slotID
	return nil
}
