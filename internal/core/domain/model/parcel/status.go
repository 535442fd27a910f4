package parcel

import (
	"fmt"

	"depot/internal/pkg/errs"
)

// Status is the lifecycle state of a package. The numeric values are part of
// the persisted and HTTP representations.
type Status int

const (
	// InStorage packages occupy exactly one slot.
	InStorage Status = iota

	// Shipped packages have left the depot and occupy no slot.
	Shipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		InStorage: "InStorage",
		Shipped:   "Shipped",
	}
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateSlot checks that the presence of a slot matches the status:
// InStorage requires a slot and Shipped forbids one.
func (s Status) ValidateSlot(hasSlot bool) error {
	if s == InStorage && !hasSlot {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s package must occupy a slot", s),
		)
	}

	if s == Shipped && hasSlot {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s package cannot occupy a slot", s),
		)
	}

	return nil
}

// Ship returns the state after shipment. Shipping a shipped package is allowed
// and leaves it Shipped.
func (s Status) Ship() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Shipped, nil
}
