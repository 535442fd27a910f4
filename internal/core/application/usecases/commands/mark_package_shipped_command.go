package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrMarkPackageShippedCommandIsNotConstructed = errors.New(
	"MarkPackageShippedCommand must be created via NewMarkPackageShippedCommand constructor",
)

// MarkPackageShippedCommand moves a package to Shipped and frees its slot.
type MarkPackageShippedCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkPackageShippedCommand(packageID kernel.UUID) (MarkPackageShippedCommand, error) {
	if err := packageID.Validate(); err != nil {
		return MarkPackageShippedCommand{}, err
	}

	return MarkPackageShippedCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c MarkPackageShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkPackageShippedCommandIsNotConstructed)
}

func (c MarkPackageShippedCommand) PackageID() kernel.UUID {
	return c.packageID
}
