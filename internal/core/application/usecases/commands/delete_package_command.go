package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand removes a package record and frees its slot if it holds one.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePackageCommand(packageID kernel.UUID) (DeletePackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return DeletePackageCommand{}, err
	}

	return DeletePackageCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

func (c DeletePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}
