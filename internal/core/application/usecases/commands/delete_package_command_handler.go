package commands

import (
	"context"
	"errors"
	"fmt"

	"depot/internal/pkg/errs"
)

// DeletePackageCommandHandler releases the package's slot (if any) and removes
// the record in one unit of work. Handle reports false for an unknown package.
type DeletePackageCommandHandler struct {
	uowFactory PackageUoWFactory
}

func NewDeletePackageCommandHandler(uowFactory PackageUoWFactory) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeletePackageCommandHandler) Handle(ctx context.Context, command DeletePackageCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packageRepo := uow.PackageRepository()

	pkg, err := packageRepo.Get(ctx, command.PackageID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if slotID := pkg.SlotID(); slotID != nil {
		if err = uow.SlotStore().Release(ctx, *slotID, pkg.ID()); err != nil {
			return false, fmt.Errorf("release slot %s: %w", slotID, err)
		}
	}

	if err = packageRepo.Delete(ctx, pkg.ID()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
