package commands

import (
	"context"
	"errors"
	"fmt"

	"depot/internal/pkg/errs"
)

// MarkPackageShippedCommandHandler ships a package: status becomes Shipped,
// the slot reference is dropped and the slot is released, all in one unit of work.
//
// Handle reports false for an unknown package. Shipping an already shipped
// package changes nothing and reports true.
type MarkPackageShippedCommandHandler struct {
	uowFactory PackageUoWFactory
}

func NewMarkPackageShippedCommandHandler(uowFactory PackageUoWFactory) MarkPackageShippedCommandHandler {
	return MarkPackageShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h MarkPackageShippedCommandHandler) Handle(ctx context.Context, command MarkPackageShippedCommand) (bool, error) {
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

	released, err := pkg.MarkShipped()
	if err != nil {
		return false, err
	}
	if released == nil {
		return true, nil
	}

	if err = uow.SlotStore().Release(ctx, *released, pkg.ID()); err != nil {
		return false, fmt.Errorf("release slot %s: %w", released, err)
	}

	if err = packageRepo.Update(ctx, pkg); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
