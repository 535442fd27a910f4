package memory

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/ports"
	"depot/internal/pkg/errs"
)

// ErrPackageExists is returned by Add for an id that is already stored.
var ErrPackageExists = errors.New("package already exists")

var _ ports.PackageRepository = &PackageRepository{}

type PackageRepository struct {
	uow *UnitOfWork
}

func (r *PackageRepository) Add(_ context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	rec := toPackageRecord(aggregate)

	return r.uow.write(func(st *Store) (func(), error) {
		if _, ok := st.packages[rec.id]; ok {
			return nil, ErrPackageExists
		}
		if rec.slotID != nil && slotTaken(st, *rec.slotID, rec.id) {
			return nil, ports.ErrSlotConflict
		}
		st.packages[rec.id] = rec
		return func() { delete(st.packages, rec.id) }, nil
	})
}

func (r *PackageRepository) Update(_ context.Context, aggregate *parcel.Package) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	rec := toPackageRecord(aggregate)

	return r.uow.write(func(st *Store) (func(), error) {
		previous, ok := st.packages[rec.id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("packageId", rec.id.String())
		}
		if rec.slotID != nil && slotTaken(st, *rec.slotID, rec.id) {
			return nil, ports.ErrSlotConflict
		}
		st.packages[rec.id] = rec
		return func() { st.packages[rec.id] = previous }, nil
	})
}

func (r *PackageRepository) Get(_ context.Context, id kernel.UUID) (*parcel.Package, error) {
	var pkg *parcel.Package
	err := r.uow.read(func(st *Store) error {
		rec, ok := st.packages[id]
		if !ok {
			return errs.NewObjectNotFoundError("packageId", id.String())
		}
		var err error
		pkg, err = rec.toDomain()
		return err
	})
	return pkg, err
}

func (r *PackageRepository) Delete(_ context.Context, id kernel.UUID) error {
	return r.uow.write(func(st *Store) (func(), error) {
		previous, ok := st.packages[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("packageId", id.String())
		}
		delete(st.packages, id)
		return func() { st.packages[id] = previous }, nil
	})
}

// slotTaken reports whether a package other than owner already references slotID.
func slotTaken(st *Store, slotID, owner kernel.UUID) bool {
	for _, p := range st.packages {
		if p.slotID != nil && p.slotID.IsEqual(slotID) && !p.id.IsEqual(owner) {
			return true
		}
	}
	return false
}

func toPackageRecord(p *parcel.Package) *packageRecord {
	return &packageRecord{
		id:             p.ID(),
		trackingNumber: p.TrackingNumber(),
		address:        p.Address(),
		status:         p.Status(),
		slotID:         p.SlotID(),
	}
}

func (rec *packageRecord) toDomain() (*parcel.Package, error) {
	return parcel.RestorePackage(rec.id, rec.trackingNumber, rec.address, rec.status, copyID(rec.slotID))
}
