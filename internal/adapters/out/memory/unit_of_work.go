package memory

import (
	"context"
	"errors"

	"depot/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without a matching Begin.
var ErrNoTransaction = errors.New("no transaction in progress")

var _ ports.UnitOfWork = &UnitOfWork{}

// UnitOfWork applies writes to the Store directly and records how to undo
// each of them. Rollback replays the undo log backwards.
//
// Outside of Begin/Commit every store and repository call locks on its own.
// A UnitOfWork must not be shared between goroutines.
type UnitOfWork struct {
	store *Store
	inTx  bool
	undo  []func()
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.inTx {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.mu.Lock()
	u.inTx = true
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.inTx {
		return ErrNoTransaction
	}
	u.undo = nil
	u.inTx = false
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.inTx {
		return ErrNoTransaction
	}
	for i := len(u.undo) - 1; i >= 0; i-- {
		u.undo[i]()
	}
	u.undo = nil
	u.inTx = false
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) SlotStore() ports.SlotStore {
	return &SlotStore{uow: u}
}

func (u *UnitOfWork) PackageRepository() ports.PackageRepository {
	return &PackageRepository{uow: u}
}

func (u *UnitOfWork) WarehouseRepository() ports.WarehouseRepository {
	return &WarehouseRepository{uow: u}
}

// write runs fn under the write lock (or inside the open transaction) and
// keeps the undo func it returns.
func (u *UnitOfWork) write(fn func(s *Store) (undo func(), err error)) error {
	if !u.inTx {
		u.store.mu.Lock()
		defer u.store.mu.Unlock()
		_, err := fn(u.store)
		return err
	}

	undo, err := fn(u.store)
	if err != nil {
		return err
	}
	if undo != nil {
		u.undo = append(u.undo, undo)
	}
	return nil
}

func (u *UnitOfWork) read(fn func(s *Store) error) error {
	if !u.inTx {
		u.store.mu.RLock()
		defer u.store.mu.RUnlock()
	}
	return fn(u.store)
}

// UnitOfWorkFactory hands out units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}
