package allocation_test

import (
	"context"
	"errors"
	"testing"

	"depot/internal/core/application/allocation"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/warehouse"
	"depot/internal/core/domain/services"
	"depot/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotStore struct{ mock.Mock }

func (m *MockSlotStore) ListFree(ctx context.Context, warehouseID kernel.UUID) ([]*warehouse.Slot, error) {
	args := m.Called(ctx, warehouseID)
	slots, _ := args.Get(0).([]*warehouse.Slot)
	return slots, args.Error(1)
}

func (m *MockSlotStore) Occupy(ctx context.Context, warehouseID, slotID, packageID kernel.UUID) error {
	args := m.Called(ctx, warehouseID, slotID, packageID)
	return args.Error(0)
}

func (m *MockSlotStore) Release(ctx context.Context, slotID, packageID kernel.UUID) error {
	args := m.Called(ctx, slotID, packageID)
	return args.Error(0)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(_ context.Context, _ *warehouse.Warehouse) error {
	return errors.New("not implemented in mock")
}

func (m *MockWarehouseRepository) Get(_ context.Context, _ kernel.UUID) (*warehouse.Warehouse, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockWarehouseRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWarehouseRepository) Count(_ context.Context) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

type stores struct {
	slots      *MockSlotStore
	warehouses *MockWarehouseRepository
}

func (s stores) SlotStore() ports.SlotStore                     { return s.slots }
func (s stores) WarehouseRepository() ports.WarehouseRepository { return s.warehouses }

func newStores(warehouseID kernel.UUID, exists bool) stores {
	s := stores{slots: new(MockSlotStore), warehouses: new(MockWarehouseRepository)}
	s.warehouses.On("Exists", mock.Anything, warehouseID).Return(exists, nil)
	return s
}

func freeSlots(t *testing.T, warehouseID kernel.UUID, names ...string) []*warehouse.Slot {
	t.Helper()
	out := make([]*warehouse.Slot, 0, len(names))
	for _, n := range names {
		s, err := warehouse.NewSlot(kernel.NewUUID(), warehouseID, n)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

// firstIndex makes the random path deterministic.
func firstIndex(int) int { return 0 }

func TestAllocator_Reserve_Explicit(t *testing.T) {
	ctx := t.Context()
	whID, slotID, pkgID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	t.Run("free_slot", func(t *testing.T) {
		s := newStores(whID, true)
		s.slots.On("Occupy", ctx, whID, slotID, pkgID).Return(nil).Once()

		got, err := allocation.NewAllocator(services.NewSlotPicker()).Reserve(ctx, s, whID, &slotID, pkgID)

		require.NoError(t, err)
		assert.True(t, got.IsEqual(slotID))
		s.slots.AssertExpectations(t)
	})

	t.Run("occupied_or_foreign_slot", func(t *testing.T) {
		s := newStores(whID, true)
		s.slots.On("Occupy", ctx, whID, slotID, pkgID).Return(ports.ErrSlotConflict).Once()

		_, err := allocation.NewAllocator(services.NewSlotPicker()).Reserve(ctx, s, whID, &slotID, pkgID)

		require.ErrorIs(t, err, allocation.ErrSlotNotAvailable)
		s.slots.AssertNotCalled(t, "ListFree", mock.Anything, mock.Anything)
	})

	t.Run("storage_failure_is_propagated", func(t *testing.T) {
		boom := errors.New("connection refused")
		s := newStores(whID, true)
		s.slots.On("Occupy", ctx, whID, slotID, pkgID).Return(boom).Once()

		_, err := allocation.NewAllocator(services.NewSlotPicker()).Reserve(ctx, s, whID, &slotID, pkgID)

		require.ErrorIs(t, err, boom)
	})
}

func TestAllocator_Reserve_UnknownWarehouse(t *testing.T) {
	ctx := t.Context()
	whID := kernel.NewUUID()
	s := newStores(whID, false)

	_, err := allocation.NewAllocator(services.NewSlotPicker()).Reserve(ctx, s, whID, nil, kernel.NewUUID())

	require.ErrorIs(t, err, allocation.ErrWarehouseNotFound)
	s.slots.AssertNotCalled(t, "ListFree", mock.Anything, mock.Anything)
}

func TestAllocator_Reserve_Random(t *testing.T) {
	ctx := t.Context()
	whID, pkgID := kernel.NewUUID(), kernel.NewUUID()
	picker := services.NewSlotPickerWithSource(firstIndex)

	t.Run("picks_a_free_slot", func(t *testing.T) {
		free := freeSlots(t, whID, "A-01", "A-02")
		s := newStores(whID, true)
		s.slots.On("ListFree", ctx, whID).Return(free, nil).Once()
		s.slots.On("Occupy", ctx, whID, free[0].ID(), pkgID).Return(nil).Once()

		got, err := allocation.NewAllocator(picker).Reserve(ctx, s, whID, nil, pkgID)

		require.NoError(t, err)
		assert.True(t, got.IsEqual(free[0].ID()))
		s.slots.AssertExpectations(t)
	})

	t.Run("full_warehouse", func(t *testing.T) {
		s := newStores(whID, true)
		s.slots.On("ListFree", ctx, whID).Return([]*warehouse.Slot{}, nil).Once()

		_, err := allocation.NewAllocator(picker).Reserve(ctx, s, whID, nil, pkgID)

		require.ErrorIs(t, err, allocation.ErrNoFreeSlots)
		s.slots.AssertNumberOfCalls(t, "ListFree", 1)
	})

	t.Run("lost_race_moves_to_next_candidate", func(t *testing.T) {
		free := freeSlots(t, whID, "A-01", "A-02")
		s := newStores(whID, true)
		s.slots.On("ListFree", ctx, whID).Return(free, nil).Once()
		s.slots.On("Occupy", ctx, whID, free[0].ID(), pkgID).Return(ports.ErrSlotConflict).Once()
		s.slots.On("Occupy", ctx, whID, free[1].ID(), pkgID).Return(nil).Once()

		got, err := allocation.NewAllocator(picker).Reserve(ctx, s, whID, nil, pkgID)

		require.NoError(t, err)
		assert.True(t, got.IsEqual(free[1].ID()))
		s.slots.AssertExpectations(t)
	})

	t.Run("all_candidates_lost_triggers_reread", func(t *testing.T) {
		first := freeSlots(t, whID, "A-01")
		second := freeSlots(t, whID, "B-01")
		s := newStores(whID, true)
		s.slots.On("ListFree", ctx, whID).Return(first, nil).Once()
		s.slots.On("Occupy", ctx, whID, first[0].ID(), pkgID).Return(ports.ErrSlotConflict).Once()
		s.slots.On("ListFree", ctx, whID).Return(second, nil).Once()
		s.slots.On("Occupy", ctx, whID, second[0].ID(), pkgID).Return(nil).Once()

		got, err := allocation.NewAllocator(picker).Reserve(ctx, s, whID, nil, pkgID)

		require.NoError(t, err)
		assert.True(t, got.IsEqual(second[0].ID()))
	})

	t.Run("retries_are_bounded", func(t *testing.T) {
		s := newStores(whID, true)
		s.slots.On("ListFree", ctx, whID).Return(freeSlots(t, whID, "A-01"), nil)
		s.slots.On("Occupy", ctx, whID, mock.Anything, pkgID).Return(ports.ErrSlotConflict)

		_, err := allocation.NewAllocator(picker).Reserve(ctx, s, whID, nil, pkgID)

		require.ErrorIs(t, err, allocation.ErrNoFreeSlots)
		s.slots.AssertNumberOfCalls(t, "ListFree", allocation.MaxReserveAttempts)
	})
}
