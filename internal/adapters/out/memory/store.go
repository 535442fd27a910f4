// Package memory is an in-process implementation of the storage ports and the
// read model. It backs the service when STORE=memory and the scenario tests.
//
// All state lives in one Store guarded by a single RWMutex. A unit of work
// holds the write lock from Begin until Commit or Rollback, so transactions
// are serialized and readers only ever see committed state.
package memory

import (
	"sync"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

type warehouseRecord struct {
	id        kernel.UUID
	name      string
	latitude  string
	longitude string
	slotIDs   []kernel.UUID
}

type slotRecord struct {
	id          kernel.UUID
	warehouseID kernel.UUID
	name        string
	packageID   *kernel.UUID
}

type packageRecord struct {
	id             kernel.UUID
	trackingNumber string
	address        string
	status         parcel.Status
	slotID         *kernel.UUID
}

// Store holds warehouses, slots and packages.
type Store struct {
	mu         sync.RWMutex
	warehouses map[kernel.UUID]*warehouseRecord
	slots      map[kernel.UUID]*slotRecord
	packages   map[kernel.UUID]*packageRecord
}

func NewStore() *Store {
	return &Store{
		warehouses: make(map[kernel.UUID]*warehouseRecord),
		slots:      make(map[kernel.UUID]*slotRecord),
		packages:   make(map[kernel.UUID]*packageRecord),
	}
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
