// Package warehouse models the physical side of the depot: a Warehouse with its
// geographic position and the named shelf Slots it owns.
//
// Warehouses and slots are never created or removed by the lifecycle use cases;
// they come from the seeding path. The only mutable state here is a slot's
// occupant, and the only code that changes it is the slot store through
// Slot.Occupy and Slot.Release.
package warehouse
