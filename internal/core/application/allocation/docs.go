// Package allocation reserves warehouse slots for new packages.
//
// The Allocator never does check-then-act: every reservation is a conditional
// write in the slot store that only succeeds if the slot is still free, so two
// concurrent callers can never end up in the same slot. Losing a race on the
// random path just moves on to another free slot.
package allocation
