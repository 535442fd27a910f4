// Package services holds domain logic that spans aggregates and does not touch storage.
//
// The package includes:
//   - SlotPicker: chooses a free warehouse slot uniformly at random
package services
