// Package kernel holds the value objects shared by every aggregate of the depot:
// identifiers (UUID) and geographic coordinates (Coordinates).
//
// Both are immutable and validated on construction; a zero value fails Validate.
package kernel
