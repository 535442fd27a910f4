package commands

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrSeedDemoDataCommandIsNotConstructed = errors.New(
	"SeedDemoDataCommand must be created via NewSeedDemoDataCommand constructor",
)

// SeedDemoDataCommand fills an empty store with the San Francisco warehouse,
// its sixteen slots and six stored packages.
type SeedDemoDataCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedDemoDataCommand() SeedDemoDataCommand {
	return SeedDemoDataCommand{guard: guard.NewConstructorGuard()}
}

func (c SeedDemoDataCommand) Validate() error {
	return c.guard.Validate(ErrSeedDemoDataCommandIsNotConstructed)
}
