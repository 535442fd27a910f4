package cmd

import (
	"io"
	"log/slog"
	"testing"

	httpin "depot/internal/adapters/in/http"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCompositionRoot_ServesTheLifecycle(t *testing.T) {
	ctx := t.Context()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := NewMemoryCompositionRoot(Config{Store: StoreMemory, OccupancyReportSchedule: "0 * * * * *"}, logger)

	seeded, err := root.CreateSeedDemoDataCommandHandler().Handle(ctx, commands.NewSeedDemoDataCommand())
	require.NoError(t, err)
	assert.True(t, seeded)

	cmd, err := commands.NewCreatePackageCommand(
		kernel.NewUUID(), "NEW-123456", "398 Peninsula Ave, San Francisco, CA 94134, USA",
		commands.DemoWarehouseID(), nil,
	)
	require.NoError(t, err)
	created, err := root.CreateCreatePackageCommandHandler().Handle(ctx, cmd)
	require.NoError(t, err)

	stored, err := root.CreateListStoredPackagesQueryHandler().Handle(ctx, mustStoredQuery(t))
	require.NoError(t, err)
	assert.Len(t, stored, 7)

	ship, err := commands.NewMarkPackageShippedCommand(created.ID())
	require.NoError(t, err)
	shipped, err := root.CreateMarkPackageShippedCommandHandler().Handle(ctx, ship)
	require.NoError(t, err)
	assert.True(t, shipped)

	e, err := httpin.NewEcho(root.CreateHTTPServer(), logger)
	require.NoError(t, err)
	assert.NotEmpty(t, e.Routes())

	manager := root.CreateJobManager()
	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func mustStoredQuery(t *testing.T) queries.ListStoredPackagesQuery {
	t.Helper()
	query, err := queries.NewListStoredPackagesQuery(commands.DemoWarehouseID())
	require.NoError(t, err)
	return query
}
