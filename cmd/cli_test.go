package cmd_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"wastecollection/cmd"
	"wastecollection/internal/adapters/out/postgres/dbtest"
	"wastecollection/internal/core/application/usecases/queries"
	"wastecollection/internal/core/domain/model/request"
	"wastecollection/internal/pkg/errs"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRoot(t *testing.T) cmd.CompositionRoot {
	t.Helper()
	cfg := cmd.Config{DBDriver: cmd.DriverSQLite, Jurisdiction: "GO", LogLevel: "info"}
	return cmd.NewCompositionRoot(cfg, dbtest.NewSQLite(t), nil)
}

func TestCompositionRoot_Seed(t *testing.T) {
	ctx := t.Context()
	app := newSQLiteRoot(t)

	summary, err := app.Seed(ctx, 9)
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Sites)
	assert.Equal(t, 4, summary.Collectors)
	assert.Equal(t, map[request.Status]int{request.Pending: 3, request.Accepted: 3, request.Completed: 3}, summary.Requests)

	overview, err := app.CreateOverviewReportQueryHandler().Handle(ctx, queries.NewGetOverviewReportQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(9), overview.TotalRequests)
	assert.Equal(t, int64(3), overview.TotalCompletedCollections)
	assert.Positive(t, overview.TotalKgCollected)

	uncertified, err := queries.NewListUncertifiedCompletionsQueryHandler(app.DB()).
		Handle(ctx, queries.NewListUncertifiedCompletionsQuery())
	require.NoError(t, err)
	assert.Empty(t, uncertified)

	t.Run("seeding twice without reset conflicts on tax id", func(t *testing.T) {
		_, err := app.Seed(ctx, 1)

		require.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("reset empties every table", func(t *testing.T) {
		require.NoError(t, app.ResetData(ctx))

		overview, err := app.CreateOverviewReportQueryHandler().Handle(ctx, queries.NewGetOverviewReportQuery())
		require.NoError(t, err)
		assert.Equal(t, queries.Overview{}, overview)

		_, err = app.Seed(ctx, 3)
		require.NoError(t, err)
	})
}

func TestCompositionRoot_PrintReports(t *testing.T) {
	color.NoColor = true
	ctx := t.Context()
	app := newSQLiteRoot(t)

	t.Run("empty store", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, app.PrintReports(ctx, &out, "", ""))

		assert.Contains(t, out.String(), "Overview")
		assert.Contains(t, out.String(), "no certified collections")
	})

	t.Run("seeded store", func(t *testing.T) {
		_, err := app.Seed(ctx, 6)
		require.NoError(t, err)
		var out bytes.Buffer

		require.NoError(t, app.PrintReports(ctx, &out, "2000-01-01", ""))

		assert.Contains(t, out.String(), "By waste type (2000-01-01 to …)")
		assert.Contains(t, out.String(), "Papel e Papelão")
		assert.Contains(t, out.String(), "Indústria de Plásticos Anápolis")
	})

	t.Run("malformed day", func(t *testing.T) {
		err := app.PrintReports(ctx, &bytes.Buffer{}, "01/02/2024", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "dataInicio")
	})
}

func TestRootCommand(t *testing.T) {
	color.NoColor = true
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "waste.db"))
	t.Setenv("LOG_LEVEL", "error")

	run := func(args ...string) string {
		t.Helper()
		var out bytes.Buffer
		root := cmd.NewRootCommand()
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append([]string{"--env-file", filepath.Join(dir, "missing.env")}, args...))
		require.NoError(t, root.Execute(), out.String())
		return out.String()
	}

	assert.Contains(t, run("migrate"), "schema is up to date")
	assert.Contains(t, run("seed", "--requests", "6"), "completed: 2")
	assert.Contains(t, run("report"), "Metalúrgica Jataí S.A.")

	t.Run("subcommands are registered", func(t *testing.T) {
		names := make([]string, 0)
		for _, c := range cmd.NewRootCommand().Commands() {
			names = append(names, c.Name())
		}
		assert.Subset(t, names, []string{"serve", "migrate", "seed", "report"})
	})
}
