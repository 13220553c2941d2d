package cmd

import (
	"fmt"
	"log/slog"

	"wastecollection/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile string
}

// NewRootCommand builds the wastecollection CLI.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "wastecollection",
		Short: "Industrial waste collection tracking",
		Long: `wastecollection records collection requests raised by industrial sites,
tracks them from Pending to Completed and issues a certificate for every
completed collection.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file merged into the environment")

	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(migrateCmd(opts))
	rootCmd.AddCommand(seedCmd(opts))
	rootCmd.AddCommand(reportCmd(opts))

	return rootCmd
}

// bootstrap loads the configuration and opens the store. The returned
// closer releases the connection pool.
func (o *rootOptions) bootstrap() (CompositionRoot, func(), error) {
	cfg, err := LoadConfig(o.envFile)
	if err != nil {
		return CompositionRoot{}, nil, err
	}
	logger := cfg.NewLogger()

	db, err := OpenDatabase(cfg, logger)
	if err != nil {
		return CompositionRoot{}, nil, err
	}
	closer := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return NewCompositionRoot(cfg, db, logger), closer, nil
}

func migrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, closeDB, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer closeDB()

			if err := postgres.Migrate(app.DB()); err != nil {
				return err
			}
			app.logger.Info("schema migrated", slog.String("driver", app.cfg.DBDriver))
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}
