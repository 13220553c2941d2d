package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpin "wastecollection/internal/adapters/in/http"
	"wastecollection/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(opts *rootOptions) *cobra.Command {
	var skipMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the certificate audit job",
		Long: `Start the HTTP API on HTTP_PORT together with the scheduled
certificate audit. The schema is migrated first unless --skip-migrate is set.
SIGINT and SIGTERM trigger a graceful shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, closeDB, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer closeDB()

			if !skipMigrate {
				if err := postgres.Migrate(app.DB()); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Serve(ctx)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the schema on start")

	return cmd
}

// Serve runs the web server and the scheduled jobs until ctx is cancelled.
func (c *CompositionRoot) Serve(ctx context.Context) error {
	e, err := httpin.NewEcho(httpin.NewServer(c.HTTPHandlers(), c.logger), c.logger)
	if err != nil {
		return err
	}

	jobManager := c.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	addr := fmt.Sprintf("0.0.0.0:%s", c.cfg.HTTPPort)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(addr)
	}()
	c.logger.Info("http server started", slog.String("addr", addr))

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	c.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
