package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"registrant-auth/internal/app"
	"registrant-auth/internal/config"
	"registrant-auth/internal/logger"

	"github.com/spf13/cobra"
)

const drainTimeout = 10 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the session HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// serve runs the session API until SIGINT or SIGTERM, then drains in-flight
// issuances and lookups before closing the stores.
func serve(parent context.Context, c config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, c)
	if err != nil {
		logger.Error("session service could not start", map[string]any{
			"backend": c.SessionBackend,
			"error":   err.Error(),
		})
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- application.Run()
	}()

	logger.Info("accepting session requests", map[string]any{
		"port":             c.AppPort,
		"backend":          c.SessionBackend,
		"auto_migrate":     c.DatabaseAutoMigrate && c.SessionBackend != config.BackendMemory,
		"enforce_expiry":   c.SessionEnforceExpiry,
		"issuance_enabled": c.SessionGenerationDigest != "",
		"seed_registrants": len(c.MemoryRegistrants),
	})

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("http listener stopped", map[string]any{"error": err.Error()})
			_ = application.Shutdown(context.Background())
			return err
		}
	case <-ctx.Done():
		logger.Info("draining session requests", map[string]any{
			"timeout": drainTimeout.String(),
		})
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := application.Shutdown(drainCtx); err != nil {
		logger.Error("session stores did not close cleanly", map[string]any{
			"backend": c.SessionBackend,
			"error":   err.Error(),
		})
		return err
	}

	logger.Info("session service stopped", map[string]any{"backend": c.SessionBackend})
	return nil
}
