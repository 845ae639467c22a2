package main

import (
	"context"
	"fmt"

	"registrant-auth/internal/db"
	"registrant-auth/internal/logger"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:       "migrate <up|down>",
	Short:     "Apply or revert the SQL schema",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := migrate.Up
		if args[0] == "down" {
			dir = migrate.Down
		}

		d, err := db.Open(context.Background(), cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer d.Close()

		n, err := db.Migrate(d, dir)
		if err != nil {
			return err
		}

		logger.Info("migration successful", map[string]any{
			"direction": args[0],
			"applied":   n,
		})
		fmt.Printf("Applied %d migrations.\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
