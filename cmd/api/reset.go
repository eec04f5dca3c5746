package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace all stored data with the default seed data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		a, err := setup(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.store.Reset(ctx); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		a.logger.Info("document reset to seed data", slog.String("backend", a.cfg.Store.Backend))
		fmt.Fprintln(cmd.OutOrStdout(), "Document reset to seed data")
		return nil
	},
}
