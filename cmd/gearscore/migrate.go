package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/RaidBot_Go/internal/config"
	"github.com/osse101/RaidBot_Go/internal/database"
)

func newMigrateCmd(opts *options) *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long:  `Apply every pending schema migration. The connection defaults to the DB_* environment variables.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dsn == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dsn = cfg.GetDBConnString()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			if err := database.Migrate(ctx, dsn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL connection string")
	return cmd
}
