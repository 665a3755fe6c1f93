package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sangkips/storefront-admin/internal/config"
	"github.com/sangkips/storefront-admin/internal/infrastructure/database"
	"github.com/sangkips/storefront-admin/internal/logger"
)

func newMigrateCommand() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			log := logger.New(cfg)

			db, err := database.Open(cfg, log)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")

			if !seed {
				return nil
			}
			n, err := database.SeedCatalog(cmd.Context(), db)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d catalog items\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "insert a starter catalog when the items table is empty")
	return cmd
}
