package main

import (
	"fmt"
	"log"

	"github.com/sangkips/innkeeper-api/internal/config"
	"github.com/sangkips/innkeeper-api/internal/infrastructure/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and seed the default property",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			db, err := openAndMigrate(cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
}

// openAndMigrate connects, migrates and seeds. Seeding failures are logged only.
func openAndMigrate(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(&cfg.Database, cfg.App.Debug)
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(db); err != nil {
		closeDB(db)
		return nil, err
	}

	if _, err := database.SeedDefaultData(db, &cfg.Seed); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Warning: failed to close database: %v", err)
	}
}
