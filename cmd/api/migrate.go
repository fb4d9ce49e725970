package main

import (
	"github.com/spf13/cobra"

	"recordlabel-backend/internal/config"
	"recordlabel-backend/internal/infrastructure/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the embedded schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			return m.Up()
		})
	},
}

var downSteps int

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			return m.Down(downSteps)
		})
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&downSteps, "steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withMigrator(fn func(*database.Migrator) error) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}
	m, err := database.NewMigrator(dbConfig)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}
