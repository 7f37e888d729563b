package main

import (
	"fmt"

	"github.com/2beens/gymtracker/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE:  runMigrateUp,
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	Long: `Roll back the given number of migrations.

WARNING: rolling back drops tables together with their data.`,
	RunE: runMigrateDown,
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE:  runMigrateVersion,
}

func init() {
	migrateDownCmd.Flags().Int("steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)

	rootCmd.AddCommand(migrateCmd)
}

func withMigrator(fn func(m *db.Migrator) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	migrator, err := db.NewMigrator(dbParams(cfg))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(migrator)
}

func runMigrateUp(_ *cobra.Command, _ []string) error {
	return withMigrator(func(m *db.Migrator) error {
		if err := m.Up(); err != nil {
			return err
		}
		fmt.Println("migrations applied")
		return printVersion(m)
	})
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	steps, _ := cmd.Flags().GetInt("steps")
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	return withMigrator(func(m *db.Migrator) error {
		if err := m.Down(steps); err != nil {
			return err
		}
		fmt.Printf("rolled back %d migration(s)\n", steps)
		return printVersion(m)
	})
}

func runMigrateVersion(_ *cobra.Command, _ []string) error {
	return withMigrator(printVersion)
}

func printVersion(m *db.Migrator) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	fmt.Printf("schema version: %d (dirty: %t)\n", version, dirty)
	return nil
}
