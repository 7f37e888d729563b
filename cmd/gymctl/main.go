// Command gymctl runs operator tasks against a gym tracker deployment:
// schema migrations, admin grants, password hashing and health checks.
package main

import (
	"fmt"
	"os"

	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	envName    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gymctl",
	Short: "Gym tracker operator tool",
	Long: `Operator commands for the gym tracker backend.

Secrets (POSTGRES_PASSWORD etc.) are read from the environment,
or from a .env file in the working directory.

Examples:
  gymctl migrate up
  gymctl migrate down --steps 1
  gymctl admin grant ana@gym.io
  gymctl hash-password
  gymctl ping --url http://localhost:9000`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envName, configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func dbParams(cfg *config.Config) db.NewDBPoolParams {
	return db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
	}
}
