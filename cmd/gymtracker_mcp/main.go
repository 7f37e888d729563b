// Package main runs the gym tracker MCP server over stdio, for local editor use.
// The same tools are mounted on the backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	gymmcp "github.com/2beens/gymtracker/internal/mcp"
	"github.com/2beens/gymtracker/internal/profiles"
	"github.com/2beens/gymtracker/internal/ranking"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	_ = godotenv.Load()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("POSTGRES_PASSWORD"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	profilesRepo := profiles.NewRepo(dbPool)
	rankingRepo := ranking.NewRepo(dbPool)
	// short lived cache, a stdio session is a single user
	rankingService := ranking.NewService(
		rankingRepo,
		ranking.NewCache(cfg.RankingCacheSizeBytes, 5*time.Second, metrics.NewManager("gymtracker", "mcp_stdio", prometheus.NewRegistry())),
	)

	server := gymmcp.NewServer(gymmcp.NewContextService(
		gymmcp.NewPoolSchemaRepo(dbPool),
		profilesRepo,
		rankingService,
		rankingRepo,
	))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
