// Package testinternals starts throwaway Postgres and Redis containers for the
// integration tests, which run with -tags integration_test (or all_tests).
package testinternals

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/2beens/gymtracker/internal/db"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"
)

const (
	TestDBName     = "gymtracker_test"
	testDBPassword = "postgres"
	maxWait        = 90 * time.Second
)

// Internals holds the running containers and clients connected to them.
type Internals struct {
	DBParams    db.NewDBPoolParams
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	RedisPort   string

	dockerPool *dockertest.Pool
	teardown   []func()
}

// Setup starts postgres (with all migrations applied) and, when withRedis is
// set, redis. Call Cleanup when done, also on error.
func Setup(ctx context.Context, withRedis bool) (*Internals, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("new dockertest pool: %w", err)
	}
	dockerPool.MaxWait = maxWait

	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping docker: %w", err)
	}

	in := &Internals{dockerPool: dockerPool}

	if err := in.postgresSetup(ctx); err != nil {
		in.Cleanup()
		return nil, err
	}

	if withRedis {
		if err := in.redisSetup(ctx); err != nil {
			in.Cleanup()
			return nil, err
		}
	}

	return in, nil
}

func (in *Internals) postgresSetup(ctx context.Context) error {
	pgResource, err := in.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + TestDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return fmt.Errorf("dockerpool run postgres: %w", err)
	}
	in.teardown = append(in.teardown, func() {
		if err := in.dockerPool.Purge(pgResource); err != nil {
			log.Errorf("postgres teardown: %s", err)
		}
	})

	in.DBParams = db.NewDBPoolParams{
		DBHost:     "localhost",
		DBPort:     pgResource.GetPort("5432/tcp"),
		DBName:     TestDBName,
		DBUser:     "postgres",
		DBPassword: testDBPassword,
	}

	in.DBPool, err = db.NewDBPool(ctx, in.DBParams)
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	in.teardown = append(in.teardown, in.DBPool.Close)

	if err := in.dockerPool.Retry(func() error {
		return in.DBPool.Ping(ctx)
	}); err != nil {
		return fmt.Errorf("connect to db: %w", err)
	}

	migrator, err := db.NewMigrator(in.DBParams)
	if err != nil {
		return fmt.Errorf("new migrator: %w", err)
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Warnf("close migrator: %s", err)
		}
	}()

	return migrator.Up()
}

func (in *Internals) redisSetup(ctx context.Context) error {
	redisResource, err := in.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return fmt.Errorf("run redis: %w", err)
	}
	in.teardown = append(in.teardown, func() {
		if err := in.dockerPool.Purge(redisResource); err != nil {
			log.Errorf("redis teardown: %s", err)
		}
	})

	in.RedisPort = redisResource.GetPort("6379/tcp")
	in.RedisClient = redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", in.RedisPort),
	})
	in.teardown = append(in.teardown, func() {
		_ = in.RedisClient.Close()
	})

	return in.dockerPool.Retry(func() error {
		return in.RedisClient.Ping(ctx).Err()
	})
}

// Truncate empties every table, keeping the schema.
func (in *Internals) Truncate(ctx context.Context) error {
	_, err := in.DBPool.Exec(ctx, `
		TRUNCATE profiles, categories, exercises, exercise_categories,
			exercise_assignments, exercise_preferences,
			workout_logs, workout_sets, cardio_logs
		CASCADE
	`)
	return err
}

// Cleanup tears everything down in reverse order.
func (in *Internals) Cleanup() {
	for i := len(in.teardown) - 1; i >= 0; i-- {
		in.teardown[i]()
	}
	in.teardown = nil
}
