package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator applies the embedded schema migrations, including the aggregation
// functions used by the dashboard.
type Migrator struct {
	sqlDB *sql.DB
	m     *migrate.Migrate
}

func NewMigrator(params NewDBPoolParams) (*Migrator, error) {
	sqlDB, err := sql.Open("postgres", params.ConnString())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{
		DatabaseName: params.DBName,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate postgres driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrations source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, params.DBName, driver)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("new migrate instance: %w", err)
	}

	return &Migrator{
		sqlDB: sqlDB,
		m:     m,
	}, nil
}

func (mg *Migrator) Up() error {
	err := mg.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Debugln("migrations: no change")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("invalid number of steps: %d", steps)
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down %d: %w", steps, err)
	}
	return nil
}

// Version returns the current schema version, 0 when nothing is applied yet.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}
