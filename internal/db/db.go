package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
	"github.com/yogi-fashion/embroidery-service/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB is the single persistent store shared by every repository.
type DB struct {
	DB  *sqlx.DB
	cfg config.Database
}

// Open connects to the configured store. PostgreSQL connections are retried
// a few times to ride out container start-up; SQLite opens immediately.
func Open(cfg config.Database) (*DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	maxRetries := 1
	if cfg.Driver == "postgres" {
		maxRetries = 5
	}

	for i := 0; i < maxRetries; i++ {
		conn, err = sqlx.Connect(cfg.Driver, cfg.ConnString())
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max", maxRetries).Msg("failed to connect to database")
		if i+1 < maxRetries {
			time.Sleep(time.Duration(i+1) * 2 * time.Second)
		}
	}
	if err != nil {
		return nil, apperror.Storage(fmt.Sprintf("connect after %d attempts", maxRetries), err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	if cfg.Driver == "sqlite" {
		// One writer at a time; busy_timeout covers other processes.
		maxOpen = 1
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(maxOpen)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, apperror.Storage("ping database", err)
	}

	return &DB{DB: conn, cfg: cfg}, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.DB.Close()
}

// Driver returns the sqlx driver name in use.
func (d *DB) Driver() string {
	return d.DB.DriverName()
}

// EnsureSchema creates the users, clients, employees, products and expenses
// tables if they do not exist yet. It is safe to call on every start.
func (d *DB) EnsureSchema(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	// migrate opens its own connection so closing it leaves d.DB untouched.
	m, err := migrate.NewWithSourceInstance("iofs", src, d.cfg.MigrateURL())
	if err != nil {
		return apperror.Storage("initialize schema bootstrap", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.Storage("create tables", err)
	}

	log.Debug().Str("driver", d.cfg.Driver).Msg("schema ready")
	return nil
}

// HealthCheck performs a database health check
func (d *DB) HealthCheck(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}
