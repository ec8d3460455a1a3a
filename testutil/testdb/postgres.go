// Package testdb runs a throwaway PostgreSQL container with the bookstore
// schema loaded, for integration tests.
package testdb

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image        = "postgres:16-alpine"
	databaseName = "bookstore_test"
	startTimeout = 2 * time.Minute
)

// Tables lists every application table. TRUNCATE ... CASCADE makes the
// order irrelevant.
var Tables = []string{"sale_items", "sales", "products", "categories", "clients", "distributors", "users"}

// DB is a running container plus a pool connected to it
type DB struct {
	Pool      *pgxpool.Pool
	container *postgres.PostgresContainer
}

// Start boots the container and applies every *.up.sql migration in name order
func Start(ctx context.Context) (*DB, error) {
	scripts, err := upMigrations()
	if err != nil {
		return nil, err
	}

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase(databaseName),
		postgres.WithUsername("bookstore"),
		postgres.WithPassword("bookstore"),
		postgres.WithInitScripts(scripts...),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startTimeout),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}
	db := &DB{container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, errors.Join(fmt.Errorf("connection string: %w", err), db.Close(ctx))
	}
	if db.Pool, err = pgxpool.New(ctx, dsn); err != nil {
		return nil, errors.Join(fmt.Errorf("open pool: %w", err), db.Close(ctx))
	}
	if err := db.Pool.Ping(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("ping: %w", err), db.Close(ctx))
	}
	return db, nil
}

// Truncate empties every application table
func (db *DB) Truncate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, "TRUNCATE TABLE "+strings.Join(Tables, ", ")+" CASCADE"); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return nil
}

// Close releases the pool and removes the container
func (db *DB) Close(ctx context.Context) error {
	if db.Pool != nil {
		db.Pool.Close()
	}
	return db.container.Terminate(ctx)
}

func upMigrations() ([]string, error) {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		return nil, errors.New("cannot locate testdb source file")
	}
	root := filepath.Join(filepath.Dir(self), "..", "..")
	scripts, err := filepath.Glob(filepath.Join(root, "migrations", "*.up.sql"))
	if err != nil {
		return nil, err
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("no migrations under %s", filepath.Join(root, "migrations"))
	}
	sort.Strings(scripts)
	return scripts, nil
}
