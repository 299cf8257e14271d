// Package testdb starts a throwaway Postgres for integration tests.
package testdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/canteen/internal/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const image = "postgres:16-alpine"

// Start runs a Postgres container, applies the schema and returns a pool connected to it.
// The caller closes the pool and terminates the container.
func Start(ctx context.Context) (testcontainers.Container, *pgxpool.Pool, error) {
	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase("canteen"),
		postgres.WithUsername("canteen"),
		postgres.WithPassword("canteen"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, fmt.Errorf("container.ConnectionString: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return container, nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return container, nil, fmt.Errorf("db.Migrate: %w", err)
	}

	return container, pool, nil
}

// Truncate empties every table between test cases.
func Truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE order_items, orders, cart_items, menu_items, users RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}

// InsertUser adds a user row so read models can join names and emails.
func InsertUser(ctx context.Context, pool *pgxpool.Pool, id, name, email, role string) error {
	_, err := pool.Exec(ctx, "INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, $4)", id, name, email, role)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}
