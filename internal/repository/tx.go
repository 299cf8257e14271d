package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/canteen/internal/db"
)

var readSnapshot = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// withTx executes fn within a transaction if the repository was created with a pool,
// or uses the existing transaction if the repository was created with a transaction
func withTx[T any](ctx context.Context, dbtx db.DBTX, fn func(q *db.Queries) (T, error)) (T, error) {
	return runInTx(ctx, dbtx, pgx.TxOptions{}, func(tx pgx.Tx) (T, error) {
		return fn(db.New(tx))
	})
}

// withReadTx is withTx for multi-query reads that must observe a single snapshot.
func withReadTx[T any](ctx context.Context, dbtx db.DBTX, fn func(q *db.Queries) (T, error)) (T, error) {
	return runInTx(ctx, dbtx, readSnapshot, func(tx pgx.Tx) (T, error) {
		return fn(db.New(tx))
	})
}

// runInTx owns the transaction it begins: it is rolled back on error or panic and
// committed otherwise. A transaction passed in as dbtx is left to its owner.
func runInTx[T any](ctx context.Context, dbtx db.DBTX, opts pgx.TxOptions, fn func(tx pgx.Tx) (T, error)) (_ T, txErr error) {
	var zero T

	// Already in a transaction, just use it
	if tx, ok := dbtx.(pgx.Tx); ok {
		return fn(tx)
	}

	beginner, ok := dbtx.(txBeginner)
	if !ok {
		return zero, fmt.Errorf("dbtx is neither pgx.Tx nor a transaction starter: %T", dbtx)
	}

	tx, err := beginner.BeginTx(ctx, opts)
	if err != nil {
		return zero, fmt.Errorf("BeginTx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}

		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}
