package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/canteen/internal/port"
)

type txManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) port.TxManager {
	return &txManager{pool: pool}
}

func (m *txManager) InTx(ctx context.Context, fn func(repos port.TxRepositories) error) error {
	_, err := runInTx(ctx, m.pool, pgx.TxOptions{}, func(tx pgx.Tx) (struct{}, error) {
		repos := port.TxRepositories{
			Menu:   NewMenuWithTx(tx),
			Orders: NewOrderWithTx(tx),
		}
		return struct{}{}, fn(repos)
	})
	return err
}
