package port

import "context"

// TxRepositories are bound to a single transaction.
type TxRepositories struct {
	Menu   MenuRepository
	Orders OrderRepository
}

type TxManager interface {
	// InTx commits when fn returns nil and rolls back on an error or a panic.
	InTx(ctx context.Context, fn func(repos TxRepositories) error) error
}
