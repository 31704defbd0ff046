package shared

import "context"

// TxManager runs a function inside a single storage transaction.
// The context passed to fn carries the transaction; repositories that
// receive it perform their work within that transaction. If fn returns
// an error the transaction is rolled back, otherwise it is committed.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
