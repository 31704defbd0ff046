package persistence

import (
	"context"

	"github.com/shopbot/backend/internal/domain/shared"
	"gorm.io/gorm"
)

type txKey struct{}

// WithTx returns a context carrying the given transaction
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction carried by the context, or nil
func TxFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}

// GormTxManager implements shared.TxManager on a gorm connection.
// Repositories created from the same *gorm.DB pick the transaction up
// from the context, so everything inside fn shares one transaction.
type GormTxManager struct {
	db *gorm.DB
}

// Ensure GormTxManager implements shared.TxManager
var _ shared.TxManager = (*GormTxManager)(nil)

// NewGormTxManager creates a new GormTxManager
func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// WithinTx runs fn inside a single database transaction
func (m *GormTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}

// conn returns the transaction from the context when present, falling
// back to the supplied connection
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
