package dao

import (
	"context"

	"gorm.io/gorm"
)

type txCtxKey struct{}

// CtxWithTx stashes an open transaction in the context so collaborators that
// only receive a context can join the same atomic operation.
func CtxWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// Tx returns the dao bound to the transaction carried by ctx, or the dao
// itself when ctx carries none.
func (d *Dao) Tx(ctx context.Context) *Dao {
	tx, ok := ctx.Value(txCtxKey{}).(*gorm.DB)
	if !ok {
		return d
	}
	return d.WithTx(tx)
}
