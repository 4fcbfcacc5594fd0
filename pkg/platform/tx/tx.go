// Package tx carries an open SQL transaction through a context so stores
// can join the unit of work started by a service.
package tx

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTx returns a context carrying tx.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// From returns the transaction stored in ctx, if any.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}
