package tx

import (
	"context"
	"database/sql"
	"time"

	dErrors "verisbt/pkg/domain-errors"
)

const defaultTimeout = 5 * time.Second

// Postgres runs a unit of work in one SQL transaction and hands it to the
// stores through the context. A call made while ctx already carries a
// transaction joins it, so services can call each other inside one commit.
type Postgres struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db, timeout: defaultTimeout}
}

func (t *Postgres) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if _, ok := From(ctx); ok {
		return fn(ctx)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	sqlTx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "begin transaction")
	}
	defer func() {
		_ = sqlTx.Rollback() //nolint:errcheck // rollback after commit is no-op; error already captured
	}()

	if err := fn(WithTx(ctx, sqlTx)); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "commit transaction")
	}
	return nil
}
