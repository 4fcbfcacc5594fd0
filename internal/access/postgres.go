package access

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5/pgconn"

	"verisbt/internal/sentinel"
	txcontext "verisbt/pkg/platform/tx"
)

// PostgresStore keeps owners in the component_owners table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Initialize(ctx context.Context, component string, owner common.Address) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO component_owners (component, owner)
		VALUES ($1, $2)
	`, component, owner.Bytes())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%s: %w", component, sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("initialize %s: %w", component, err)
	}
	return nil
}

func (s *PostgresStore) FindOwner(ctx context.Context, component string) (common.Address, error) {
	var raw []byte
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT owner FROM component_owners WHERE component = $1`, component).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.Address{}, sentinel.ErrNotFound
		}
		return common.Address{}, fmt.Errorf("find owner: %w", err)
	}
	return common.BytesToAddress(raw), nil
}

func (s *PostgresStore) SaveOwner(ctx context.Context, component string, owner common.Address) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE component_owners SET owner = $2, updated_at = NOW()
		WHERE component = $1
	`, component, owner.Bytes())
	if err != nil {
		return fmt.Errorf("save owner: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
