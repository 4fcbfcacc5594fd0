package token

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

// PostgresStore keeps factory state in token_factory, tokens in
// verified_sbts and holders in verified_sbt_holders.
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

func (s *PostgresStore) SaveFactory(ctx context.Context, state FactoryState) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO token_factory (id, manager, implementation, nonce)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			manager = EXCLUDED.manager,
			implementation = EXCLUDED.implementation,
			nonce = EXCLUDED.nonce,
			updated_at = NOW()
	`, state.Manager.Bytes(), state.Implementation, int64(state.Nonce))
	if err != nil {
		return fmt.Errorf("save factory: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindFactory(ctx context.Context) (FactoryState, error) {
	return s.findFactory(ctx, `SELECT manager, implementation, nonce FROM token_factory WHERE id = 1`)
}

// LockFactory reads the factory row FOR UPDATE. Concurrent deployments
// queue on the row and each sees the nonce its predecessor committed.
func (s *PostgresStore) LockFactory(ctx context.Context) (FactoryState, error) {
	return s.findFactory(ctx, `SELECT manager, implementation, nonce FROM token_factory WHERE id = 1 FOR UPDATE`)
}

func (s *PostgresStore) findFactory(ctx context.Context, query string) (FactoryState, error) {
	var (
		manager []byte
		state   FactoryState
		nonce   int64
	)
	err := s.execer(ctx).QueryRowContext(ctx, query).Scan(&manager, &state.Implementation, &nonce)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FactoryState{}, sentinel.ErrNotFound
		}
		return FactoryState{}, fmt.Errorf("find factory: %w", err)
	}
	state.Manager = common.BytesToAddress(manager)
	state.Nonce = uint64(nonce)
	return state, nil
}

func (s *PostgresStore) CreateToken(ctx context.Context, meta Metadata) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO verified_sbts (address, name, symbol, base_uri, manager, next_token_id)
		VALUES ($1, $2, $3, $4, $5, 0)
	`, meta.Address.Bytes(), meta.Name, meta.Symbol, meta.BaseURI, meta.Manager.Bytes())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("token %s: %w", meta.Address.Hex(), sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create token: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindToken(ctx context.Context, addr common.Address) (*Metadata, error) {
	var (
		meta    Metadata
		manager []byte
		next    int64
	)
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT name, symbol, base_uri, manager, next_token_id
		FROM verified_sbts
		WHERE address = $1
	`, addr.Bytes()).Scan(&meta.Name, &meta.Symbol, &meta.BaseURI, &manager, &next)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find token: %w", err)
	}
	meta.Address = addr
	meta.Manager = common.BytesToAddress(manager)
	meta.NextTokenID = uint64(next)
	return &meta, nil
}

func (s *PostgresStore) UpdateBaseURI(ctx context.Context, addr common.Address, uri string) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE verified_sbts SET base_uri = $2, updated_at = NOW()
		WHERE address = $1
	`, addr.Bytes(), uri)
	if err != nil {
		return fmt.Errorf("update base uri: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) AppendHolder(ctx context.Context, addr, holder common.Address) (uint64, error) {
	var tokenID int64
	err := s.execer(ctx).QueryRowContext(ctx, `
		UPDATE verified_sbts SET next_token_id = next_token_id + 1, updated_at = NOW()
		WHERE address = $1
		RETURNING next_token_id - 1
	`, addr.Bytes()).Scan(&tokenID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, sentinel.ErrNotFound
		}
		return 0, fmt.Errorf("reserve token id: %w", err)
	}
	_, err = s.execer(ctx).ExecContext(ctx, `
		INSERT INTO verified_sbt_holders (token, token_id, holder)
		VALUES ($1, $2, $3)
	`, addr.Bytes(), tokenID, holder.Bytes())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, fmt.Errorf("holder %s of %s: %w", holder.Hex(), addr.Hex(), sentinel.ErrAlreadyUsed)
		}
		return 0, fmt.Errorf("insert holder: %w", err)
	}
	return uint64(tokenID), nil
}

func (s *PostgresStore) FindHolder(ctx context.Context, addr common.Address, tokenID uint64) (common.Address, error) {
	var raw []byte
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT holder FROM verified_sbt_holders WHERE token = $1 AND token_id = $2
	`, addr.Bytes(), int64(tokenID)).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.Address{}, sentinel.ErrNotFound
		}
		return common.Address{}, fmt.Errorf("find holder: %w", err)
	}
	return common.BytesToAddress(raw), nil
}

func (s *PostgresStore) CountHolder(ctx context.Context, addr, holder common.Address) (uint64, error) {
	var n int64
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT COUNT(*) FROM verified_sbt_holders WHERE token = $1 AND holder = $2
	`, addr.Bytes(), holder.Bytes()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count holder: %w", err)
	}
	return uint64(n), nil
}
