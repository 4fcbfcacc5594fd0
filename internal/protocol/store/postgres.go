package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5/pgconn"

	"verisbt/internal/protocol/models"
	"verisbt/internal/sentinel"
	id "verisbt/pkg/domain"
	txcontext "verisbt/pkg/platform/tx"
)

// PostgresStore keeps issuers in protocol_issuers, ordered by position, and
// bindings in token_bindings. Ids are stored as decimal text.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) AddIssuer(ctx context.Context, org id.OrganizationID) (bool, error) {
	res, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO protocol_issuers (organization_id, position)
		SELECT $1, COALESCE(MAX(position) + 1, 0) FROM protocol_issuers
		ON CONFLICT (organization_id) DO NOTHING
	`, org.String())
	if err != nil {
		return false, fmt.Errorf("add issuer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("add issuer: %w", err)
	}
	return n > 0, nil
}

// RemoveIssuer deletes org and moves the issuer with the highest position
// into its slot.
func (s *PostgresStore) RemoveIssuer(ctx context.Context, org id.OrganizationID) (bool, error) {
	var pos int64
	err := s.execer(ctx).QueryRowContext(ctx,
		`DELETE FROM protocol_issuers WHERE organization_id = $1 RETURNING position`, org.String(),
	).Scan(&pos)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("remove issuer: %w", err)
	}
	_, err = s.execer(ctx).ExecContext(ctx, `
		UPDATE protocol_issuers SET position = $1
		WHERE position = (SELECT MAX(position) FROM protocol_issuers) AND position > $1
	`, pos)
	if err != nil {
		return false, fmt.Errorf("compact issuers: %w", err)
	}
	return true, nil
}

func (s *PostgresStore) HasIssuer(ctx context.Context, org id.OrganizationID) (bool, error) {
	var ok bool
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM protocol_issuers WHERE organization_id = $1)`, org.String(),
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("has issuer: %w", err)
	}
	return ok, nil
}

func (s *PostgresStore) ListIssuers(ctx context.Context) ([]id.OrganizationID, error) {
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT organization_id FROM protocol_issuers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list issuers: %w", err)
	}
	defer rows.Close()

	var out []id.OrganizationID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan issuer: %w", err)
		}
		org, err := id.ParseOrganizationID(raw)
		if err != nil {
			return nil, fmt.Errorf("parse issuer: %w", err)
		}
		out = append(out, org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list issuers: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateBinding(ctx context.Context, b models.Binding) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO token_bindings (token_key, token, organization_id, group_id, query_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, b.Key.String(), b.Token.Bytes(), b.OrganizationID.String(), b.GroupID.String(), b.QueryName, b.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("token key %s: %w", b.Key, sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create binding: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBinding(ctx context.Context, key id.TokenKey) (*models.Binding, error) {
	var (
		b          models.Binding
		token      []byte
		org, group string
	)
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT token, organization_id, group_id, query_name, created_at
		FROM token_bindings
		WHERE token_key = $1
	`, key.String()).Scan(&token, &org, &group, &b.QueryName, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find binding: %w", err)
	}
	b.Key = key
	b.Token = common.BytesToAddress(token)
	if b.OrganizationID, err = id.ParseOrganizationID(org); err != nil {
		return nil, fmt.Errorf("parse binding organization: %w", err)
	}
	if b.GroupID, err = id.ParseGroupID(group); err != nil {
		return nil, fmt.Errorf("parse binding group: %w", err)
	}
	return &b, nil
}
