package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"verisbt/internal/query/models"
	"verisbt/internal/sentinel"
	"verisbt/internal/validator"
	id "verisbt/pkg/domain"
	txcontext "verisbt/pkg/platform/tx"
)

// PostgresStore persists the registry in default_queries,
// organization_queries and query_builders.
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

func (s *PostgresStore) PutDefault(ctx context.Context, name string, q *models.Query) error {
	if q == nil {
		return fmt.Errorf("query is required")
	}
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO default_queries (name, metadata, payload, validator, is_static, is_group_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET
			metadata = EXCLUDED.metadata,
			payload = EXCLUDED.payload,
			validator = EXCLUDED.validator,
			is_static = EXCLUDED.is_static,
			is_group_level = EXCLUDED.is_group_level,
			updated_at = NOW()
	`, name, q.Metadata, q.Payload, string(q.Validator), q.IsStatic, q.IsGroupLevel)
	if err != nil {
		return fmt.Errorf("put default query: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteDefault(ctx context.Context, name string) error {
	if _, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM default_queries WHERE name = $1`, name); err != nil {
		return fmt.Errorf("delete default query: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindDefault(ctx context.Context, name string) (*models.Query, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `
		SELECT metadata, payload, validator, is_static, is_group_level
		FROM default_queries
		WHERE name = $1
	`, name)
	q, err := scanQuery(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find default query: %w", err)
	}
	return q, nil
}

func (s *PostgresStore) ListDefaultNames(ctx context.Context) ([]string, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `SELECT name FROM default_queries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list default queries: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan default query name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *PostgresStore) PutOrganization(ctx context.Context, org id.OrganizationID, name string, q *models.Query) error {
	if q == nil {
		return fmt.Errorf("query is required")
	}
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO organization_queries (organization_id, name, metadata, payload, validator, is_static, is_group_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organization_id, name) DO UPDATE SET
			metadata = EXCLUDED.metadata,
			payload = EXCLUDED.payload,
			validator = EXCLUDED.validator,
			is_static = EXCLUDED.is_static,
			is_group_level = EXCLUDED.is_group_level,
			updated_at = NOW()
	`, org.String(), name, q.Metadata, q.Payload, string(q.Validator), q.IsStatic, q.IsGroupLevel)
	if err != nil {
		return fmt.Errorf("put organization query: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteOrganization(ctx context.Context, org id.OrganizationID, name string) error {
	_, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM organization_queries WHERE organization_id = $1 AND name = $2`, org.String(), name)
	if err != nil {
		return fmt.Errorf("delete organization query: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindOrganization(ctx context.Context, org id.OrganizationID, name string) (*models.Query, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `
		SELECT metadata, payload, validator, is_static, is_group_level
		FROM organization_queries
		WHERE organization_id = $1 AND name = $2
	`, org.String(), name)
	q, err := scanQuery(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find organization query: %w", err)
	}
	return q, nil
}

func (s *PostgresStore) PutBuilder(ctx context.Context, circuitID, builder string) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO query_builders (circuit_id, builder)
		VALUES ($1, $2)
		ON CONFLICT (circuit_id) DO UPDATE SET builder = EXCLUDED.builder, updated_at = NOW()
	`, circuitID, builder)
	if err != nil {
		return fmt.Errorf("put query builder: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteBuilder(ctx context.Context, circuitID string) error {
	if _, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM query_builders WHERE circuit_id = $1`, circuitID); err != nil {
		return fmt.Errorf("delete query builder: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBuilder(ctx context.Context, circuitID string) (string, error) {
	var builder string
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT builder FROM query_builders WHERE circuit_id = $1`, circuitID).Scan(&builder)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("find query builder: %w", err)
	}
	return builder, nil
}

func (s *PostgresStore) ListBuilders(ctx context.Context) ([]models.BuilderBinding, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `SELECT circuit_id, builder FROM query_builders ORDER BY circuit_id`)
	if err != nil {
		return nil, fmt.Errorf("list query builders: %w", err)
	}
	defer rows.Close()
	var out []models.BuilderBinding
	for rows.Next() {
		var b models.BuilderBinding
		if err := rows.Scan(&b.CircuitID, &b.Builder); err != nil {
			return nil, fmt.Errorf("scan query builder: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanQuery(row *sql.Row) (*models.Query, error) {
	var q models.Query
	var ref string
	if err := row.Scan(&q.Metadata, &q.Payload, &ref, &q.IsStatic, &q.IsGroupLevel); err != nil {
		return nil, err
	}
	q.Validator = validator.Ref(ref)
	return &q, nil
}
