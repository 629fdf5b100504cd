package repository

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/model"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// PostgresSource reads section documents from the cv_sections table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// queryJSON runs a SQL that returns a single json value as raw bytes.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, sql string, args ...interface{}) ([]byte, error) {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *PostgresSource) ReadSection(ctx context.Context, section model.Section) ([]byte, error) {
	if s.pool == nil {
		return nil, fmt.Errorf("postgres source: no connection pool")
	}
	raw, err := queryJSON(ctx, s.pool, `SELECT document::text FROM cv_sections WHERE section = $1`, string(section))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no row for %s", ErrSectionNotFound, section)
		}
		return nil, fmt.Errorf("querying %s: %w", section, err)
	}
	return raw, nil
}
