package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/model"

	"github.com/jackc/pgx/v4/pgxpool"
)

// SectionStore writes section documents into Postgres so PostgresSource can
// serve them. Documents are validated before they are stored.
type SectionStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSectionStore(pool *pgxpool.Pool, logger *slog.Logger) *SectionStore {
	return &SectionStore{pool: pool, logger: logger}
}

// Save upserts one section document.
func (s *SectionStore) Save(ctx context.Context, section model.Section, doc []byte) error {
	if s.pool == nil {
		return fmt.Errorf("section store: no connection pool")
	}
	if _, err := decodeSection(section, doc); err != nil {
		return newLoadError(section, err)
	}

	_, err := s.pool.Exec(ctx, `INSERT INTO cv_sections (section, document, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (section) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		string(section), string(doc))
	if err != nil {
		return fmt.Errorf("upserting %s: %w", section, err)
	}
	s.logger.Info("section stored", "section", section, "bytes", len(doc))
	return nil
}

// SeedFrom copies every section available in src into the table. Missing
// sections are skipped with a warning; anything else aborts.
func (s *SectionStore) SeedFrom(ctx context.Context, src Source) (int, error) {
	n := 0
	for _, section := range model.Sections {
		doc, err := src.ReadSection(ctx, section)
		if err != nil {
			if isNotFound(err) {
				s.logger.Warn("section missing from source, skipped", "section", section)
				continue
			}
			return n, newLoadError(section, err)
		}
		if err := s.Save(ctx, section, doc); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// StoredSection describes one row of cv_sections.
type StoredSection struct {
	Section   model.Section
	Bytes     int
	UpdatedAt time.Time
}

// List returns the stored sections, most recently updated first.
func (s *SectionStore) List(ctx context.Context) ([]StoredSection, error) {
	if s.pool == nil {
		return nil, fmt.Errorf("section store: no connection pool")
	}
	rows, err := s.pool.Query(ctx, `SELECT section, octet_length(document::text), updated_at
		FROM cv_sections ORDER BY updated_at DESC, section`)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var out []StoredSection
	for rows.Next() {
		var (
			st   StoredSection
			name string
		)
		if err := rows.Scan(&name, &st.Bytes, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning section row: %w", err)
		}
		st.Section = model.Section(name)
		out = append(out, st)
	}
	return out, rows.Err()
}
