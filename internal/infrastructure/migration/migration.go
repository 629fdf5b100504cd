package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations creates or upgrades the tables backing the postgres data source.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range All() {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// All returns the migrations in the order they are applied.
func All() []Migration {
	return []Migration{
		{Name: "create_cv_sections", Up: createCVSections},
		{Name: "add_cv_sections_updated_at_index", Up: addUpdatedAtIndex},
	}
}

// createCVSections holds one JSON document per CV section.
func createCVSections(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS cv_sections (
			section    TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

func addUpdatedAtIndex(ctx context.Context, pool *pgxpool.Pool) error {
	query := `CREATE INDEX IF NOT EXISTS cv_sections_updated_at_idx ON cv_sections (updated_at DESC);`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the index only speeds up SectionStore.List
		slog.Warn("Error adding updated_at index", "error", err)
		return nil
	}
	return nil
}
