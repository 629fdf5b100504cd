package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio/internal/adapter/repository"
	"portfolio/internal/infrastructure/migration"
	infra "portfolio/pkg/infrastructure"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
)

func openDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	if cfg.Data.DatabaseURL == "" {
		return nil, errors.New("data.database_url (DATABASE_URL) is not set")
	}
	pool, err := infra.NewPool(ctx, cfg.Data.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := migration.RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return pool, nil
}

func seedCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy section files into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()

			pool, err := openDatabase(ctx)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			defer pool.Close()

			if dir == "" {
				dir = cfg.Data.Dir
			}
			store := repository.NewSectionStore(pool, logger)
			n, err := store.SeedFrom(ctx, repository.NewFileSource(dir))
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "seeded %d sections from %s\n", n, dir)

			stored, err := store.List(ctx)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			for _, st := range stored {
				fmt.Fprintf(out, "  %-13s %6d bytes  %s\n", st.Section, st.Bytes, st.UpdatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory with section files (default data.dir)")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the cv_sections table",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := openDatabase(cmd.Context())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			pool.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
