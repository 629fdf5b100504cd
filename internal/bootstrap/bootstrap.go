// Package bootstrap assembles the repository, service and presentation
// pieces from configuration for cmd/server and cmd/cvctl.
package bootstrap

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"portfolio/internal/adapter/repository"
	"portfolio/internal/config"
	"portfolio/internal/infrastructure/migration"
	"portfolio/internal/usecase"
	infra "portfolio/pkg/infrastructure"
	"portfolio/web"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Runtime is the wired object graph. Pool is nil for the file source.
type Runtime struct {
	Config    *config.Config
	Logger    *slog.Logger
	Pool      *pgxpool.Pool
	Source    repository.Source
	Repo      *repository.CVRepo
	Service   *usecase.CVService
	Loader    *usecase.PageLoader
	Templates *template.Template
	Exporter  *usecase.Exporter
}

// New wires a Runtime. For the postgres source it connects and runs the
// migrations first.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	rt := &Runtime{Config: cfg, Logger: logger}

	switch cfg.Data.Source {
	case config.SourcePostgres:
		pool, err := infra.NewPool(ctx, cfg.Data.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := migration.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		rt.Pool = pool
		rt.Source = repository.NewPostgresSource(pool)
	default:
		rt.Source = repository.NewFileSource(cfg.Data.Dir)
	}

	ttl := cfg.CacheTTL()
	logger.Info("cv source ready", "source", cfg.Data.Source, "cache_ttl", ttl)

	rt.Repo = repository.NewCVRepo(rt.Source, repository.NewCache(ttl, nil), logger)
	rt.Service = usecase.NewCVService(rt.Repo, nil)
	rt.Loader = usecase.NewPageLoader(rt.Service, logger, cfg.Site.FeaturedOnly)

	tpl, err := web.Templates()
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.Templates = tpl

	css, err := web.PrintStylesheet()
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("reading print stylesheet: %w", err)
	}
	renderer := infra.NewChromedpRenderer(cfg.PDF.ChromePath, cfg.PDF.Timeout)
	rt.Exporter = usecase.NewExporter(rt.Service, renderer, tpl.Lookup(web.CVTemplate), css, logger).
		Retry(cfg.PDF.Attempts, cfg.PDF.Backoff)

	return rt, nil
}

// Close releases the database pool, if any.
func (r *Runtime) Close() {
	if r.Pool != nil {
		r.Pool.Close()
	}
}
