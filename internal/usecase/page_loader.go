package usecase

import (
	"context"
	"errors"
	"log/slog"

	"portfolio/internal/model"
)

// ErrPortfolioUnavailable is the only error the page load surfaces. Its text
// is safe to show to visitors.
var ErrPortfolioUnavailable = errors.New("Failed to load portfolio data. Please try again later.")

// PageMeta carries the completeness verdict shown next to the page.
type PageMeta struct {
	PortfolioComplete bool     `json:"portfolioComplete"`
	MissingSections   []string `json:"missingSections"`
}

// PageData is everything one page render needs.
type PageData struct {
	CVData            *model.CVData `json:"cvData"`
	YearsOfExperience int           `json:"yearsOfExperience"`
	Statistics        Statistics    `json:"statistics"`
	Meta              PageMeta      `json:"meta"`
}

// PageLoader runs the load pipeline once per render.
type PageLoader struct {
	service      *CVService
	logger       *slog.Logger
	featuredOnly bool
}

// NewPageLoader builds a loader; featuredOnly restricts the projects to the
// featured ones.
func NewPageLoader(service *CVService, logger *slog.Logger, featuredOnly bool) *PageLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageLoader{service: service, logger: logger, featuredOnly: featuredOnly}
}

// Load aggregates the CV, its statistics and completeness. Any failure is
// logged with its cause and reported as ErrPortfolioUnavailable.
func (l *PageLoader) Load(ctx context.Context) (*PageData, error) {
	var (
		cv  *model.CVData
		err error
	)
	if l.featuredOnly {
		cv, err = l.service.CVWithFeaturedProjects(ctx)
	} else {
		cv, err = l.service.CompleteCV(ctx)
	}
	if err != nil {
		l.logger.Error("loading portfolio failed", "error", err)
		return nil, ErrPortfolioUnavailable
	}

	// experience is never filtered; statistics count every project
	now := l.service.now()
	years := yearsSince(cv.Experience, now)
	stats := StatisticsFor(cv, now)
	if l.featuredOnly {
		all, err := l.service.repo.AllProjects(ctx)
		if err != nil {
			l.logger.Error("loading portfolio failed", "error", err)
			return nil, ErrPortfolioUnavailable
		}
		full := *cv
		full.Projects = all
		stats = StatisticsFor(&full, now)
	}

	completeness := l.service.PortfolioCompleteness(ctx)
	if !completeness.Complete {
		l.logger.Warn("portfolio incomplete", "missing", completeness.Missing)
	}

	return &PageData{
		CVData:            cv,
		YearsOfExperience: years,
		Statistics:        stats,
		Meta: PageMeta{
			PortfolioComplete: completeness.Complete,
			MissingSections:   completeness.Missing,
		},
	}, nil
}
