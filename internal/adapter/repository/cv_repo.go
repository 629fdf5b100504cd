package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"portfolio/internal/model"
)

// CVRepo loads, validates and caches CV sections. Returned slices and maps
// are shared with the cache and must be treated as read-only.
type CVRepo struct {
	source Source
	cache  *Cache
	logger *slog.Logger
}

func NewCVRepo(source Source, cache *Cache, logger *slog.Logger) *CVRepo {
	if cache == nil {
		cache = NewCache(0, nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CVRepo{source: source, cache: cache, logger: logger}
}

// decodeSection validates doc and returns the typed record for section.
func decodeSection(section model.Section, doc []byte) (interface{}, error) {
	switch section {
	case model.SectionPersonal:
		return model.Decode[model.PersonalInfo](section, doc)
	case model.SectionSocials:
		return model.Decode[model.SocialLinks](section, doc)
	case model.SectionAbout:
		return model.Decode[model.About](section, doc)
	case model.SectionExperience:
		exps, err := model.Decode[[]model.Experience](section, doc)
		if err != nil {
			return nil, err
		}
		sortByStartDesc(exps)
		return exps, nil
	case model.SectionProjects:
		return model.Decode[[]model.Project](section, doc)
	case model.SectionSkills:
		return model.Decode[model.Skills](section, doc)
	case model.SectionEducation:
		return model.Decode[[]model.Education](section, doc)
	case model.SectionAchievements:
		return model.Decode[[]model.Achievement](section, doc)
	case model.SectionContact:
		return model.Decode[model.Contact](section, doc)
	}
	return nil, fmt.Errorf("unknown section %q", section)
}

// sortByStartDesc orders experience newest first. Entries with equal or
// unparseable start dates keep their file order; unparseable ones go last.
func sortByStartDesc(exps []model.Experience) {
	starts := make(map[string]time.Time, len(exps))
	for _, e := range exps {
		if t, err := model.ParseMonthYear(e.StartDate); err == nil {
			starts[e.StartDate] = t
		}
	}
	sort.SliceStable(exps, func(i, j int) bool {
		ti, iok := starts[exps[i].StartDate]
		tj, jok := starts[exps[j].StartDate]
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})
}

func isNotFound(err error) bool { return errors.Is(err, ErrSectionNotFound) }

// load returns the cached section or reads, validates and caches it.
func load[T any](ctx context.Context, r *CVRepo, section model.Section) (T, error) {
	var zero T
	if v, ok := r.cache.Get(section); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	doc, err := r.source.ReadSection(ctx, section)
	if err != nil {
		r.logger.Error("section read failed", "section", section, "error", err)
		return zero, newLoadError(section, err)
	}
	v, err := decodeSection(section, doc)
	if err != nil {
		r.logger.Error("section invalid", "section", section, "error", err)
		return zero, newLoadError(section, err)
	}
	typed, ok := v.(T)
	if !ok {
		return zero, newLoadError(section, fmt.Errorf("unexpected type %T", v))
	}
	r.cache.Set(section, typed)
	r.logger.Debug("section loaded", "section", section, "bytes", len(doc))
	return typed, nil
}

// Load validates a single section and returns its typed value.
func (r *CVRepo) Load(ctx context.Context, section model.Section) (interface{}, error) {
	switch section {
	case model.SectionPersonal:
		return r.PersonalInfo(ctx)
	case model.SectionSocials:
		return r.SocialLinks(ctx)
	case model.SectionAbout:
		return r.About(ctx)
	case model.SectionExperience:
		return r.AllExperience(ctx)
	case model.SectionProjects:
		return r.AllProjects(ctx)
	case model.SectionSkills:
		return r.Skills(ctx)
	case model.SectionEducation:
		return r.AllEducation(ctx)
	case model.SectionAchievements:
		return r.AllAchievements(ctx)
	case model.SectionContact:
		return r.ContactInfo(ctx)
	}
	return nil, newLoadError(section, fmt.Errorf("unknown section %q", section))
}

func (r *CVRepo) PersonalInfo(ctx context.Context) (model.PersonalInfo, error) {
	return load[model.PersonalInfo](ctx, r, model.SectionPersonal)
}

func (r *CVRepo) SocialLinks(ctx context.Context) (model.SocialLinks, error) {
	return load[model.SocialLinks](ctx, r, model.SectionSocials)
}

func (r *CVRepo) About(ctx context.Context) (model.About, error) {
	return load[model.About](ctx, r, model.SectionAbout)
}

// AllExperience returns every role, most recent start date first.
func (r *CVRepo) AllExperience(ctx context.Context) ([]model.Experience, error) {
	return load[[]model.Experience](ctx, r, model.SectionExperience)
}

// CurrentExperience returns the first ongoing role, or nil.
func (r *CVRepo) CurrentExperience(ctx context.Context) (*model.Experience, error) {
	exps, err := r.AllExperience(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exps {
		if exps[i].Current {
			e := exps[i]
			return &e, nil
		}
	}
	return nil, nil
}

// ExperienceByID returns the role with id, or nil.
func (r *CVRepo) ExperienceByID(ctx context.Context, id string) (*model.Experience, error) {
	exps, err := r.AllExperience(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exps {
		if exps[i].ID == id {
			e := exps[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *CVRepo) AllProjects(ctx context.Context) ([]model.Project, error) {
	return load[[]model.Project](ctx, r, model.SectionProjects)
}

func (r *CVRepo) FeaturedProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := r.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Project{}
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

// ProjectByID returns the project with id, or nil.
func (r *CVRepo) ProjectByID(ctx context.Context, id string) (*model.Project, error) {
	projects, err := r.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ProjectsByTag matches tags case-insensitively and exactly.
func (r *CVRepo) ProjectsByTag(ctx context.Context, tag string) ([]model.Project, error) {
	projects, err := r.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Project{}
	for _, p := range projects {
		for _, t := range p.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *CVRepo) Skills(ctx context.Context) (model.Skills, error) {
	return load[model.Skills](ctx, r, model.SectionSkills)
}

func (r *CVRepo) AllEducation(ctx context.Context) ([]model.Education, error) {
	return load[[]model.Education](ctx, r, model.SectionEducation)
}

func (r *CVRepo) AllAchievements(ctx context.Context) ([]model.Achievement, error) {
	return load[[]model.Achievement](ctx, r, model.SectionAchievements)
}

func (r *CVRepo) ContactInfo(ctx context.Context) (model.Contact, error) {
	return load[model.Contact](ctx, r, model.SectionContact)
}

// ClearCache drops every cached section.
func (r *CVRepo) ClearCache() {
	r.cache.Clear()
	r.logger.Info("cv cache cleared")
}
