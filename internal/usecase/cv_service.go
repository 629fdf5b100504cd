package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"portfolio/internal/model"
)

// CVRepo is the read side the service composes. *repository.CVRepo implements it.
type CVRepo interface {
	PersonalInfo(ctx context.Context) (model.PersonalInfo, error)
	SocialLinks(ctx context.Context) (model.SocialLinks, error)
	About(ctx context.Context) (model.About, error)
	AllExperience(ctx context.Context) ([]model.Experience, error)
	ExperienceByID(ctx context.Context, id string) (*model.Experience, error)
	CurrentExperience(ctx context.Context) (*model.Experience, error)
	AllProjects(ctx context.Context) ([]model.Project, error)
	FeaturedProjects(ctx context.Context) ([]model.Project, error)
	ProjectByID(ctx context.Context, id string) (*model.Project, error)
	ProjectsByTag(ctx context.Context, tag string) ([]model.Project, error)
	Skills(ctx context.Context) (model.Skills, error)
	AllEducation(ctx context.Context) ([]model.Education, error)
	AllAchievements(ctx context.Context) ([]model.Achievement, error)
	ContactInfo(ctx context.Context) (model.Contact, error)
	ClearCache()
}

// DefaultTopTechnologies is used when TopTechnologies gets a non-positive limit.
const DefaultTopTechnologies = 10

// CVService aggregates the repository sections and derives analytics from them.
type CVService struct {
	repo CVRepo
	now  func() time.Time
}

func NewCVService(repo CVRepo, now func() time.Time) *CVService {
	if now == nil {
		now = time.Now
	}
	return &CVService{repo: repo, now: now}
}

// Repo exposes the underlying repository for handlers that need the derived getters.
func (s *CVService) Repo() CVRepo { return s.repo }

// CompleteCV composes every section into one aggregate.
func (s *CVService) CompleteCV(ctx context.Context) (*model.CVData, error) {
	projects, err := s.repo.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, projects)
}

// CVWithFeaturedProjects is CompleteCV with only featured projects.
func (s *CVService) CVWithFeaturedProjects(ctx context.Context) (*model.CVData, error) {
	projects, err := s.repo.FeaturedProjects(ctx)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, projects)
}

func (s *CVService) assemble(ctx context.Context, projects []model.Project) (*model.CVData, error) {
	personal, err := s.repo.PersonalInfo(ctx)
	if err != nil {
		return nil, err
	}
	socials, err := s.repo.SocialLinks(ctx)
	if err != nil {
		return nil, err
	}
	about, err := s.repo.About(ctx)
	if err != nil {
		return nil, err
	}
	experience, err := s.repo.AllExperience(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := s.repo.Skills(ctx)
	if err != nil {
		return nil, err
	}
	education, err := s.repo.AllEducation(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := s.repo.AllAchievements(ctx)
	if err != nil {
		return nil, err
	}
	return &model.CVData{
		Personal:     personal,
		Socials:      socials,
		Summary:      about.Summary,
		Experience:   experience,
		Projects:     projects,
		Skills:       skills,
		Education:    education,
		Achievements: achievements,
	}, nil
}

// YearsOfExperience counts whole years since the earliest start date.
func (s *CVService) YearsOfExperience(ctx context.Context) (int, error) {
	exps, err := s.repo.AllExperience(ctx)
	if err != nil {
		return 0, err
	}
	return yearsSince(exps, s.now()), nil
}

func yearsSince(exps []model.Experience, now time.Time) int {
	var earliest time.Time
	for _, e := range exps {
		t, err := model.ParseMonthYear(e.StartDate)
		if err != nil {
			continue
		}
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	if earliest.IsZero() {
		return 0
	}
	years := now.Year() - earliest.Year()
	if now.Month() < earliest.Month() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// ExperienceDuration formats the length of the role with id. ok is false for
// unknown ids.
func (s *CVService) ExperienceDuration(ctx context.Context, id string) (string, bool, error) {
	exp, err := s.repo.ExperienceByID(ctx, id)
	if err != nil {
		return "", false, err
	}
	if exp == nil {
		return "", false, nil
	}
	return FormatDuration(durationMonths(*exp, s.now())), true, nil
}

func durationMonths(e model.Experience, now time.Time) int {
	start, err := model.ParseMonthYear(e.StartDate)
	if err != nil {
		return 0
	}
	end := now
	if !e.Current && e.EndDate != nil {
		if t, err := model.ParseMonthYear(*e.EndDate); err == nil {
			end = t
		}
	}
	months := model.MonthsBetween(start, end)
	if months < 0 {
		return 0
	}
	return months
}

// FormatDuration renders a month count as "N months", "N years" or
// "N years, M months" with singular forms where needed.
func FormatDuration(months int) string {
	if months < 0 {
		months = 0
	}
	years, rest := months/12, months%12
	switch {
	case years == 0:
		return plural(rest, "month")
	case rest == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + ", " + plural(rest, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// TechnologyUsageStats counts each technology across experience and projects.
// Names are compared as-is.
func (s *CVService) TechnologyUsageStats(ctx context.Context) (map[string]int, error) {
	exps, err := s.repo.AllExperience(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.repo.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	return techUsage(exps, projects), nil
}

func techUsage(exps []model.Experience, projects []model.Project) map[string]int {
	counts := map[string]int{}
	for _, e := range exps {
		for _, t := range e.Technologies {
			counts[t]++
		}
	}
	for _, p := range projects {
		for _, t := range p.TechStack {
			counts[t]++
		}
	}
	return counts
}

// TechCount is one entry of the TopTechnologies ranking.
type TechCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TopTechnologies ranks technologies by usage, ties by name.
func (s *CVService) TopTechnologies(ctx context.Context, limit int) ([]TechCount, error) {
	counts, err := s.TechnologyUsageStats(ctx)
	if err != nil {
		return nil, err
	}
	return rankTechnologies(counts, limit), nil
}

func rankTechnologies(counts map[string]int, limit int) []TechCount {
	if limit <= 0 {
		limit = DefaultTopTechnologies
	}
	out := make([]TechCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, TechCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SearchProjects returns projects whose title, description, highlights or
// tech stack contain keyword, ignoring case.
func (s *CVService) SearchProjects(ctx context.Context, keyword string) ([]model.Project, error) {
	projects, err := s.repo.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(keyword)
	out := []model.Project{}
	for _, p := range projects {
		if projectMatches(p, needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func projectMatches(p model.Project, needle string) bool {
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }
	if contains(p.Title) || contains(p.Description) {
		return true
	}
	for _, h := range p.Highlights {
		if contains(h) {
			return true
		}
	}
	for _, t := range p.TechStack {
		if contains(t) {
			return true
		}
	}
	return false
}

// ClearCache forwards to the repository.
func (s *CVService) ClearCache() { s.repo.ClearCache() }
