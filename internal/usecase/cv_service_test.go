package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

func newTestService(repo *fakeRepo) *CVService {
	return NewCVService(repo, func() time.Time { return fixedNow })
}

func TestCompleteCV(t *testing.T) {
	svc := newTestService(sampleRepo())
	cv, err := svc.CompleteCV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", cv.Personal.Name)
	assert.Equal(t, "Engineer who ships.", cv.Summary)
	assert.Len(t, cv.Projects, 2)
	assert.Len(t, cv.Experience, 3)

	featured, err := svc.CVWithFeaturedProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, featured.Projects, 1)
	assert.Equal(t, "gov", featured.Projects[0].ID)
}

func TestCompleteCV_PropagatesSectionError(t *testing.T) {
	repo := sampleRepo()
	repo.errs = map[model.Section]error{model.SectionEducation: errBroken}
	_, err := newTestService(repo).CompleteCV(context.Background())
	assert.True(t, errors.Is(err, errBroken))
}

func TestYearsOfExperience(t *testing.T) {
	cases := []struct {
		name  string
		start []string
		want  int
	}{
		{"empty", nil, 0},
		{"exactly 24 months", []string{"October 2024"}, 2},
		{"23 months", []string{"November 2024"}, 1},
		{"earliest wins", []string{"January 2022", "March 2016"}, 10},
		{"unparseable skipped", []string{"someday", "October 2025"}, 1},
		{"future start", []string{"January 2030"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := sampleRepo()
			repo.cv.Experience = nil
			for i, s := range tc.start {
				repo.cv.Experience = append(repo.cv.Experience, model.Experience{ID: string(rune('a' + i)), StartDate: s})
			}
			got, err := newTestService(repo).YearsOfExperience(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0 months", FormatDuration(0))
	assert.Equal(t, "1 month", FormatDuration(1))
	assert.Equal(t, "11 months", FormatDuration(11))
	assert.Equal(t, "1 year", FormatDuration(12))
	assert.Equal(t, "1 year, 2 months", FormatDuration(14))
	assert.Equal(t, "2 years", FormatDuration(24))
	assert.Equal(t, "2 years, 1 month", FormatDuration(25))
	assert.Equal(t, "0 months", FormatDuration(-3))
}

func TestExperienceDuration(t *testing.T) {
	repo := sampleRepo()
	repo.cv.Experience = append(repo.cv.Experience,
		model.Experience{ID: "inverted", StartDate: "May 2020", EndDate: strPtr("January 2020")},
		model.Experience{ID: "bad-end", StartDate: "October 2025", EndDate: strPtr("later")},
	)
	svc := newTestService(repo)
	ctx := context.Background()

	d, ok, err := svc.ExperienceDuration(ctx, "mid")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2 years, 11 months", d)

	d, ok, err = svc.ExperienceDuration(ctx, "now")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "5 years, 4 months", d)

	d, _, _ = svc.ExperienceDuration(ctx, "inverted")
	assert.Equal(t, "0 months", d)

	d, _, _ = svc.ExperienceDuration(ctx, "bad-end")
	assert.Equal(t, "1 year", d)

	d, ok, err = svc.ExperienceDuration(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, d)
}

func TestTechnologyUsageStats(t *testing.T) {
	repo := sampleRepo()
	repo.cv.Experience = []model.Experience{{ID: "a", Technologies: []string{"Go"}}}
	repo.cv.Projects = []model.Project{{ID: "p", TechStack: []string{"Go", "Rust"}}}

	stats, err := newTestService(repo).TechnologyUsageStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Go": 2, "Rust": 1}, stats)
}

func TestTechnologyUsageStats_CaseSensitive(t *testing.T) {
	got := techUsage([]model.Experience{{Technologies: []string{"go", "Go"}}}, nil)
	assert.Equal(t, map[string]int{"go": 1, "Go": 1}, got)
}

func TestTopTechnologies(t *testing.T) {
	svc := newTestService(sampleRepo())
	ctx := context.Background()

	top, err := svc.TopTechnologies(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []TechCount{{Name: "Go", Count: 3}, {Name: "Java", Count: 1}}, top)

	all, err := svc.TopTechnologies(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "TypeScript", all[4].Name)
}

func TestRankTechnologies_DefaultLimit(t *testing.T) {
	counts := map[string]int{}
	for i := 0; i < 15; i++ {
		counts[string(rune('A'+i))] = i
	}
	ranked := rankTechnologies(counts, -1)
	require.Len(t, ranked, DefaultTopTechnologies)
	assert.Equal(t, "O", ranked[0].Name)
}

func TestSearchProjects(t *testing.T) {
	svc := newTestService(sampleRepo())
	ctx := context.Background()

	ids := func(ps []model.Project) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	got, err := svc.SearchProjects(ctx, "ai")
	require.NoError(t, err)
	assert.Equal(t, []string{"gov", "shop"}, ids(got))

	got, _ = svc.SearchProjects(ctx, "CHECKOUT")
	assert.Equal(t, []string{"shop"}, ids(got))

	got, _ = svc.SearchProjects(ctx, "postgres")
	assert.Equal(t, []string{"gov"}, ids(got))

	got, _ = svc.SearchProjects(ctx, "kubernetes")
	assert.Empty(t, got)
}

func TestStatistics(t *testing.T) {
	st, err := newTestService(sampleRepo()).Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Statistics{
		YearsOfExperience: 10,
		TotalProjects:     2,
		FeaturedProjects:  1,
		Companies:         2,
		SkillCategories:   2,
		TotalSkills:       3,
		Achievements:      1,
		Education:         1,
	}, st)
}

func TestPortfolioCompleteness(t *testing.T) {
	ctx := context.Background()

	res := newTestService(sampleRepo()).PortfolioCompleteness(ctx)
	assert.True(t, res.Complete)
	assert.Empty(t, res.Missing)

	repo := sampleRepo()
	repo.cv.Personal.Title = ""
	repo.cv.Skills = model.Skills{}
	repo.errs = map[model.Section]error{model.SectionExperience: errBroken}

	res = newTestService(repo).PortfolioCompleteness(ctx)
	assert.False(t, res.Complete)
	assert.Equal(t, []string{"personal", "experience", "skills"}, res.Missing)
	assert.Equal(t, errBroken.Error(), res.Errors["experience"])
}

func TestClearCache(t *testing.T) {
	repo := sampleRepo()
	newTestService(repo).ClearCache()
	assert.Equal(t, 1, repo.cleared)
}
