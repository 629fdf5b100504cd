package usecase

import (
	"context"
	"time"

	"portfolio/internal/model"
)

// Statistics summarises the portfolio for the statistics API and the page meta.
type Statistics struct {
	YearsOfExperience int `json:"yearsOfExperience"`
	TotalProjects     int `json:"totalProjects"`
	FeaturedProjects  int `json:"featuredProjects"`
	Companies         int `json:"companies"`
	SkillCategories   int `json:"skillCategories"`
	TotalSkills       int `json:"totalSkills"`
	Achievements      int `json:"achievements"`
	Education         int `json:"education"`
}

// Statistics computes counts over the complete CV.
func (s *CVService) Statistics(ctx context.Context) (Statistics, error) {
	cv, err := s.CompleteCV(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return StatisticsFor(cv, s.now()), nil
}

// StatisticsFor derives the statistics of an already aggregated CV.
func StatisticsFor(cv *model.CVData, now time.Time) Statistics {
	st := Statistics{
		YearsOfExperience: yearsSince(cv.Experience, now),
		TotalProjects:     len(cv.Projects),
		SkillCategories:   len(cv.Skills),
		TotalSkills:       cv.Skills.Count(),
		Achievements:      len(cv.Achievements),
		Education:         len(cv.Education),
	}
	for _, p := range cv.Projects {
		if p.Featured {
			st.FeaturedProjects++
		}
	}
	companies := map[string]struct{}{}
	for _, e := range cv.Experience {
		companies[e.Company] = struct{}{}
	}
	st.Companies = len(companies)
	return st
}

// CompletenessResult reports which required sections are missing or empty.
// Errors holds the load failure of a section, if any.
type CompletenessResult struct {
	Complete bool              `json:"isComplete"`
	Missing  []string          `json:"missingSections"`
	Errors   map[string]string `json:"errors,omitempty"`
}

func (r *CompletenessResult) miss(section model.Section, err error) {
	r.Complete = false
	r.Missing = append(r.Missing, string(section))
	if err != nil {
		r.Errors[string(section)] = err.Error()
	}
}

// PortfolioCompleteness checks personal info, experience, projects and
// skills. A section that fails to load counts as missing; the remaining
// checks still run.
func (s *CVService) PortfolioCompleteness(ctx context.Context) CompletenessResult {
	result := CompletenessResult{Complete: true, Missing: []string{}, Errors: map[string]string{}}

	if p, err := s.repo.PersonalInfo(ctx); err != nil || p.Name == "" || p.Title == "" {
		result.miss(model.SectionPersonal, err)
	}
	if exps, err := s.repo.AllExperience(ctx); err != nil || len(exps) == 0 {
		result.miss(model.SectionExperience, err)
	}
	if projects, err := s.repo.AllProjects(ctx); err != nil || len(projects) == 0 {
		result.miss(model.SectionProjects, err)
	}
	if skills, err := s.repo.Skills(ctx); err != nil || len(skills) == 0 {
		result.miss(model.SectionSkills, err)
	}
	return result
}
