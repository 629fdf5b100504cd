package usecase

import (
	"context"
	"errors"
	"strings"

	"portfolio/internal/model"
)

// fakeRepo serves CV sections from memory. errs makes a section fail and
// reads counts section accesses.
type fakeRepo struct {
	cv      model.CVData
	about   model.About
	contact model.Contact
	errs    map[model.Section]error
	reads   map[model.Section]int
	cleared int
}

func (f *fakeRepo) fail(s model.Section) error {
	if f.reads == nil {
		f.reads = map[model.Section]int{}
	}
	f.reads[s]++
	if f.errs == nil {
		return nil
	}
	return f.errs[s]
}

func (f *fakeRepo) PersonalInfo(context.Context) (model.PersonalInfo, error) {
	return f.cv.Personal, f.fail(model.SectionPersonal)
}

func (f *fakeRepo) SocialLinks(context.Context) (model.SocialLinks, error) {
	return f.cv.Socials, f.fail(model.SectionSocials)
}

func (f *fakeRepo) About(context.Context) (model.About, error) {
	return f.about, f.fail(model.SectionAbout)
}

func (f *fakeRepo) AllExperience(context.Context) ([]model.Experience, error) {
	if err := f.fail(model.SectionExperience); err != nil {
		return nil, err
	}
	return f.cv.Experience, nil
}

func (f *fakeRepo) ExperienceByID(ctx context.Context, id string) (*model.Experience, error) {
	exps, err := f.AllExperience(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exps {
		if exps[i].ID == id {
			return &exps[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) CurrentExperience(ctx context.Context) (*model.Experience, error) {
	exps, err := f.AllExperience(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exps {
		if exps[i].Current {
			return &exps[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) AllProjects(context.Context) ([]model.Project, error) {
	if err := f.fail(model.SectionProjects); err != nil {
		return nil, err
	}
	return f.cv.Projects, nil
}

func (f *fakeRepo) FeaturedProjects(ctx context.Context) ([]model.Project, error) {
	all, err := f.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Project{}
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) ProjectByID(ctx context.Context, id string) (*model.Project, error) {
	all, err := f.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ProjectsByTag(ctx context.Context, tag string) ([]model.Project, error) {
	all, err := f.AllProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Project{}
	for _, p := range all {
		for _, t := range p.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) Skills(context.Context) (model.Skills, error) {
	if err := f.fail(model.SectionSkills); err != nil {
		return nil, err
	}
	return f.cv.Skills, nil
}

func (f *fakeRepo) AllEducation(context.Context) ([]model.Education, error) {
	return f.cv.Education, f.fail(model.SectionEducation)
}

func (f *fakeRepo) AllAchievements(context.Context) ([]model.Achievement, error) {
	return f.cv.Achievements, f.fail(model.SectionAchievements)
}

func (f *fakeRepo) ContactInfo(context.Context) (model.Contact, error) {
	return f.contact, f.fail(model.SectionContact)
}

func (f *fakeRepo) ClearCache() { f.cleared++ }

var errBroken = errors.New("broken section")

func strPtr(s string) *string { return &s }

func sampleRepo() *fakeRepo {
	return &fakeRepo{
		cv: model.CVData{
			Personal: model.PersonalInfo{Name: "Jane Doe", Title: "Staff Engineer", Tagline: "Builds things", Bio: "Bio."},
			Socials:  model.SocialLinks{GitHub: "https://github.com/jane"},
			Experience: []model.Experience{
				{ID: "now", Company: "Beta", StartDate: "June 2021", Current: true, Technologies: []string{"Go", "Rust"}},
				{ID: "mid", Company: "Acme", StartDate: "June 2018", EndDate: strPtr("May 2021"), Technologies: []string{"Go"}},
				{ID: "old", Company: "Acme", StartDate: "March 2016", EndDate: strPtr("May 2018"), Technologies: []string{"Java"}},
			},
			Projects: []model.Project{
				{ID: "gov", Title: "AI Governance Platform", Description: "Policy engine.", TechStack: []string{"Go", "Postgres"}, Featured: true, Tags: []string{"ai"}},
				{ID: "shop", Title: "Storefront", Description: "Commerce that contains ai-driven ranking.", TechStack: []string{"TypeScript"}, Highlights: []string{"Checkout"}},
			},
			Skills:       model.Skills{"Languages": {"Go", "Rust"}, "Data": {"Postgres"}},
			Education:    []model.Education{{ID: "msc", Degree: "MSc", Institution: "IST", Year: "2015"}},
			Achievements: []model.Achievement{{ID: "talk", Title: "Talk", Description: "Spoke."}},
		},
		about:   model.About{Summary: "Engineer who ships."},
		contact: model.Contact{Email: "jane@example.com"},
	}
}
