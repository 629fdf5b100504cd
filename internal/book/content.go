package book

import "portfolio/internal/model"

// Kind names a page content variant. It is the "type" tag of the JSON form.
type Kind string

const (
	KindCover              Kind = "cover"
	KindTOC                Kind = "toc"
	KindChapterTitle       Kind = "chapter-title"
	KindAbout              Kind = "about"
	KindExperience         Kind = "experience"
	KindProjectsIntro      Kind = "projects-intro"
	KindProjectSpreadLeft  Kind = "project-spread-left"
	KindProjectSpreadRight Kind = "project-spread-right"
	KindSkills             Kind = "skills"
	KindEducation          Kind = "education"
	KindAchievements       Kind = "achievements"
	KindContact            Kind = "contact"
	KindClosing            Kind = "closing"
	KindBlank              Kind = "blank"
)

// Content is the closed set of page payloads. Only types in this package
// implement it; readers switch on the concrete type or on Kind.
type Content interface {
	Kind() Kind
	content()
}

type Cover struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
}

// Chapter is one table-of-contents entry; PageNumber is its title page.
type Chapter struct {
	Number     int    `json:"number"`
	Title      string `json:"title"`
	PageNumber int    `json:"pageNumber"`
}

type TOC struct {
	Chapters []Chapter `json:"chapters"`
}

type ChapterTitle struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

type About struct {
	Bio               string `json:"bio"`
	Location          string `json:"location"`
	YearsOfExperience int    `json:"yearsOfExperience"`
}

type ExperienceItem struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Duration     string   `json:"duration"`
	Technologies []string `json:"technologies"`
	Description  string   `json:"description,omitempty"`
}

type Experience struct {
	Items []ExperienceItem `json:"items"`
}

type ProjectSummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	OneLiner string   `json:"oneLiner"`
	Tags     []string `json:"tags"`
}

type ProjectsIntro struct {
	Intro    string           `json:"intro"`
	Projects []ProjectSummary `json:"projects"`
}

// ProjectSpreadLeft is the hero half of a project spread.
type ProjectSpreadLeft struct {
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Company       string   `json:"company"`
	Duration      string   `json:"duration"`
	OneLiner      string   `json:"oneLiner"`
	Featured      bool     `json:"featured"`
	Tags          []string `json:"tags"`
	Image         string   `json:"image,omitempty"`
	ProjectNumber int      `json:"projectNumber"`
	TotalProjects int      `json:"totalProjects"`
}

// ProjectSpreadRight is the detail half of a project spread.
type ProjectSpreadRight struct {
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Highlights  []string `json:"highlights"`
	Impact      []string `json:"impact,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	GitHubURL   string   `json:"githubUrl,omitempty"`
}

type Skills struct {
	Categories model.Skills `json:"categories"`
}

type Education struct {
	Items []model.Education `json:"items"`
}

type Achievements struct {
	Items []model.Achievement `json:"items"`
}

type Contact struct {
	Email   string            `json:"email"`
	Phone   string            `json:"phone"`
	Socials map[string]string `json:"socials"`
}

type Closing struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Blank pads the sequence so spreads and chapter titles land on the right side.
type Blank struct{}

func (Cover) Kind() Kind              { return KindCover }
func (TOC) Kind() Kind                { return KindTOC }
func (ChapterTitle) Kind() Kind       { return KindChapterTitle }
func (About) Kind() Kind              { return KindAbout }
func (Experience) Kind() Kind         { return KindExperience }
func (ProjectsIntro) Kind() Kind      { return KindProjectsIntro }
func (ProjectSpreadLeft) Kind() Kind  { return KindProjectSpreadLeft }
func (ProjectSpreadRight) Kind() Kind { return KindProjectSpreadRight }
func (Skills) Kind() Kind             { return KindSkills }
func (Education) Kind() Kind          { return KindEducation }
func (Achievements) Kind() Kind       { return KindAchievements }
func (Contact) Kind() Kind            { return KindContact }
func (Closing) Kind() Kind            { return KindClosing }
func (Blank) Kind() Kind              { return KindBlank }

func (Cover) content()              {}
func (TOC) content()                {}
func (ChapterTitle) content()       {}
func (About) content()              {}
func (Experience) content()         {}
func (ProjectsIntro) content()      {}
func (ProjectSpreadLeft) content()  {}
func (ProjectSpreadRight) content() {}
func (Skills) content()             {}
func (Education) content()          {}
func (Achievements) content()       {}
func (Contact) content()            {}
func (Closing) content()            {}
func (Blank) content()              {}
