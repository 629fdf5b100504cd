package model

// Go models that match the section schemas under schema/ used for validation and rendering.

type Location struct {
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Country string `json:"country"`
}

type ContactDetails struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PersonalInfo struct {
	Name     string         `json:"name"`
	Title    string         `json:"title"`
	Tagline  string         `json:"tagline"`
	Bio      string         `json:"bio"`
	Location Location       `json:"location"`
	Contact  ContactDetails `json:"contact"`
}

type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	YouTube  string `json:"youtube,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Map returns the links that are set, keyed by platform name.
func (s SocialLinks) Map() map[string]string {
	out := map[string]string{}
	for k, v := range map[string]string{
		"linkedin": s.LinkedIn,
		"github":   s.GitHub,
		"youtube":  s.YouTube,
		"twitter":  s.Twitter,
		"website":  s.Website,
	} {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Period renders the start/end range the way the book and printable CV show it.
func (e Experience) Period() string {
	if e.Current || e.EndDate == nil || *e.EndDate == "" {
		return e.StartDate + " - Present"
	}
	return e.StartDate + " - " + *e.EndDate
}

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Company     string   `json:"company,omitempty"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Highlights  []string `json:"highlights"`
	Impact      []string `json:"impact,omitempty"`
	Featured    bool     `json:"featured"`
	Image       string   `json:"image,omitempty"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	GitHubURL   string   `json:"githubUrl,omitempty"`
	Tags        []string `json:"tags"`
}

type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Year        string `json:"year"`
	Grade       string `json:"grade,omitempty"`
	Description string `json:"description,omitempty"`
}

type Achievement struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Year         *string `json:"year,omitempty"`
	Organization string  `json:"organization,omitempty"`
	Category     string  `json:"category,omitempty"`
}

// Skills maps a category name to the skills listed under it.
type Skills map[string][]string

// Count returns the number of skills across all categories.
func (s Skills) Count() int {
	n := 0
	for _, list := range s {
		n += len(list)
	}
	return n
}

type About struct {
	Summary string `json:"summary"`
	Bio     string `json:"bio,omitempty"`
}

type Contact struct {
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Location         string `json:"location,omitempty"`
	Availability     string `json:"availability,omitempty"`
	PreferredContact string `json:"preferredContact,omitempty"`
}

// CVData is the aggregate consumed by the book mapper and the templates.
type CVData struct {
	Personal     PersonalInfo  `json:"personal"`
	Socials      SocialLinks   `json:"socials"`
	Summary      string        `json:"summary"`
	Experience   []Experience  `json:"experience"`
	Projects     []Project     `json:"projects"`
	Skills       Skills        `json:"skills"`
	Education    []Education   `json:"education"`
	Achievements []Achievement `json:"achievements"`
}
