package model

// Section names one logical category of CV data backed by one document.
type Section string

const (
	SectionPersonal     Section = "personal"
	SectionSocials      Section = "socials"
	SectionAbout        Section = "about"
	SectionExperience   Section = "experience"
	SectionProjects     Section = "projects"
	SectionSkills       Section = "skills"
	SectionEducation    Section = "education"
	SectionAchievements Section = "achievements"
	SectionContact      Section = "contact"
)

// Sections lists every section in load order.
var Sections = []Section{
	SectionPersonal,
	SectionSocials,
	SectionAbout,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionEducation,
	SectionAchievements,
	SectionContact,
}

// FileName is the data file backing the section.
func (s Section) FileName() string { return string(s) + ".json" }

// IsValid reports whether s is one of the known sections.
func (s Section) IsValid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSection maps a section name to its Section.
func ParseSection(name string) (Section, bool) {
	s := Section(name)
	return s, s.IsValid()
}
