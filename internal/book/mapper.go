package book

import (
	"fmt"
	"strings"

	"portfolio/internal/model"
)

var chapterWords = []string{"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

func chapterLabel(n int) string {
	if n >= 0 && n < len(chapterWords) {
		return "Chapter " + chapterWords[n]
	}
	return fmt.Sprintf("Chapter %d", n)
}

// builder hands out page numbers from a single counter.
type builder struct {
	pages    []Page
	chapters []Chapter
}

func (b *builder) next() int { return len(b.pages) }

func (b *builder) add(id, title string, c Content) {
	b.pages = append(b.pages, Page{ID: id, Number: b.next(), Title: title, Content: c})
}

// alignTo inserts a blank page when the next page would land on the wrong side.
func (b *builder) alignTo(side Side) {
	if SideOf(b.next()) != side {
		n := b.next()
		b.add(fmt.Sprintf("blank-%d", n), "", Blank{})
	}
}

// chapter starts a chapter with its title page on the right.
func (b *builder) chapter(number int, title, subtitle string) {
	b.alignTo(Right)
	b.chapters = append(b.chapters, Chapter{Number: number, Title: title, PageNumber: b.next()})
	b.add(fmt.Sprintf("chapter-%d-title", number), chapterLabel(number), ChapterTitle{
		Number:   number,
		Title:    title,
		Subtitle: subtitle,
	})
}

// OneLiner is the first sentence of a description, always ending in a period.
func OneLiner(description string) string {
	first, _, _ := strings.Cut(description, ".")
	return first + "."
}

// Map lays the CV out as a book: a table of contents spread, then seven
// chapters whose title pages are always on the right. Each project gets a
// two-page spread starting on a left page. Blank pages are inserted where
// needed to keep those alignments.
func Map(cv *model.CVData, yearsOfExperience int) []Page {
	b := &builder{}

	// filled once every chapter is known
	b.add("toc-left", "Table of Contents", TOC{})
	b.add("toc-right", "Table of Contents", TOC{})

	b.chapter(1, "About Me", "My Journey & Expertise")
	b.add("about", "About Me", About{
		Bio:               cv.Personal.Bio,
		Location:          cv.Personal.Location.City + ", " + cv.Personal.Location.Country,
		YearsOfExperience: yearsOfExperience,
	})

	b.chapter(2, "Professional Experience", fmt.Sprintf("%d+ Years of Building Software", yearsOfExperience))
	items := make([]ExperienceItem, 0, len(cv.Experience))
	for _, e := range cv.Experience {
		items = append(items, ExperienceItem{
			Title:        e.Title,
			Company:      e.Company,
			Duration:     e.Period(),
			Technologies: e.Technologies,
			Description:  e.Description,
		})
	}
	b.add("experience", "Professional Experience", Experience{Items: items})

	b.chapter(3, "Featured Projects", projectsSubtitle(len(cv.Projects)))
	summaries := make([]ProjectSummary, 0, len(cv.Projects))
	for _, p := range cv.Projects {
		summaries = append(summaries, ProjectSummary{ID: p.ID, Title: p.Title, OneLiner: OneLiner(p.Description), Tags: p.Tags})
	}
	b.add("projects-overview", "Projects Overview", ProjectsIntro{
		Intro:    "A showcase of my most impactful work.",
		Projects: summaries,
	})
	for i, p := range cv.Projects {
		b.alignTo(Left)
		b.add("project-"+p.ID+"-left", p.Title, ProjectSpreadLeft{
			Title:         p.Title,
			Subtitle:      p.Subtitle,
			Company:       p.Company,
			Duration:      p.Duration,
			OneLiner:      OneLiner(p.Description),
			Featured:      p.Featured,
			Tags:          p.Tags,
			Image:         p.Image,
			ProjectNumber: i + 1,
			TotalProjects: len(cv.Projects),
		})
		b.add("project-"+p.ID+"-right", p.Title, ProjectSpreadRight{
			Description: p.Description,
			TechStack:   p.TechStack,
			Highlights:  p.Highlights,
			Impact:      p.Impact,
			LiveURL:     p.LiveURL,
			GitHubURL:   p.GitHubURL,
		})
	}

	b.chapter(4, "Technical Skills", "Tools & Technologies I Master")
	b.add("skills", "Technical Skills", Skills{Categories: cv.Skills})

	b.chapter(5, "Education", "Academic Foundation & Certifications")
	b.add("education", "Education", Education{Items: cv.Education})
	if len(cv.Achievements) > 0 {
		b.add("achievements", "Achievements", Achievements{Items: cv.Achievements})
	}

	b.chapter(6, "Get In Touch", "Let's Build Something Amazing Together")
	b.add("contact", "Get In Touch", Contact{
		Email:   cv.Personal.Contact.Email,
		Phone:   cv.Personal.Contact.Phone,
		Socials: cv.Socials.Map(),
	})

	b.chapter(7, "Closing Thoughts", "Thank You for Reading")
	b.add("closing", "Closing Thoughts", Closing{
		Title:   "Thank You",
		Message: closingMessage(yearsOfExperience),
	})

	toc := TOC{Chapters: b.chapters}
	b.pages[0].Content = toc
	b.pages[1].Content = toc
	return b.pages
}

func projectsSubtitle(n int) string {
	if n == 1 {
		return "1 Project"
	}
	return fmt.Sprintf("%d Projects", n)
}

func closingMessage(years int) string {
	return fmt.Sprintf("Thank you for taking the time to explore my portfolio. With over %d years of experience building software, "+
		"I'm passionate about scalable, secure and maintainable systems that solve real-world problems.\n\n"+
		"I'm always happy to discuss new opportunities, collaborate on interesting projects, or simply connect with fellow engineers. "+
		"Feel free to reach out through any of the channels on the previous pages.\n\n"+
		"Let's build something amazing together!", years)
}

// CoverFor returns the cover shown before the first page.
func CoverFor(cv *model.CVData) Cover {
	return Cover{Name: cv.Personal.Name, Title: cv.Personal.Title, Tagline: cv.Personal.Tagline}
}

// Chapters returns the table of contents of pages, or nil if pages has none.
func Chapters(pages []Page) []Chapter {
	for _, p := range pages {
		if toc, ok := p.Content.(TOC); ok {
			return toc.Chapters
		}
	}
	return nil
}
