// Package web holds the embedded HTML templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strings"

	"portfolio/internal/book"
	"portfolio/internal/model"
	"portfolio/internal/theme"
	"portfolio/internal/usecase"

	"golang.org/x/net/publicsuffix"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names.
const (
	BookTemplate  = "book.html"
	ErrorTemplate = "error.html"
	CVTemplate    = "cv.html"
)

// BookView is the data of the book page.
type BookView struct {
	Cover    book.Cover
	Pages    []book.Page
	Chapters []book.Chapter
	Theme    theme.State
	Data     *usecase.PageData
	// Static marks a prerendered page with no server behind it: the theme
	// switch stays client side and the PDF link only shows when PDF is set.
	Static bool
	PDF    bool
}

// ErrorView is the data of the error page.
type ErrorView struct {
	Status  int
	Message string
	Theme   theme.State
}

var funcs = template.FuncMap{
	"linkLabel": LinkLabel,
	"join":      strings.Join,
	"inc":       func(n int) int { return n + 1 },
	"platform":  platformName,
	"period":    func(e model.Experience) string { return e.Period() },
	"palette":   func(name string) theme.Palette { return theme.PaletteFor(theme.Resolved(name)) },
	"metaColor": func(name string) string { return theme.MetaColor(theme.Resolved(name)) },
}

// Templates parses every embedded template.
func Templates() (*template.Template, error) {
	tpl, err := template.New("web").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tpl, nil
}

// Static serves the files under static/ (css, js).
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return sub
}

// PrintStylesheet is inlined into the printable CV before PDF rendering.
func PrintStylesheet() (string, error) {
	b, err := fs.ReadFile(staticFS, "static/print.css")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// RenderBook writes the full book page to w.
func RenderBook(tpl *template.Template, w io.Writer, view BookView) error {
	return tpl.ExecuteTemplate(w, BookTemplate, view)
}

// LinkLabel shortens a URL to a tidy label such as "github.com/jane" for
// display next to links. Unparseable input is returned unchanged.
func LinkLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	host := parsed.Hostname()
	label := strings.TrimPrefix(host, "www.")
	// attempt eTLD+1 extraction so subdomains like "uk.linkedin.com" read well
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		label = etld
	}
	if path := strings.Trim(parsed.Path, "/"); path != "" {
		label += "/" + path
	}
	return label
}

var platformNames = map[string]string{
	"linkedin": "LinkedIn",
	"github":   "GitHub",
	"youtube":  "YouTube",
	"twitter":  "Twitter",
	"website":  "Website",
}

func platformName(key string) string {
	if n, ok := platformNames[key]; ok {
		return n
	}
	return key
}
