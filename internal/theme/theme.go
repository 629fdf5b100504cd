package theme

import "strings"

// Preference is what the visitor chose. System defers to the platform.
type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system"
)

// Resolved is the theme actually applied: light or dark.
type Resolved string

const (
	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

const (
	// CookieName is where the preference is persisted.
	CookieName = "theme"
	// HintHeader is the client hint carrying the platform color scheme.
	HintHeader = "Sec-CH-Prefers-Color-Scheme"
)

// ParsePreference accepts light, dark or system; anything else is rejected.
func ParsePreference(s string) (Preference, bool) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(s))); p {
	case Light, Dark, System:
		return p, true
	}
	return "", false
}

// Stored turns a persisted value into a preference, defaulting to System.
func Stored(s string) Preference {
	if p, ok := ParsePreference(s); ok {
		return p
	}
	return System
}

// PlatformScheme reads the client hint. Unknown values mean light.
func PlatformScheme(hint string) Resolved {
	if strings.EqualFold(strings.Trim(strings.TrimSpace(hint), `"`), "dark") {
		return ResolvedDark
	}
	return ResolvedLight
}

// Resolve applies a preference against the platform scheme.
func Resolve(p Preference, platform Resolved) Resolved {
	switch p {
	case Light:
		return ResolvedLight
	case Dark:
		return ResolvedDark
	}
	return platform
}

// Toggle flips the resolved theme into an explicit preference.
func Toggle(current Resolved) Preference {
	if current == ResolvedDark {
		return Light
	}
	return Dark
}

// Palette holds the design tokens of one resolved theme.
type Palette struct {
	BgPrimary       string `json:"bgPrimary"`
	BgSecondary     string `json:"bgSecondary"`
	TextPrimary     string `json:"textPrimary"`
	TextSecondary   string `json:"textSecondary"`
	Accent          string `json:"accent"`
	AccentSecondary string `json:"accentSecondary"`
	Border          string `json:"border"`
}

var palettes = map[Resolved]Palette{
	ResolvedLight: {
		BgPrimary:       "#f2f2f7",
		BgSecondary:     "#e5e5ea",
		TextPrimary:     "#1c1c1e",
		TextSecondary:   "#8e8e93",
		Accent:          "#a64b35",
		AccentSecondary: "#88b04b",
		Border:          "#e5e5ea",
	},
	ResolvedDark: {
		BgPrimary:       "#08080a",
		BgSecondary:     "#141418",
		TextPrimary:     "#ffffff",
		TextSecondary:   "#8e8e93",
		Accent:          "#e27d60",
		AccentSecondary: "#ffb347",
		Border:          "#1c1c1e",
	},
}

// PaletteFor returns the colors of r; unknown values get the light palette.
func PaletteFor(r Resolved) Palette {
	if p, ok := palettes[r]; ok {
		return p
	}
	return palettes[ResolvedLight]
}

// MetaColor is the theme-color meta value for mobile browser chrome.
func MetaColor(r Resolved) string {
	if r == ResolvedDark {
		return "#08080A"
	}
	return "#F2F2F7"
}

// State is what templates and the theme endpoint need.
type State struct {
	Preference Preference `json:"preference"`
	Resolved   Resolved   `json:"resolved"`
	MetaColor  string     `json:"metaColor"`
	Palette    Palette    `json:"palette"`
}

// For builds the state from a stored cookie value and the client hint.
func For(stored, hint string) State {
	p := Stored(stored)
	r := Resolve(p, PlatformScheme(hint))
	return State{Preference: p, Resolved: r, MetaColor: MetaColor(r), Palette: PaletteFor(r)}
}

// HTMLClass is the class put on the root element, "dark" or empty.
func (s State) HTMLClass() string {
	if s.Resolved == ResolvedDark {
		return "dark"
	}
	return ""
}
