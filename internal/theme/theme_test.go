package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePreference(t *testing.T) {
	p, ok := ParsePreference(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, Dark, p)

	_, ok = ParsePreference("sepia")
	assert.False(t, ok)

	assert.Equal(t, System, Stored(""))
	assert.Equal(t, System, Stored("sepia"))
	assert.Equal(t, Light, Stored("light"))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, ResolvedDark, Resolve(System, ResolvedDark))
	assert.Equal(t, ResolvedLight, Resolve(System, ResolvedLight))
	assert.Equal(t, ResolvedLight, Resolve(Light, ResolvedDark))
	assert.Equal(t, ResolvedDark, Resolve(Dark, ResolvedLight))
}

func TestPlatformScheme(t *testing.T) {
	assert.Equal(t, ResolvedDark, PlatformScheme(`"dark"`))
	assert.Equal(t, ResolvedDark, PlatformScheme("dark"))
	assert.Equal(t, ResolvedLight, PlatformScheme(""))
	assert.Equal(t, ResolvedLight, PlatformScheme("light"))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Toggle(ResolvedLight))
	assert.Equal(t, Light, Toggle(ResolvedDark))
}

func TestFor(t *testing.T) {
	s := For("", `"dark"`)
	assert.Equal(t, System, s.Preference)
	assert.Equal(t, ResolvedDark, s.Resolved)
	assert.Equal(t, "#08080A", s.MetaColor)
	assert.Equal(t, "#e27d60", s.Palette.Accent)
	assert.Equal(t, "dark", s.HTMLClass())

	s = For("light", `"dark"`)
	assert.Equal(t, ResolvedLight, s.Resolved)
	assert.Equal(t, "#F2F2F7", s.MetaColor)
	assert.Equal(t, "#f2f2f7", s.Palette.BgPrimary)
	assert.Empty(t, s.HTMLClass())
}

func TestPaletteFor_Unknown(t *testing.T) {
	assert.Equal(t, PaletteFor(ResolvedLight), PaletteFor("sepia"))
}
