package settings

import (
	"strings"

	"github.com/five82/deck/internal/prefs"
)

// Preset is a named color scheme.
type Preset struct {
	Name      string
	Theme     string
	Primary   string
	Secondary string
	Accent    string
}

// Presets are offered on the theme tab.
var Presets = []Preset{
	{Name: "Lavender", Theme: "light", Primary: "#667eea", Secondary: "#764ba2", Accent: "#eacd66"},
	{Name: "Ocean", Theme: "light", Primary: "#2193b0", Secondary: "#6dd5ed", Accent: "#f7971e"},
	{Name: "Sunset", Theme: "light", Primary: "#ff7e5f", Secondary: "#feb47b", Accent: "#6a82fb"},
	{Name: "Forest", Theme: "light", Primary: "#11998e", Secondary: "#38ef7d", Accent: "#f9d423"},
	{Name: "Rose", Theme: "light", Primary: "#ee9ca7", Secondary: "#ffdde1", Accent: "#7f7fd5"},
	{Name: "Spotify", Theme: "dark", Primary: "#1db954", Secondary: "#191414", Accent: "#1ed760"},
	{Name: "Midnight", Theme: "dark", Primary: "#232526", Secondary: "#414345", Accent: "#667eea"},
	{Name: "Nebula", Theme: "dark", Primary: "#4a00e0", Secondary: "#8e2de2", Accent: "#eacd66"},
	{Name: "Ember", Theme: "dark", Primary: "#cb2d3e", Secondary: "#ef473a", Accent: "#ffd200"},
	{Name: "Deep Sea", Theme: "dark", Primary: "#0f2027", Secondary: "#2c5364", Accent: "#00d2ff"},
}

// Apply copies the preset's mode and colors into p.
func (ps Preset) Apply(p prefs.Prefs) prefs.Prefs {
	p.Theme = ps.Theme
	p.PrimaryColor = ps.Primary
	p.SecondaryColor = ps.Secondary
	p.AccentColor = ps.Accent
	return p
}

// Matches reports whether p currently uses this preset. The accent is not
// compared, so a tweaked accent still highlights its preset.
func (ps Preset) Matches(p prefs.Prefs) bool {
	return ps.Theme == p.Theme &&
		strings.EqualFold(ps.Primary, p.PrimaryColor) &&
		strings.EqualFold(ps.Secondary, p.SecondaryColor)
}

// ActivePreset returns the index of the preset p uses, or -1.
func ActivePreset(p prefs.Prefs) int {
	for i, ps := range Presets {
		if ps.Matches(p) {
			return i
		}
	}
	return -1
}

// ToggleMode flips between light and dark.
func ToggleMode(p prefs.Prefs) prefs.Prefs {
	if p.Theme == "dark" {
		p.Theme = "light"
	} else {
		p.Theme = "dark"
	}
	return p
}
