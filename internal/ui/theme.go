package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/deck/internal/prefs"
)

// Theme defines colors and styles for the UI. The base palette follows the
// light/dark mode and the brand colors come from the user's preferences.
type Theme struct {
	Mode string

	// Base colors
	Background string
	Surface    string
	SurfaceAlt string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Success string
	Warning string
	Danger  string

	// Brand colors from prefs
	Primary   string
	Secondary string
	Accent    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		PrimaryText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),

		ProgressFill: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		ProgressEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	PrimaryText lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header      lipgloss.Style
	Footer      lipgloss.Style
	Selected    lipgloss.Style
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	Modal       lipgloss.Style

	ProgressFill  lipgloss.Style
	ProgressEmpty lipgloss.Style
}

// ThemeFromPrefs builds the theme for the saved mode and colors.
func ThemeFromPrefs(p prefs.Prefs) Theme {
	t := lightTheme()
	if strings.EqualFold(p.Theme, "dark") {
		t = darkTheme()
	}
	t.Primary = colorOr(p.PrimaryColor, t.Primary)
	t.Secondary = colorOr(p.SecondaryColor, t.Secondary)
	t.Accent = colorOr(p.AccentColor, t.Accent)
	t.BorderFocus = t.Primary
	t.SelectionBg = t.Primary
	return t
}

func colorOr(value, fallback string) string {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") || (len(value) != 4 && len(value) != 7) {
		return fallback
	}
	return value
}

func lightTheme() Theme {
	// Tailwind slate on white
	return Theme{
		Mode: "light",

		Background: "#ffffff",
		Surface:    "#f1f5f9", // slate-100
		SurfaceAlt: "#e2e8f0", // slate-200

		SelectionBg:   "#667eea",
		SelectionText: "#ffffff",

		Border:      "#cbd5e1", // slate-300
		BorderFocus: "#667eea",

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#94a3b8", // slate-400
		Success: "#16a34a", // green-600
		Warning: "#d97706", // amber-600
		Danger:  "#dc2626", // red-600

		Primary:   "#667eea",
		Secondary: "#764ba2",
		Accent:    "#eacd66",
	}
}

func darkTheme() Theme {
	// Tailwind slate
	return Theme{
		Mode: "dark",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		SelectionBg:   "#667eea",
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#667eea",

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500

		Primary:   "#667eea",
		Secondary: "#764ba2",
		Accent:    "#eacd66",
	}
}
