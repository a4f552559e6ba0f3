package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/deck/internal/settings"
)

const (
	headerHeight = 2
	footerHeight = 1
)

// renderWithChrome frames body with the now-playing header and the footer.
func (m Model) renderWithChrome(body string) string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 5 {
		h = 5
	}
	return h
}

// renderHeader renders the now-playing bar: track line plus progress line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	header := styles.Header.Width(m.width)

	logo := styles.PrimaryText.Render("deck")
	sep := "  "

	if m.snapshot.IsOffline() {
		line := logo + sep + styles.DangerText.Render("● "+m.tr.T("status.offline"))
		if m.snapshot.LastError != nil {
			line += sep + styles.MutedText.Render(truncate(m.snapshot.LastError.Error(), m.width/2))
		}
		return header.Render(line + "\n")
	}

	p := m.player
	if !p.HasTrack() {
		return header.Render(logo + sep + styles.MutedText.Render(m.tr.T("panel.noMusic")) + "\n")
	}

	state := "⏸"
	if p.Playing {
		state = "▶"
	}

	right := m.renderPlayerFlags(styles)
	title := p.Title
	if p.Artist != "" {
		title += " — " + p.Artist
	}
	if p.Album != "" && m.width >= LayoutCompactWidth {
		title += " · " + p.Album
	}
	avail := m.width - 2 - lipgloss.Width(logo) - 2*len(sep) - 2 - lipgloss.Width(right)
	title = truncate(title, avail)
	pad := avail - lipgloss.Width(title)
	if pad < 0 {
		pad = 0
	}
	line1 := logo + sep + styles.AccentText.Render(state) + " " + styles.Text.Render(title) +
		strings.Repeat(" ", pad) + sep + right

	elapsed := formatTime(p.Progress)
	total := formatTime(p.Duration)
	barWidth := m.width - 2 - len(elapsed) - len(total) - 2
	line2 := styles.MutedText.Render(elapsed) + " " +
		progressBar(barWidth, p.Fraction(), styles) + " " +
		styles.MutedText.Render(total)

	return header.Render(line1 + "\n" + line2)
}

func (m Model) renderPlayerFlags(styles Styles) string {
	var parts []string
	if m.player.Shuffle {
		parts = append(parts, styles.AccentText.Render("🔀"))
	}
	vol := m.player.Volume
	parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%s %d%%", settings.VolumeLevel(vol).Glyph(), vol)))
	return strings.Join(parts, " ")
}

// renderFooter shows the current toast, or the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if t := m.renderToast(); t != "" {
		return styles.Footer.Width(m.width).Render(t)
	}
	short := translated(m.keys.ShortHelp(), m.tr.T)
	switch {
	case m.logs.open:
		short = translated([]key.Binding{m.keys.Filter, m.keys.NextMatch, m.keys.Follow, m.keys.Logs, m.keys.Quit}, m.tr.T)
	case m.settings.open:
		short = translated(m.settingsHelp(), m.tr.T)
	}
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(short))
}
