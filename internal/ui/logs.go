package ui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/deck/internal/logtail"
)

const (
	logRefreshInterval = 2 * time.Second
	logTailLines       = 500
)

// logState holds the log overlay.
type logState struct {
	open    bool
	seq     int
	entries []logtail.Entry
	err     error
	follow  bool

	searchActive bool
	searchQuery  string
	searchRegex  *regexp.Regexp
	searchInput  textinput.Model
	matches      []int
	matchIdx     int

	viewport viewport.Model
}

type logsLoadedMsg struct {
	seq     int
	entries []logtail.Entry
	err     error
}

type logsTickMsg int

func newLogState() logState {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 100
	return logState{follow: true, searchInput: ti, viewport: viewport.New(0, 0)}
}

func (m Model) openLogs() (Model, tea.Cmd) {
	m.logs.open = true
	m.logs.follow = true
	m.logs.seq++
	m = m.syncLogViewport()
	return m, m.loadLogsCmd()
}

func (m Model) closeLogs() (Model, tea.Cmd) {
	m.logs.open = false
	m.logs.seq++
	m.logs.searchActive = false
	m.logs.searchInput.Blur()
	return m, nil
}

func (m Model) loadLogsCmd() tea.Cmd {
	path := m.logFile
	seq := m.logs.seq
	return func() tea.Msg {
		if path == "" {
			return logsLoadedMsg{seq: seq}
		}
		lines, err := logtail.Read(path, logTailLines)
		entries := make([]logtail.Entry, 0, len(lines))
		for _, line := range lines {
			entries = append(entries, logtail.Parse(line))
		}
		return logsLoadedMsg{seq: seq, entries: entries, err: err}
	}
}

func logsTick(seq int) tea.Cmd {
	return tea.Tick(logRefreshInterval, func(time.Time) tea.Msg {
		return logsTickMsg(seq)
	})
}

func (m Model) handleLogsLoaded(msg logsLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.logs.open || msg.seq != m.logs.seq {
		return m, nil
	}
	m.logs.entries = msg.entries
	m.logs.err = msg.err
	if msg.err != nil {
		m.logger.Debug("log tail failed", "error", msg.err)
	}
	m = m.findLogMatches()
	return m.syncLogViewport(), logsTick(msg.seq)
}

// syncLogViewport sizes the viewport to the body and re-renders its content.
func (m Model) syncLogViewport() Model {
	m.logs.viewport.Width = max(m.width-4, 0)
	m.logs.viewport.Height = max(m.bodyHeight()-3, 0)
	m.logs.viewport.SetContent(m.renderLogContent())
	if m.logs.follow {
		m.logs.viewport.GotoBottom()
	}
	return m
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.PrimaryText.Render(m.tr.T("logs.title"))
	if m.logFile != "" {
		title += styles.FaintText.Render("  " + m.logFile)
	}
	box := styles.FocusedPane.Width(m.width - 2).Render(title + "\n" + m.logs.viewport.View())
	return box + "\n" + m.renderLogStatus(styles)
}

func (m Model) renderLogStatus(styles Styles) string {
	lg := &m.logs
	if lg.searchActive {
		return styles.AccentText.Render(lg.searchInput.View())
	}
	if lg.searchRegex != nil {
		if len(lg.matches) == 0 {
			return styles.DangerText.Render(m.tr.T("logs.notFound", "query", lg.searchQuery))
		}
		return styles.AccentText.Render("/"+lg.searchQuery) +
			styles.FaintText.Render(" · ") +
			styles.WarningText.Render(fmt.Sprintf("%d/%d", lg.matchIdx+1, len(lg.matches)))
	}
	return styles.FaintText.Render(m.tr.T("logs.status",
		"lines", strconv.Itoa(len(lg.entries)),
		"follow", m.onOff(lg.follow)))
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	switch {
	case m.logFile == "":
		return styles.MutedText.Render(m.tr.T("logs.noFile"))
	case len(m.logs.entries) == 0:
		return styles.MutedText.Render(m.tr.T("logs.empty"))
	}

	active := -1
	if m.logs.matchIdx < len(m.logs.matches) {
		active = m.logs.matches[m.logs.matchIdx]
	}
	matched := make(map[int]bool, len(m.logs.matches))
	for _, i := range m.logs.matches {
		matched[i] = true
	}

	width := m.logs.viewport.Width
	lines := make([]string, len(m.logs.entries))
	for i, e := range m.logs.entries {
		number := fmt.Sprintf("%4d │ ", i+1)
		switch {
		case i == active:
			highlight := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.Warning)).
				Foreground(lipgloss.Color(m.theme.Background))
			lines[i] = highlight.Render(truncate(number+e.String(), width))
		case matched[i]:
			lines[i] = styles.AccentText.Render(truncate(number+e.String(), width))
		default:
			lines[i] = styles.FaintText.Render(number) + m.colorizeEntry(e, styles, width-lipgloss.Width(number))
		}
	}
	return strings.Join(lines, "\n")
}

// colorizeEntry renders one entry with a faint time and a colored level.
func (m Model) colorizeEntry(e logtail.Entry, styles Styles, width int) string {
	if e.Time.IsZero() && e.Level == "" {
		return styles.Text.Render(truncate(e.Message, width))
	}
	ts := ""
	if !e.Time.IsZero() {
		ts = e.Time.Local().Format("15:04:05") + " "
	}
	level := fmt.Sprintf("%-5s ", e.Level)
	rest := strings.TrimPrefix(e.String(), strings.TrimSpace(ts+level))
	rest = strings.TrimSpace(rest)
	rest = truncate(rest, width-len(ts)-len(level))
	return styles.FaintText.Render(ts) + levelStyle(e.Level, styles).Bold(true).Render(level) + styles.Text.Render(rest)
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "INFO":
		return styles.SuccessText
	case "WARN":
		return styles.WarningText
	case "ERROR":
		return styles.DangerText
	case "DEBUG":
		return styles.MutedText
	default:
		return styles.Text
	}
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logs.searchActive {
		return m.handleLogSearchInput(msg)
	}
	lg := &m.logs
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Escape):
		if lg.searchRegex != nil {
			m = m.clearLogSearch()
			return m.syncLogViewport(), nil
		}
		return m.closeLogs()
	case key.Matches(msg, m.keys.Logs):
		return m.closeLogs()
	case key.Matches(msg, m.keys.Follow):
		lg.follow = !lg.follow
		return m.syncLogViewport(), nil
	case key.Matches(msg, m.keys.Filter):
		lg.searchActive = true
		lg.searchInput.SetValue("")
		cmd := lg.searchInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.NextMatch):
		return m.stepLogMatch(1), nil
	case key.Matches(msg, m.keys.PrevMatch):
		return m.stepLogMatch(-1), nil
	case key.Matches(msg, m.keys.Top):
		lg.follow = false
		lg.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		lg.follow = true
		lg.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Up):
		lg.follow = false
		lg.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		lg.viewport.ScrollDown(1)
		lg.follow = lg.viewport.AtBottom()
	case key.Matches(msg, m.keys.PageUp):
		lg.follow = false
		lg.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		lg.viewport.HalfPageDown()
		lg.follow = lg.viewport.AtBottom()
	}
	return m, nil
}

func (m Model) handleLogSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lg := &m.logs
	switch msg.String() {
	case "esc":
		lg.searchActive = false
		lg.searchInput.Blur()
		return m, nil
	case "enter":
		query := strings.TrimSpace(lg.searchInput.Value())
		lg.searchActive = false
		lg.searchInput.Blur()
		if query == "" {
			m = m.clearLogSearch()
			return m.syncLogViewport(), nil
		}
		re, err := regexp.Compile("(?i)" + query)
		if err != nil {
			re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
		}
		lg.searchRegex = re
		lg.searchQuery = query
		lg.matchIdx = 0
		m = m.findLogMatches()
		return m.scrollToLogMatch(), nil
	}
	var cmd tea.Cmd
	lg.searchInput, cmd = lg.searchInput.Update(msg)
	return m, cmd
}

func (m Model) clearLogSearch() Model {
	m.logs.searchRegex = nil
	m.logs.searchQuery = ""
	m.logs.matches = nil
	m.logs.matchIdx = 0
	return m
}

func (m Model) findLogMatches() Model {
	m.logs.matches = nil
	if m.logs.searchRegex == nil {
		return m
	}
	for i, e := range m.logs.entries {
		if m.logs.searchRegex.MatchString(e.String()) {
			m.logs.matches = append(m.logs.matches, i)
		}
	}
	if m.logs.matchIdx >= len(m.logs.matches) {
		m.logs.matchIdx = 0
	}
	return m
}

func (m Model) stepLogMatch(step int) Model {
	n := len(m.logs.matches)
	if n == 0 {
		return m
	}
	m.logs.matchIdx = ((m.logs.matchIdx+step)%n + n) % n
	return m.scrollToLogMatch()
}

// scrollToLogMatch centers the active match and stops following.
func (m Model) scrollToLogMatch() Model {
	if len(m.logs.matches) == 0 {
		return m.syncLogViewport()
	}
	m.logs.follow = false
	m = m.syncLogViewport()
	target := m.logs.matches[m.logs.matchIdx]
	m.logs.viewport.SetYOffset(max(target-m.logs.viewport.Height/2, 0))
	return m
}
