package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/deck/internal/settings"
)

// Modal is the interface for modal dialogs. Update returns the updated
// model, the modal to keep showing (nil closes it) and a command.
type Modal interface {
	Update(m Model, msg tea.KeyMsg) (Model, Modal, tea.Cmd)
	View(m Model) string
}

func (m Model) placeModal(title, body string) string {
	styles := m.theme.Styles()
	content := styles.PrimaryText.Render(title)
	if body != "" {
		content += "\n\n" + body
	}
	width := 48
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Width(width).Render(content),
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) modalHint(keys ...string) string {
	return m.theme.Styles().FaintText.Render(strings.Join(keys, "  "))
}

// messageModal shows a translated notice until any key is pressed.
type messageModal struct {
	title string
	body  string
	kv    []string
}

func (d messageModal) Update(m Model, _ tea.KeyMsg) (Model, Modal, tea.Cmd) {
	return m, nil, nil
}

func (d messageModal) View(m Model) string {
	styles := m.theme.Styles()
	body := styles.Text.Render(m.tr.T(d.body, d.kv...)) + "\n\n" + m.modalHint("enter "+m.tr.T("modal.close"))
	return m.placeModal(m.tr.T(d.title), body)
}

// confirmModal asks a yes/no question.
type confirmModal struct {
	question  string
	confirm   string
	kv        []string
	onConfirm func(Model) (Model, tea.Cmd)
}

func (d confirmModal) Update(m Model, msg tea.KeyMsg) (Model, Modal, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		next, cmd := d.onConfirm(m)
		return next, nil, cmd
	case "n", "N", "esc", "q":
		return m, nil, nil
	}
	return m, d, nil
}

func (d confirmModal) View(m Model) string {
	styles := m.theme.Styles()
	body := styles.Text.Render(m.tr.T(d.question, d.kv...)) + "\n\n" +
		m.modalHint("y "+m.tr.T(d.confirm), "n "+m.tr.T("modal.cancel"))
	return m.placeModal(m.tr.T("modal.confirmTitle"), body)
}

// promptModal reads one line of text. onSubmit may return a follow-up modal
// to chain prompts.
type promptModal struct {
	title    string
	kv       []string
	input    textinput.Model
	onSubmit func(Model, string) (Model, Modal, tea.Cmd)
	onCancel func(Model) Model
}

func newPrompt(title string, secret bool, value string, onSubmit func(Model, string) (Model, Modal, tea.Cmd)) promptModal {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 128
	ti.SetValue(value)
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()
	return promptModal{title: title, input: ti, onSubmit: onSubmit}
}

func (d promptModal) Update(m Model, msg tea.KeyMsg) (Model, Modal, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if d.onCancel != nil {
			m = d.onCancel(m)
		}
		return m, nil, nil
	case "enter":
		value := strings.TrimSpace(d.input.Value())
		if value == "" {
			return m, d, nil
		}
		return d.onSubmit(m, value)
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return m, d, cmd
}

func (d promptModal) View(m Model) string {
	body := d.input.View() + "\n\n" + m.modalHint("enter "+m.tr.T("help.select"), "esc "+m.tr.T("modal.cancel"))
	return m.placeModal(m.tr.T(d.title, d.kv...), body)
}

// pinPrompt asks for the settings PIN and hands it to then. The backend
// checks it as part of the protected call.
func pinPrompt(then func(Model, string) (Model, tea.Cmd)) promptModal {
	return newPrompt("prompt.pin", true, "", func(m Model, pin string) (Model, Modal, tea.Cmd) {
		next, cmd := then(m, pin)
		return next, nil, cmd
	})
}

// gateModal is the keypad that unlocks the protected settings tabs. It
// verifies automatically once all digits are entered.
type gateModal struct {
	wrong bool
	busy  bool
}

// pinResultMsg is the outcome of a gate verification.
type pinResultMsg struct {
	tab settings.Tab
	err error
}

func (d gateModal) Update(m Model, msg tea.KeyMsg) (Model, Modal, tea.Cmd) {
	if d.busy {
		return m, d, nil
	}
	switch msg.String() {
	case "esc":
		m.gate.Cancel()
		return m, nil, nil
	case "backspace":
		m.gate.Backspace()
		return m, d, nil
	}
	runes := msg.Runes
	if len(runes) != 1 {
		return m, d, nil
	}
	d.wrong = false
	if !m.gate.Press(runes[0]) {
		return m, d, nil
	}
	d.busy = true
	gate := m.gate
	parent := m.ctx
	return m, d, func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, RequestTimeout)
		defer cancel()
		tab, err := gate.Submit(ctx)
		return pinResultMsg{tab: tab, err: err}
	}
}

func (d gateModal) View(m Model) string {
	styles := m.theme.Styles()
	entered := m.gate.Entered()
	dots := strings.Repeat("● ", entered) + strings.Repeat("○ ", settings.PINLength-entered)
	body := styles.AccentText.Render(strings.TrimSpace(dots))
	if d.wrong {
		body += "\n" + styles.DangerText.Render(m.tr.T("modal.pinIncorrect"))
	}
	body += "\n\n" + m.modalHint("0-9", "⌫", "esc "+m.tr.T("modal.cancel"))
	return m.placeModal(m.tr.T("modal.pinRequired"), body)
}
