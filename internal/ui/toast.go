package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastError
)

// toast is a transient status line. id lets a stale expiry be ignored when a
// newer toast replaced it.
type toast struct {
	id   int
	text string
	kind toastKind
}

func (m Model) toastInfo(text string) (Model, tea.Cmd) {
	return m.showToast(text, toastInfo)
}

func (m Model) toastError(text string) (Model, tea.Cmd) {
	return m.showToast(text, toastError)
}

func (m Model) showToast(text string, kind toastKind) (Model, tea.Cmd) {
	id := m.toast.id + 1
	m.toast = toast{id: id, text: text, kind: kind}
	return m, tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg(id)
	})
}

func (m Model) renderToast() string {
	if m.toast.text == "" {
		return ""
	}
	styles := m.theme.Styles()
	if m.toast.kind == toastError {
		return styles.DangerText.Render("✗ " + m.toast.text)
	}
	return styles.SuccessText.Render("✓ " + m.toast.text)
}
