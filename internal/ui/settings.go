package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/deck/internal/devices"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/settings"
)

// settingsState holds the settings overlay and the data its tabs show.
type settingsState struct {
	open   bool
	tab    settings.Tab
	cursor int

	// pollSeq invalidates scheduled tab polls when the tab changes or the
	// overlay closes.
	pollSeq int

	deviceList     devices.DeviceList
	devicesLoading bool
	devicesErr     string
	audioDevices   []kiosk.AudioDevice
	audioErr       string
	switching      string

	btErr string

	systemVolume int
	limits       settings.Limits
	volumeLoaded bool
	volumeDeb    *settings.Debouncer
	limitsDeb    *settings.Debouncer

	network        kiosk.NetworkStatus
	powerSaving    bool
	rebootRequired bool
	info           kiosk.DeviceInfo
	update         *kiosk.UpdateInfo
	checking       bool

	account       kiosk.AccountInfo
	accountLoaded bool
}

func newSettings() settingsState {
	return settingsState{
		tab:       settings.TabTheme,
		volumeDeb: &settings.Debouncer{},
		limitsDeb: &settings.Debouncer{},
	}
}

// settingRow is one line of a settings tab. Header and note rows are not
// selectable.
type settingRow struct {
	header   bool
	note     bool
	icon     string
	label    string
	value    string
	muted    bool
	activate func(Model) (Model, tea.Cmd)
	adjust   func(Model, int) (Model, tea.Cmd)
	forget   func(Model) (Model, tea.Cmd)
}

// settingsTickMsg drives the per-tab pollers.
type settingsTickMsg struct {
	seq int
	tab settings.Tab
}

func (m Model) openSettings() (Model, tea.Cmd) {
	if m.backend == nil {
		return m, nil
	}
	m.settings.open = true
	return m.enterTab(m.settings.tab)
}

// closeSettings hides the overlay, stops tab polling and locks the gate.
func (m Model) closeSettings() (Model, tea.Cmd) {
	m.settings.open = false
	m.settings.pollSeq++
	m.gate.Lock()
	return m, nil
}

// enterTab switches to tab, or asks for the PIN first when it is protected.
func (m Model) enterTab(tab settings.Tab) (Model, tea.Cmd) {
	if !m.gate.Open(tab) {
		m.modal = gateModal{}
		return m, nil
	}
	m.settings.tab = tab
	m.settings.pollSeq++
	m.settings.cursor = m.firstSelectable()

	cmds := m.loadTab(tab)
	if d := m.tabPollInterval(tab); d > 0 {
		cmds = append(cmds, settingsTick(d, m.settings.pollSeq, tab))
	}
	if tab == settings.TabDevices {
		m.settings.devicesLoading = m.settings.deviceList.Empty()
		if list, ok := m.audio.Cached(); ok {
			m.settings.audioDevices = list
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handlePINResult(msg pinResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, settings.ErrWrongPIN) {
			m.modal = gateModal{wrong: true}
			return m, nil
		}
		m.modal = nil
		m.gate.Cancel()
		return m.fail("system.somethingWrong", msg.err)
	}
	m.modal = nil
	if !m.settings.open {
		return m, nil
	}
	return m.enterTab(msg.tab)
}

func settingsTick(d time.Duration, seq int, tab settings.Tab) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return settingsTickMsg{seq: seq, tab: tab}
	})
}

func (m Model) tabPollInterval(tab settings.Tab) time.Duration {
	switch tab {
	case settings.TabDevices:
		return m.poll.Devices
	case settings.TabBluetooth:
		if m.bt.PollInterval() == devices.BluetoothScanPoll {
			return m.poll.BluetoothScan
		}
		return m.poll.Bluetooth
	default:
		return 0
	}
}

// loadTab returns the commands that fetch a tab's data.
func (m Model) loadTab(tab settings.Tab) []tea.Cmd {
	switch tab {
	case settings.TabDevices:
		return []tea.Cmd{m.loadConnectCmd(), m.loadAudioCmd()}
	case settings.TabBluetooth:
		return []tea.Cmd{m.loadBluetoothCmd(true)}
	case settings.TabVolume:
		return []tea.Cmd{m.loadVolumeCmd()}
	case settings.TabSystem:
		return []tea.Cmd{m.loadSystemCmd()}
	case settings.TabAccount:
		return []tea.Cmd{m.loadAccountCmd()}
	default:
		return nil
	}
}

// updateSettings handles the non-key messages of the settings tabs. ok is
// false when msg is not one of them.
func (m Model) updateSettings(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case settingsTickMsg:
		if !m.settings.open || msg.seq != m.settings.pollSeq || msg.tab != m.settings.tab {
			return m, nil, true
		}
		cmds := []tea.Cmd{settingsTick(m.tabPollInterval(msg.tab), msg.seq, msg.tab)}
		switch msg.tab {
		case settings.TabDevices:
			cmds = append(cmds, m.loadConnectCmd())
		case settings.TabBluetooth:
			cmds = append(cmds, m.loadBluetoothCmd(false))
		}
		return m, tea.Batch(cmds...), true

	case devicesLoadedMsg:
		m.settings.devicesLoading = false
		if msg.err != nil {
			m.settings.devicesErr = "error.loadDevices"
			return m, nil, true
		}
		m.settings.devicesErr = ""
		m.settings.deviceList = msg.list
		m.settings.cursor = m.clampSettingsCursor()
		return m, nil, true

	case audioLoadedMsg:
		if msg.err != nil {
			m.settings.audioErr = "error.loadAudioDevices"
			return m, nil, true
		}
		m.settings.audioErr = ""
		m.settings.audioDevices = msg.devices
		return m, nil, true

	case audioSwitchedMsg:
		return m.handleAudioSwitched(msg)

	case bluetoothMsg:
		return m.handleBluetooth(msg)

	case volumeLoadedMsg:
		if msg.err != nil {
			next, cmd := m.fail("error.volume", msg.err)
			return next, cmd, true
		}
		m.settings.systemVolume = msg.system
		m.settings.limits = msg.limits
		m.settings.volumeLoaded = true
		return m, nil, true

	case volumeFlushMsg:
		return m.flushVolume(msg)

	case systemLoadedMsg:
		m.settings.network = msg.network
		m.settings.powerSaving = msg.powerSaving
		m.settings.info = msg.info
		if msg.err != nil {
			next, cmd := m.fail("system.somethingWrong", msg.err)
			return next, cmd, true
		}
		return m, nil, true

	case powerSavingMsg:
		if msg.err != nil {
			next, cmd := m.fail("error.save", msg.err)
			return next, cmd, true
		}
		m.settings.powerSaving = msg.result.Enabled
		m.settings.rebootRequired = msg.result.RebootRequired
		next, cmd := m.notify(ternary(msg.result.RebootRequired, "settings.rebootRequired", "toast.saved"))
		return next, cmd, true

	case updateCheckedMsg:
		return m.handleUpdateChecked(msg)

	case accountLoadedMsg:
		if msg.err != nil {
			next, cmd := m.fail("account.error", msg.err)
			return next, cmd, true
		}
		m.settings.account = msg.info
		m.settings.accountLoaded = true
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.settingsRows()
	var current *settingRow
	if i := m.settings.cursor; i >= 0 && i < len(rows) && rows[i].selectable() {
		current = &rows[i]
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Settings, m.keys.Escape):
		return m.closeSettings()
	case key.Matches(msg, m.keys.Language):
		return m.toggleLanguage()
	case key.Matches(msg, m.keys.NextTab):
		return m.enterTab(m.settings.tab.Next(1))
	case key.Matches(msg, m.keys.PrevTab):
		return m.enterTab(m.settings.tab.Next(-1))
	case key.Matches(msg, m.keys.Up):
		m.settings.cursor = m.moveSettingsCursor(rows, -1)
	case key.Matches(msg, m.keys.Down):
		m.settings.cursor = m.moveSettingsCursor(rows, 1)
	case key.Matches(msg, m.keys.Select):
		if current != nil && current.activate != nil {
			return current.activate(m)
		}
	case key.Matches(msg, m.keys.Decrease):
		if current != nil && current.adjust != nil {
			return current.adjust(m, -1)
		}
	case key.Matches(msg, m.keys.Increase):
		if current != nil && current.adjust != nil {
			return current.adjust(m, 1)
		}
	case key.Matches(msg, m.keys.Forget):
		if current != nil && current.forget != nil {
			return current.forget(m)
		}
	case key.Matches(msg, m.keys.Scan):
		if m.settings.tab == settings.TabBluetooth {
			return m.toggleScan()
		}
	}
	return m, nil
}

func (m Model) settingsHelp() []key.Binding {
	bindings := []key.Binding{m.keys.NextTab, m.keys.Select}
	switch m.settings.tab {
	case settings.TabVolume:
		bindings = append(bindings, m.keys.Decrease)
	case settings.TabBluetooth:
		bindings = append(bindings, m.keys.Scan, m.keys.Forget)
	}
	return append(bindings, m.keys.Settings, m.keys.Quit)
}

func (m Model) settingsRows() []settingRow {
	switch m.settings.tab {
	case settings.TabTheme:
		return m.themeRows()
	case settings.TabDevices:
		return m.deviceRows()
	case settings.TabBluetooth:
		return m.bluetoothRows()
	case settings.TabVolume:
		return m.volumeRows()
	case settings.TabSystem:
		return m.systemRows()
	case settings.TabAccount:
		return m.accountRows()
	default:
		return nil
	}
}

func (r settingRow) selectable() bool {
	return !r.header && !r.note
}

func (m Model) firstSelectable() int {
	for i, r := range m.settingsRows() {
		if r.selectable() {
			return i
		}
	}
	return 0
}

func (m Model) moveSettingsCursor(rows []settingRow, step int) int {
	for i := m.settings.cursor + step; i >= 0 && i < len(rows); i += step {
		if rows[i].selectable() {
			return i
		}
	}
	return m.settings.cursor
}

// clampSettingsCursor keeps the cursor on a selectable row after a list
// changed length.
func (m Model) clampSettingsCursor() int {
	rows := m.settingsRows()
	c := clampIndex(m.settings.cursor, len(rows))
	for i := c; i < len(rows); i++ {
		if rows[i].selectable() {
			return i
		}
	}
	for i := c; i >= 0 && i < len(rows); i-- {
		if rows[i].selectable() {
			return i
		}
	}
	return c
}

// Rendering

func (m Model) renderSettings() string {
	styles := m.theme.Styles()
	height := m.bodyHeight()

	tabs := make([]string, len(settings.Tabs))
	for i, t := range settings.Tabs {
		label := m.tr.T(t.Key())
		if t.Protected() && m.gate.Enabled() && !m.gate.Unlocked() {
			label += " 🔒"
		}
		if t == m.settings.tab {
			tabs[i] = styles.Selected.Padding(0, 1).Render(label)
		} else {
			tabs[i] = styles.MutedText.Padding(0, 1).Render(label)
		}
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, tabs...), ""}
	inner := m.width - 4
	for i, r := range m.settingsRows() {
		lines = append(lines, m.renderSettingRow(r, i == m.settings.cursor, inner, styles))
	}
	if len(lines) > height-2 {
		lines = lines[:height-2]
	}
	return styles.FocusedPane.Width(m.width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSettingRow(r settingRow, selected bool, width int, styles Styles) string {
	switch {
	case r.header:
		return styles.PrimaryText.Render(r.label)
	case r.note:
		return styles.FaintText.Render("  " + truncate(r.label, width-2))
	}
	label := r.label
	if r.icon != "" {
		label = r.icon + " " + label
	}
	label = "  " + truncate(label, width/2)
	pad := width - lipgloss.Width(label) - lipgloss.Width(r.value)
	if pad < 1 {
		pad = 1
	}
	line := label + strings.Repeat(" ", pad) + r.value
	switch {
	case selected:
		return styles.Selected.Render(line)
	case r.muted:
		return styles.MutedText.Render(line)
	default:
		return styles.Text.Render(line)
	}
}

func (m Model) onOff(on bool) string {
	return m.tr.T(ternary(on, "settings.enabled", "settings.disabled"))
}
