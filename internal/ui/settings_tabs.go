package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/deck/internal/devices"
	"github.com/five82/deck/internal/i18n"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/prefs"
	"github.com/five82/deck/internal/settings"
)

const checkMark = "✓"

func (m Model) themeRows() []settingRow {
	rows := []settingRow{
		{
			label: m.tr.T("settings.mode"),
			value: m.tr.T(ternary(m.prefs.Theme == "dark", "settings.dark", "settings.light")),
			activate: func(m Model) (Model, tea.Cmd) {
				return m.applyPrefs(settings.ToggleMode(m.prefs))
			},
		},
		{
			label: m.tr.T("settings.language"),
			value: m.tr.T("language." + m.tr.Lang()),
			activate: func(m Model) (Model, tea.Cmd) {
				return m.toggleLanguage()
			},
		},
		{header: true, label: m.tr.T("settings.presets")},
	}
	active := settings.ActivePreset(m.prefs)
	for i, ps := range settings.Presets {
		ps := ps
		rows = append(rows, settingRow{
			icon:  ternary(ps.Theme == "dark", "◐", "◑"),
			label: ps.Name,
			value: ternary(i == active, checkMark, ""),
			activate: func(m Model) (Model, tea.Cmd) {
				return m.applyPrefs(ps.Apply(m.prefs))
			},
		})
	}
	return rows
}

// applyPrefs stores new appearance preferences and rebuilds the theme.
func (m Model) applyPrefs(p prefs.Prefs) (Model, tea.Cmd) {
	m.prefs = p
	m.theme = ThemeFromPrefs(p)
	m.savePrefs()
	return m, nil
}

func (m Model) deviceRows() []settingRow {
	st := &m.settings
	rows := []settingRow{{header: true, label: m.tr.T("settings.computerAudio")}}
	switch {
	case st.audioErr != "" && len(st.audioDevices) == 0:
		rows = append(rows, settingRow{note: true, label: m.tr.T(st.audioErr)})
	case len(st.audioDevices) == 0:
		rows = append(rows, settingRow{note: true, label: m.tr.T("empty.noAudioDevices")})
	}
	for _, d := range st.audioDevices {
		d := d
		rows = append(rows, settingRow{
			icon:  string(devices.AudioIcon(d.Name)),
			label: d.Name,
			value: ternary(d.Selected(), checkMark, ""),
			muted: st.switching != "" && st.switching != d.ID,
			activate: func(m Model) (Model, tea.Cmd) {
				return m.switchAudio(d)
			},
		})
	}

	rows = append(rows, settingRow{header: true, label: m.tr.T("settings.spotifyPlayOn")})
	switch {
	case st.devicesLoading:
		rows = append(rows, settingRow{note: true, label: m.tr.T("loading.devices")})
	case st.devicesErr != "":
		rows = append(rows, settingRow{note: true, label: m.tr.T(st.devicesErr)})
	case st.deviceList.Empty():
		rows = append(rows, settingRow{note: true, label: m.tr.T("empty.noDevices")})
	}
	for _, d := range st.deviceList.API {
		d := d
		rows = append(rows, settingRow{
			icon:  string(devices.ConnectIcon(d.Type)),
			label: d.Name,
			value: ternary(d.IsActive, checkMark, d.Type),
			activate: func(m Model) (Model, tea.Cmd) {
				return m, m.transferCmd(d)
			},
		})
	}
	for _, d := range st.deviceList.Local {
		d := d
		rows = append(rows, settingRow{
			icon:  string(devices.ConnectIcon(d.DeviceType)),
			label: d.DisplayName(),
			value: ternary(d.IsActive, checkMark, d.Description()),
			muted: d.DeviceID == "",
			activate: func(m Model) (Model, tea.Cmd) {
				return m, m.transferLocalCmd(d)
			},
		})
	}

	rows = append(rows, settingRow{
		label: m.tr.T("settings.showLocalDevices"),
		value: m.onOff(m.prefs.ShowLocalDevices),
		activate: func(m Model) (Model, tea.Cmd) {
			m.prefs.ShowLocalDevices = !m.prefs.ShowLocalDevices
			m.savePrefs()
			return m, m.loadConnectCmd()
		},
	})
	return rows
}

func (m Model) bluetoothRows() []settingRow {
	st := m.bt.State()
	if st.Unavailable {
		return []settingRow{{note: true, label: m.tr.T("bt.notAvailable")}}
	}

	rows := []settingRow{{
		icon:  string(devices.IconBluetooth),
		label: m.tr.T("settings.power"),
		value: m.onOff(st.Powered),
		activate: func(m Model) (Model, tea.Cmd) {
			return m, m.bluetoothCmd(btPower, "", !st.Powered)
		},
	}}
	if !st.Powered {
		return rows
	}

	scanValue := ""
	if st.Scanning {
		scanValue = m.tr.T("loading.searching")
	}
	rows = append(rows, settingRow{
		label: m.tr.T(ternary(st.Scanning, "settings.stop", "settings.scan")),
		value: scanValue,
		activate: func(m Model) (Model, tea.Cmd) {
			return m.toggleScan()
		},
	})
	if m.settings.btErr != "" {
		rows = append(rows, settingRow{note: true, label: m.tr.T(m.settings.btErr)})
	}

	rows = append(rows, settingRow{header: true, label: m.tr.T("settings.pairedDevices")})
	if len(st.Paired) == 0 {
		rows = append(rows, settingRow{note: true, label: m.tr.T("empty.noPairedDevices")})
	}
	for _, d := range st.Paired {
		rows = append(rows, m.bluetoothRow(st, d, true))
	}

	rows = append(rows, settingRow{header: true, label: m.tr.T("settings.discoveredDevices")})
	if len(st.Discovered) == 0 {
		key := ternary(st.Scanning, "loading.searching", "empty.noDiscoveredDevices")
		rows = append(rows, settingRow{note: true, label: m.tr.T(key)})
	}
	for _, d := range st.Discovered {
		rows = append(rows, m.bluetoothRow(st, d, false))
	}
	return rows
}

func (m Model) bluetoothRow(st devices.BluetoothState, d kiosk.BluetoothDevice, paired bool) settingRow {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = m.tr.T("bt.unknownDevice")
	}
	status := devices.DeviceStatus(st, d, paired)
	value := m.tr.T(status.Key())
	if d.Codec != "" && status == devices.StatusConnected {
		value += " · " + d.Codec
	}
	row := settingRow{
		icon:  string(devices.BluetoothIcon(d)),
		label: name,
		value: value,
		muted: st.Busy() && status != devices.StatusConnecting && status != devices.StatusPairing,
		activate: func(m Model) (Model, tea.Cmd) {
			if m.bt.State().Busy() {
				return m, nil
			}
			return m, m.bluetoothCmd(btSelect, d.Address, false)
		},
	}
	if paired {
		row.forget = func(m Model) (Model, tea.Cmd) {
			m.modal = confirmModal{
				question: "modal.forgetQuestion",
				confirm:  "modal.forgetConfirm",
				kv:       []string{"name", name},
				onConfirm: func(m Model) (Model, tea.Cmd) {
					return m, m.bluetoothCmd(btForget, d.Address, false)
				},
			}
			return m, nil
		}
	}
	return row
}

func (m Model) volumeRows() []settingRow {
	st := &m.settings
	if !st.volumeLoaded {
		return []settingRow{{note: true, label: m.tr.T("loading.devices")}}
	}
	width := m.width / 3
	if width > 30 {
		width = 30
	}
	styles := m.theme.Styles()
	return []settingRow{
		{
			icon:  settings.VolumeLevel(st.systemVolume).Glyph(),
			label: m.tr.T("settings.volume"),
			value: slider(st.systemVolume, width, styles),
			adjust: func(m Model, dir int) (Model, tea.Cmd) {
				return m.adjustSystemVolume(dir * settings.VolumeStep)
			},
		},
		{header: true, label: m.tr.T("settings.defaultVolume")},
		{note: true, label: m.tr.T("settings.volumeHintDefault")},
		{
			label: m.tr.T("settings.defaultVolume"),
			value: slider(st.limits.Default, width, styles),
			adjust: func(m Model, dir int) (Model, tea.Cmd) {
				return m.adjustLimits(m.settings.limits.WithDefault(m.settings.limits.Default + dir*settings.VolumeStep))
			},
		},
		{header: true, label: m.tr.T("settings.maxVolume")},
		{note: true, label: m.tr.T("settings.volumeHintMax")},
		{
			label: m.tr.T("settings.maxVolume"),
			value: slider(st.limits.Max, width, styles),
			adjust: func(m Model, dir int) (Model, tea.Cmd) {
				return m.adjustLimits(m.settings.limits.WithMax(m.settings.limits.Max + dir*settings.VolumeStep))
			},
		},
	}
}

func (m Model) systemRows() []settingRow {
	st := &m.settings
	powerValue := m.onOff(st.powerSaving)
	if st.rebootRequired {
		powerValue += " · " + m.tr.T("settings.rebootRequired")
	}
	internet := m.tr.T(ternary(st.network.Internet, "settings.online", "settings.offline"))

	version := "—"
	checkValue := ""
	if st.update != nil {
		version = st.update.CurrentVersion
		if st.update.Available {
			checkValue = st.update.LatestVersion
		}
	}
	if st.checking {
		checkValue = m.tr.T("settings.checking")
	}

	return []settingRow{
		{
			label: m.tr.T("settings.pinProtection"),
			value: m.onOff(m.prefs.PinProtection),
			activate: func(m Model) (Model, tea.Cmd) {
				m.prefs.PinProtection = !m.prefs.PinProtection
				m.gate.SetProtection(m.prefs.PinProtection)
				m.savePrefs()
				return m.notify("toast.saved")
			},
		},
		{
			label: m.tr.T("settings.powerSaving"),
			value: powerValue,
			activate: func(m Model) (Model, tea.Cmd) {
				return m, m.setPowerSavingCmd(!m.settings.powerSaving)
			},
		},
		{header: true, label: m.tr.T("settings.network")},
		{label: m.tr.T("settings.ip"), value: st.network.IP},
		{label: m.tr.T("settings.internet"), value: internet},
		{
			label: m.tr.T("settings.hostname"),
			value: st.info.Hostname,
			activate: func(m Model) (Model, tea.Cmd) {
				m.modal = m.renamePrompt("prompt.hostname", m.settings.info.Hostname, m.backend.SetHostname)
				return m, nil
			},
		},
		{
			label: m.tr.T("settings.playerName"),
			value: st.info.PlayerName,
			activate: func(m Model) (Model, tea.Cmd) {
				m.modal = m.renamePrompt("prompt.playerName", m.settings.info.PlayerName, m.backend.SetPlayerName)
				return m, nil
			},
		},
		{header: true, label: m.tr.T("settings.update")},
		{label: m.tr.T("settings.version"), value: version},
		{
			label: m.tr.T("settings.checkUpdate"),
			value: checkValue,
			activate: func(m Model) (Model, tea.Cmd) {
				if m.settings.checking {
					return m, nil
				}
				m.settings.checking = true
				return m, m.checkUpdateCmd()
			},
		},
		{
			label: m.tr.T("settings.clearCache"),
			activate: func(m Model) (Model, tea.Cmd) {
				return m.clearCache()
			},
		},
		{
			label: m.tr.T("settings.reboot"),
			activate: func(m Model) (Model, tea.Cmd) {
				m.modal = confirmModal{
					question: "modal.rebootQuestion",
					confirm:  "modal.rebootConfirm",
					onConfirm: func(m Model) (Model, tea.Cmd) {
						return m, m.call("system.restarting", "error.reboot", m.backend.Reboot)
					},
				}
				return m, nil
			},
		},
		{
			label: m.tr.T("settings.shutdown"),
			activate: func(m Model) (Model, tea.Cmd) {
				m.modal = confirmModal{
					question: "modal.shutdownQuestion",
					confirm:  "modal.shutdownConfirm",
					onConfirm: func(m Model) (Model, tea.Cmd) {
						return m, m.call("system.shuttingDown", "error.shutdown", m.backend.Shutdown)
					},
				}
				return m, nil
			},
		},
	}
}

func (m Model) accountRows() []settingRow {
	st := &m.settings
	if !st.accountLoaded {
		return []settingRow{{note: true, label: m.tr.T("loading.playlists")}}
	}
	return []settingRow{
		{label: m.tr.T("account.name"), value: st.account.DisplayName},
		{label: m.tr.T("account.email"), value: st.account.Email},
		{label: m.tr.T("account.product"), value: st.account.Product},
		{
			label: m.tr.T("settings.credentials"),
			value: st.account.ClientID,
			activate: func(m Model) (Model, tea.Cmd) {
				m.modal = m.credentialsPrompt()
				return m, nil
			},
		},
		{
			label: m.tr.T("settings.logout"),
			activate: func(m Model) (Model, tea.Cmd) {
				m.modal = confirmModal{
					question: "modal.logoutQuestion",
					confirm:  "settings.logout",
					onConfirm: func(m Model) (Model, tea.Cmd) {
						return m, m.callThen("", "system.somethingWrong", m.backend.Logout, m.loadAccountCmd())
					},
				}
				return m, nil
			},
		},
	}
}

// toggleLanguage switches between the two catalogs and tells the backend.
func (m Model) toggleLanguage() (Model, tea.Cmd) {
	langs := i18n.Languages()
	current := m.tr.Lang()
	next := langs[0]
	for i, l := range langs {
		if l == current {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	m.tr = i18n.New(next)
	m.prefs.Language = next
	m.savePrefs()
	if m.backend == nil {
		return m, nil
	}
	return m, m.call("", "error.save", func(ctx context.Context) error {
		return m.backend.SetLanguage(ctx, next)
	})
}
