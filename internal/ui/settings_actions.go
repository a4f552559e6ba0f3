package ui

import (
	"context"
	"errors"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/five82/deck/internal/cache"
	"github.com/five82/deck/internal/devices"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/settings"
)

// bluetoothTimeout bounds pairing, which waits on the remote device.
const bluetoothTimeout = 45 * time.Second

type devicesLoadedMsg struct {
	list devices.DeviceList
	err  error
}

type audioLoadedMsg struct {
	devices []kiosk.AudioDevice
	err     error
}

type audioSwitchedMsg struct {
	res devices.SwitchResult
	err error
}

type btAction int

const (
	btLoad btAction = iota
	btScan
	btSelect
	btPIN
	btForget
	btPower
)

type bluetoothMsg struct {
	action   btAction
	outcome  devices.Outcome
	scanning bool
	on       bool
	err      error
}

type volumeLoadedMsg struct {
	system int
	limits settings.Limits
	err    error
}

// volumeFlushMsg fires after a debounce delay; only the latest input of a
// slider is written.
type volumeFlushMsg struct {
	limits bool
	seq    uint64
}

type systemLoadedMsg struct {
	network     kiosk.NetworkStatus
	powerSaving bool
	info        kiosk.DeviceInfo
	err         error
}

type powerSavingMsg struct {
	result kiosk.PowerSaving
	err    error
}

type updateCheckedMsg struct {
	info kiosk.UpdateInfo
	err  error
}

type accountLoadedMsg struct {
	info kiosk.AccountInfo
	err  error
}

// request runs fn on a command goroutine with the default timeout.
func (m Model) request(fn func(context.Context) tea.Msg) tea.Cmd {
	return m.requestWithin(RequestTimeout, fn)
}

func (m Model) requestWithin(d time.Duration, fn func(context.Context) tea.Msg) tea.Cmd {
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, d)
		defer cancel()
		return fn(ctx)
	}
}

// callThen is call with a follow-up command run after success or failure.
func (m Model) callThen(ok, fail string, fn func(context.Context) error, next tea.Cmd) tea.Cmd {
	return m.request(func(ctx context.Context) tea.Msg {
		return resultMsg{ok: ok, fail: fail, err: fn(ctx), next: next}
	})
}

// Devices tab

func (m Model) loadConnectCmd() tea.Cmd {
	connect := m.connect
	showLocal := m.prefs.ShowLocalDevices
	return m.request(func(ctx context.Context) tea.Msg {
		list, err := connect.Load(ctx, showLocal)
		return devicesLoadedMsg{list: list, err: err}
	})
}

func (m Model) loadAudioCmd() tea.Cmd {
	audio := m.audio
	return m.request(func(ctx context.Context) tea.Msg {
		list, err := audio.Refresh(ctx)
		return audioLoadedMsg{devices: list, err: err}
	})
}

func (m Model) switchAudio(d kiosk.AudioDevice) (Model, tea.Cmd) {
	if d.Selected() || m.settings.switching != "" {
		return m, nil
	}
	m.settings.switching = d.ID
	audio := m.audio
	return m, m.requestWithin(RequestTimeout+devices.SwitchSettle, func(ctx context.Context) tea.Msg {
		res, err := audio.Switch(ctx, d.ID)
		return audioSwitchedMsg{res: res, err: err}
	})
}

func (m Model) handleAudioSwitched(msg audioSwitchedMsg) (Model, tea.Cmd, bool) {
	m.settings.switching = ""
	if msg.err != nil {
		var cooldown *devices.CooldownError
		switch {
		case errors.As(msg.err, &cooldown):
			next, cmd := m.notify("device.waitSeconds", "n", strconv.Itoa(cooldown.Seconds()))
			return next, cmd, true
		case errors.Is(msg.err, devices.ErrSwitchInFlight):
			return m, nil, true
		}
		next, cmd := m.fail("error.switchFailed", msg.err)
		return next, cmd, true
	}
	if msg.res.Devices != nil {
		m.settings.audioDevices = msg.res.Devices
	}
	if msg.res.ReloadErr != nil {
		m.logger.Warn("audio reload after switch failed", "error", msg.res.ReloadErr)
		return m, nil, true
	}
	m.settings.systemVolume = msg.res.Volume
	return m, nil, true
}

func (m Model) transferCmd(d kiosk.ConnectDevice) tea.Cmd {
	if d.IsActive {
		return nil
	}
	connect := m.connect
	next := m.loadConnectCmd()
	text := m.tr.T("device.playingOn") + " " + d.Name
	return m.request(func(ctx context.Context) tea.Msg {
		err := connect.Transfer(ctx, d)
		return resultMsg{okText: text, fail: "error.selectDevice", err: err, refresh: true, delay: SkipRefreshDelay, next: next}
	})
}

func (m Model) transferLocalCmd(d kiosk.LocalDevice) tea.Cmd {
	if d.DeviceID == "" {
		return func() tea.Msg {
			return resultMsg{fail: "error.deviceIdUnavailable", err: devices.ErrNoDeviceID}
		}
	}
	connect := m.connect
	next := m.loadConnectCmd()
	playing := m.tr.T("device.playingOn") + " " + d.DisplayName()
	activated := d.DisplayName() + " " + m.tr.T("device.activated")
	return m.request(func(ctx context.Context) tea.Msg {
		res, err := connect.TransferLocal(ctx, d)
		msg := resultMsg{okText: playing, fail: "error.connectDevice", err: err, refresh: true, delay: SkipRefreshDelay, next: next}
		switch {
		case err != nil && res.Activated:
			msg.fail = "error.activateDevice"
		case res.Activated && !res.Result.Success:
			msg.fail = "error.activateFailed"
			msg.err = errors.New(res.Result.Message)
		case res.Activated:
			msg.okText = activated
		}
		return msg
	})
}

// Bluetooth tab

func (m Model) loadBluetoothCmd(withPower bool) tea.Cmd {
	bt := m.bt
	return m.request(func(ctx context.Context) tea.Msg {
		if withPower {
			if err := bt.LoadPower(ctx); err != nil {
				return bluetoothMsg{action: btLoad, err: err}
			}
		}
		return bluetoothMsg{action: btLoad, err: bt.Load(ctx)}
	})
}

// bluetoothCmd runs a controller action. arg is the device address, or the
// PIN for btPIN.
func (m Model) bluetoothCmd(action btAction, arg string, on bool) tea.Cmd {
	bt := m.bt
	return m.requestWithin(bluetoothTimeout, func(ctx context.Context) tea.Msg {
		msg := bluetoothMsg{action: action, on: on}
		switch action {
		case btScan:
			msg.scanning, msg.err = bt.ToggleScan(ctx)
		case btSelect:
			msg.outcome, msg.err = bt.Select(ctx, arg)
		case btPIN:
			msg.outcome, msg.err = bt.SubmitPIN(ctx, arg)
		case btForget:
			msg.outcome = devices.OutcomeForgotten
			msg.err = bt.Forget(ctx, arg)
		case btPower:
			msg.err = bt.SetPower(ctx, on)
		}
		return msg
	})
}

func (m Model) toggleScan() (Model, tea.Cmd) {
	if !m.bt.State().Powered {
		return m, nil
	}
	return m, m.bluetoothCmd(btScan, "", false)
}

func (m Model) handleBluetooth(msg bluetoothMsg) (Model, tea.Cmd, bool) {
	if errors.Is(msg.err, devices.ErrBluetoothBusy) {
		return m, nil, true
	}
	var (
		next Model
		cmd  tea.Cmd
	)
	switch msg.action {
	case btLoad:
		m.settings.btErr = ""
		if msg.err != nil && !errors.Is(msg.err, kiosk.ErrBluetoothUnavailable) {
			m.logger.Debug("bluetooth load failed", "error", msg.err)
			m.settings.btErr = "error.loadBluetooth"
		}
		m.settings.cursor = m.clampSettingsCursor()
		return m, nil, true

	case btScan:
		if msg.err != nil {
			next, cmd = m.fail("bt.startScanError", msg.err)
			return next, cmd, true
		}
		// The poll cadence depends on whether a scan runs.
		m.settings.pollSeq++
		cmds := []tea.Cmd{settingsTick(m.tabPollInterval(settings.TabBluetooth), m.settings.pollSeq, settings.TabBluetooth)}
		if msg.scanning {
			next, cmd = m.notify("bt.searchStarted")
			return next, tea.Batch(append(cmds, cmd)...), true
		}
		return m, tea.Batch(cmds...), true

	case btPower:
		if msg.err != nil {
			next, cmd = m.fail("bt.powerFailed", msg.err)
			return next, cmd, true
		}
		next, cmd = m.notify(ternary(msg.on, "bt.poweredOn", "bt.poweredOff"))
		return next, cmd, true

	case btForget:
		if msg.err != nil {
			next, cmd = m.fail("bt.forgetError", msg.err)
			return next, cmd, true
		}
		next, cmd = m.notify("bt.forgotten")
		return next, cmd, true
	}

	if msg.err != nil {
		key := "bt.pairError"
		switch msg.outcome {
		case devices.OutcomeConnected:
			key = "bt.connectError"
		case devices.OutcomeDisconnected:
			key = "bt.disconnectError"
		}
		if errors.Is(msg.err, devices.ErrPINRequired) {
			key = "bt.enterPin"
		}
		next, cmd = m.fail(key, msg.err)
		return next, cmd, true
	}
	switch msg.outcome {
	case devices.OutcomeNeedsPIN:
		m.modal = m.devicePINPrompt()
		return m, nil, true
	case devices.OutcomeConnected:
		next, cmd = m.notify("bt.connectedToast")
	case devices.OutcomeDisconnected:
		next, cmd = m.notify("bt.disconnected")
	default:
		return m, nil, true
	}
	return next, cmd, true
}

// devicePINPrompt asks for the pairing PIN a Bluetooth device requested.
func (m Model) devicePINPrompt() promptModal {
	p := newPrompt("modal.enterPinDevice", false, "", func(m Model, pin string) (Model, Modal, tea.Cmd) {
		return m, nil, m.bluetoothCmd(btPIN, pin, false)
	})
	p.onCancel = func(m Model) Model {
		m.bt.CancelPIN()
		return m
	}
	return p
}

// Volume tab

func (m Model) loadVolumeCmd() tea.Cmd {
	backend := m.backend
	return m.request(func(ctx context.Context) tea.Msg {
		var (
			system int
			vs     kiosk.VolumeSettings
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			system, err = backend.SystemVolume(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			vs, err = backend.VolumeSettings(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return volumeLoadedMsg{err: err}
		}
		limits := settings.Limits{Default: vs.DefaultVolume, Max: vs.MaxVolume}.Normalize()
		return volumeLoadedMsg{system: settings.ClampPercent(system), limits: limits}
	})
}

func (m Model) adjustSystemVolume(delta int) (Model, tea.Cmd) {
	v := settings.ClampPercent(m.settings.systemVolume + delta)
	if v == m.settings.systemVolume {
		return m, nil
	}
	m.settings.systemVolume = v
	seq := m.settings.volumeDeb.Bump()
	return m, tea.Tick(settings.VolumeDebounce, func(time.Time) tea.Msg {
		return volumeFlushMsg{seq: seq}
	})
}

func (m Model) adjustLimits(l settings.Limits) (Model, tea.Cmd) {
	if l == m.settings.limits {
		return m, nil
	}
	m.settings.limits = l
	seq := m.settings.limitsDeb.Bump()
	return m, tea.Tick(settings.LimitsDebounce, func(time.Time) tea.Msg {
		return volumeFlushMsg{limits: true, seq: seq}
	})
}

// flushVolume writes the slider value once input has settled.
func (m Model) flushVolume(msg volumeFlushMsg) (Model, tea.Cmd, bool) {
	backend := m.backend
	if !msg.limits {
		if !m.settings.volumeDeb.Current(msg.seq) {
			return m, nil, true
		}
		v := m.settings.systemVolume
		return m, m.call("", "error.volume", func(ctx context.Context) error {
			return backend.SetSystemVolume(ctx, v)
		}), true
	}
	if !m.settings.limitsDeb.Current(msg.seq) {
		return m, nil, true
	}
	l := m.settings.limits
	return m, m.call("", "error.save", func(ctx context.Context) error {
		if err := backend.SetMaxVolume(ctx, l.Max); err != nil {
			return err
		}
		return backend.SetDefaultVolume(ctx, l.Default)
	}), true
}

// System tab

func (m Model) loadSystemCmd() tea.Cmd {
	backend := m.backend
	return m.request(func(ctx context.Context) tea.Msg {
		var msg systemLoadedMsg
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.network, err = backend.NetworkStatus(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.powerSaving, err = backend.PowerSaving(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.info, err = backend.DeviceInfo(gctx)
			return err
		})
		msg.err = g.Wait()
		return msg
	})
}

func (m Model) setPowerSavingCmd(enabled bool) tea.Cmd {
	backend := m.backend
	return m.request(func(ctx context.Context) tea.Msg {
		res, err := backend.SetPowerSaving(ctx, enabled)
		return powerSavingMsg{result: res, err: err}
	})
}

func (m Model) checkUpdateCmd() tea.Cmd {
	backend := m.backend
	return m.request(func(ctx context.Context) tea.Msg {
		info, err := backend.CheckUpdate(ctx)
		return updateCheckedMsg{info: info, err: err}
	})
}

func (m Model) handleUpdateChecked(msg updateCheckedMsg) (Model, tea.Cmd, bool) {
	m.settings.checking = false
	err := msg.err
	if err == nil && msg.info.Error != "" {
		err = errors.New(msg.info.Error)
	}
	if err != nil {
		next, cmd := m.fail("error.updateCheck", err)
		return next, cmd, true
	}
	info := msg.info
	m.settings.update = &info
	if !info.Available {
		next, cmd := m.notify("update.upToDate")
		return next, cmd, true
	}
	m.modal = confirmModal{
		question: "modal.updateAvailable",
		confirm:  "modal.updateConfirm",
		onConfirm: func(m Model) (Model, tea.Cmd) {
			return m, m.call("update.updating", "error.updateFailed", func(ctx context.Context) error {
				return m.backend.StartUpdate(ctx, info.LatestVersion)
			})
		},
	}
	return m, nil, true
}

// renamePrompt chains a name prompt into the PIN prompt the backend needs
// for hostname and player name changes.
func (m Model) renamePrompt(title, current string, set func(ctx context.Context, value, pin string) error) promptModal {
	return newPrompt(title, false, current, func(m Model, value string) (Model, Modal, tea.Cmd) {
		return m, pinPrompt(func(m Model, pin string) (Model, tea.Cmd) {
			return m, m.callThen("toast.saved", "error.save", func(ctx context.Context) error {
				return set(ctx, value, pin)
			}, m.loadSystemCmd())
		}), nil
	})
}

// clearCache drops every cached library entry.
func (m Model) clearCache() (Model, tea.Cmd) {
	if m.cache != nil {
		prefixes := append(append([]string{}, cache.PlaylistScope...), cache.ArtistScope...)
		n := m.cache.ClearPrefix(prefixes...)
		m.logger.Info("library cache cleared", "entries", n)
	}
	return m.notify("toast.cacheCleared")
}

// Account tab

func (m Model) loadAccountCmd() tea.Cmd {
	backend := m.backend
	return m.request(func(ctx context.Context) tea.Msg {
		info, err := backend.AccountInfo(ctx)
		return accountLoadedMsg{info: info, err: err}
	})
}

// credentialsPrompt asks for client id, secret and PIN in turn, then saves
// the credentials and ends the current Spotify session.
func (m Model) credentialsPrompt() promptModal {
	return newPrompt("prompt.clientId", false, m.settings.account.ClientID, func(m Model, id string) (Model, Modal, tea.Cmd) {
		return m, newPrompt("prompt.clientSecret", true, "", func(m Model, secret string) (Model, Modal, tea.Cmd) {
			return m, pinPrompt(func(m Model, pin string) (Model, tea.Cmd) {
				backend := m.backend
				return m, m.callThen("toast.saved", "error.save", func(ctx context.Context) error {
					if err := backend.SetCredentials(ctx, id, secret, pin); err != nil {
						return err
					}
					return backend.Logout(ctx)
				}, m.loadAccountCmd())
			}), nil
		}), nil
	})
}
