package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zmb3/spotify/v2"

	"github.com/five82/deck/internal/cache"
	"github.com/five82/deck/internal/config"
	"github.com/five82/deck/internal/devices"
	"github.com/five82/deck/internal/i18n"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/logging"
	"github.com/five82/deck/internal/prefs"
	"github.com/five82/deck/internal/settings"
	"github.com/five82/deck/internal/state"
	"github.com/five82/deck/internal/view"
)

// Backend is the kiosk API surface the UI drives.
type Backend interface {
	devices.AudioBackend
	devices.ConnectBackend
	devices.BluetoothBackend
	settings.PINVerifier

	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	PlayTrack(ctx context.Context, req kiosk.PlayTrackRequest) error
	SetShuffle(ctx context.Context, on bool) error
	Seek(ctx context.Context, positionMS int64) error
	SetSpotifyVolume(ctx context.Context, percent int) error

	SetSystemVolume(ctx context.Context, volume int) error
	VolumeSettings(ctx context.Context) (kiosk.VolumeSettings, error)
	SetDefaultVolume(ctx context.Context, volume int) error
	SetMaxVolume(ctx context.Context, volume int) error

	NetworkStatus(ctx context.Context) (kiosk.NetworkStatus, error)
	Shutdown(ctx context.Context) error
	Reboot(ctx context.Context) error
	PowerSaving(ctx context.Context) (bool, error)
	SetPowerSaving(ctx context.Context, enabled bool) (kiosk.PowerSaving, error)
	DeviceInfo(ctx context.Context) (kiosk.DeviceInfo, error)
	SetHostname(ctx context.Context, hostname, pin string) error
	SetPlayerName(ctx context.Context, name, pin string) error
	CheckUpdate(ctx context.Context) (kiosk.UpdateInfo, error)
	StartUpdate(ctx context.Context, version string) error
	AccountInfo(ctx context.Context) (kiosk.AccountInfo, error)
	SetCredentials(ctx context.Context, clientID, clientSecret, pin string) error
	Logout(ctx context.Context) error
	SetLanguage(ctx context.Context, lang string) error
}

// Library is the cached library the browser panes read from.
type Library interface {
	Playlists(ctx context.Context) ([]kiosk.Playlist, error)
	PlaylistTracks(ctx context.Context, id spotify.ID) ([]kiosk.Track, error)
	Artists(ctx context.Context) ([]kiosk.Artist, error)
	ArtistTopTracks(ctx context.Context, id spotify.ID) ([]kiosk.Track, error)
	ArtistAlbums(ctx context.Context, id spotify.ID) ([]kiosk.Album, error)
	AlbumTracks(ctx context.Context, id spotify.ID) ([]kiosk.Track, error)
	RefreshPlaylists(ctx context.Context) ([]kiosk.Playlist, error)
	RefreshArtists(ctx context.Context) ([]kiosk.Artist, error)
}

// Options configures the UI.
type Options struct {
	Context context.Context
	Backend Backend
	Library Library
	Store   *state.Store
	Cache   *cache.Cache
	Logger  *slog.Logger

	// RefreshNowPlaying forces a now-playing poll, typically Poller.Trigger.
	RefreshNowPlaying func()

	Poll      config.PollConfig
	Prefs     prefs.Prefs
	PrefsPath string
	Language  string
	View      view.State

	// LogFile is shown in the log overlay. Empty disables it.
	LogFile string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx               context.Context
	backend           Backend
	library           Library
	store             *state.Store
	cache             *cache.Cache
	logger            *slog.Logger
	refreshNowPlaying func()
	poll              config.PollConfig
	prefsPath         string
	logFile           string

	keys  keyMap
	help  help.Model
	tr    i18n.Translator
	prefs prefs.Prefs
	theme Theme

	width    int
	height   int
	ready    bool
	showHelp bool

	snapshot state.Snapshot
	player   state.Player

	browser  browserState
	settings settingsState
	logs     logState
	modal    Modal
	toast    toast

	accountErrorShown bool

	gate    *settings.Gate
	audio   *devices.AudioSwitcher
	connect *devices.Connect
	bt      *devices.Bluetooth
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.OrDiscard(opts.Logger)

	poll := opts.Poll
	if poll.Progress <= 0 {
		poll.Progress = DefaultUIInterval
	}
	if poll.Devices <= 0 {
		poll.Devices = 3 * time.Second
	}
	if poll.Bluetooth <= 0 {
		poll.Bluetooth = devices.BluetoothPoll
	}
	if poll.BluetoothScan <= 0 {
		poll.BluetoothScan = devices.BluetoothScanPoll
	}

	refresh := opts.RefreshNowPlaying
	if refresh == nil {
		refresh = func() {}
	}

	lang := opts.Prefs.Language
	if lang == "" {
		lang = opts.Language
	}

	h := help.New()
	h.ShortSeparator = "  "

	m := Model{
		ctx:               ctx,
		backend:           opts.Backend,
		library:           opts.Library,
		store:             opts.Store,
		cache:             opts.Cache,
		logger:            logger,
		refreshNowPlaying: refresh,
		poll:              poll,
		prefsPath:         opts.PrefsPath,
		logFile:           opts.LogFile,
		keys:              DefaultKeyMap(),
		help:              h,
		tr:                i18n.New(lang),
		prefs:             opts.Prefs,
		theme:             ThemeFromPrefs(opts.Prefs),
		browser:           newBrowser(opts.View),
		settings:          newSettings(),
		logs:              newLogState(),
	}
	if opts.Backend != nil {
		m.gate = settings.NewGate(opts.Backend, opts.Prefs.PinProtection)
		m.audio = devices.NewAudioSwitcher(opts.Backend, devices.WithAudioLogger(logger))
		m.connect = devices.NewConnect(opts.Backend, logger)
		m.bt = devices.NewBluetooth(opts.Backend, logger, nil)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.poll.Progress)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, m.restoreView()...)
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		if m.logs.open {
			m = m.syncLogViewport()
		}
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case snapshotMsg:
		return m.applySnapshot(state.Snapshot(msg))

	case toastExpiredMsg:
		if int(msg) == m.toast.id {
			m.toast = toast{id: m.toast.id}
		}
		return m, nil

	case resultMsg:
		return m.handleResult(msg)

	case seekedMsg:
		return m.handleSeeked(msg)

	case listLoadedMsg:
		return m.handleListLoaded(msg)

	case pinResultMsg:
		return m.handlePINResult(msg)

	case logsLoadedMsg:
		return m.handleLogsLoaded(msg)

	case logsTickMsg:
		if m.logs.open && int(msg) == m.logs.seq {
			return m, m.loadLogsCmd()
		}
		return m, nil
	}

	if next, cmd, ok := m.updateSettings(msg); ok {
		return next, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.tr.T("loading.playlists")
	}
	if m.modal != nil {
		return m.modal.View(m)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.logs.open {
		return m.renderWithChrome(m.renderLogs())
	}
	if m.settings.open {
		return m.renderWithChrome(m.renderSettings())
	}
	return m.renderWithChrome(m.renderBrowser())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.modal != nil {
		next, modal, cmd := m.modal.Update(m, msg)
		next.modal = modal
		return next, cmd
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.logs.open {
		return m.handleLogsKey(msg)
	}
	if m.browser.filtering {
		return m.handleFilterKey(msg)
	}
	if m.settings.open {
		return m.handleSettingsKey(msg)
	}
	return m.handleBrowserKey(msg)
}

// handleTick interpolates playback progress and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.store != nil {
		m.store.Advance(now)
		return m.applySnapshot(m.store.Snapshot(), tickCmd(m.poll.Progress))
	}
	return m, tickCmd(m.poll.Progress)
}

func (m Model) applySnapshot(snap state.Snapshot, cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.snapshot = snap
	m.player = snap.Player
	if kiosk.IsForbidden(snap.LastError) {
		m = m.showAccountError()
	}
	return m, tea.Batch(cmds...)
}

// showAccountError opens the account problem dialog the first time the
// backend reports a forbidden Spotify session.
func (m Model) showAccountError() Model {
	if m.accountErrorShown {
		return m
	}
	m.accountErrorShown = true
	m.modal = messageModal{title: "account.error", body: "account.errorHint"}
	return m
}

func (m Model) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if msg.refresh {
		cmds = append(cmds, m.refreshAfter(msg.delay))
	}
	if msg.err != nil {
		var cmd tea.Cmd
		m, cmd = m.fail(msg.fail, msg.err)
		return m, tea.Batch(append(cmds, cmd)...)
	}
	switch {
	case msg.okText != "":
		var cmd tea.Cmd
		m, cmd = m.toastInfo(msg.okText)
		cmds = append(cmds, cmd)
	case msg.ok != "":
		var cmd tea.Cmd
		m, cmd = m.notify(msg.ok)
		cmds = append(cmds, cmd)
	}
	if msg.next != nil {
		cmds = append(cmds, msg.next)
	}
	return m, tea.Batch(cmds...)
}

// fail logs err and shows a toast. Forbidden errors open the account dialog.
func (m Model) fail(key string, err error) (Model, tea.Cmd) {
	if errors.Is(err, context.Canceled) {
		return m, nil
	}
	m.logger.Warn("request failed", "action", key, "error", err)
	if kiosk.IsForbidden(err) {
		m = m.showAccountError()
	}
	if key == "" {
		key = "system.somethingWrong"
	}
	return m.toastError(m.tr.T(key))
}

// notify shows a translated info toast.
func (m Model) notify(key string, kv ...string) (Model, tea.Cmd) {
	return m.toastInfo(m.tr.T(key, kv...))
}

// refreshAfter forces a now-playing poll after d. The poll result reaches
// the UI through the store on the next tick.
func (m Model) refreshAfter(d time.Duration) tea.Cmd {
	refresh := m.refreshNowPlaying
	if d <= 0 {
		return func() tea.Msg {
			refresh()
			return nil
		}
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		refresh()
		return nil
	})
}

// call runs fn with a request timeout on a command goroutine and reports
// the outcome as a resultMsg.
func (m Model) call(ok, fail string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		return resultMsg{ok: ok, fail: fail, err: fn(ctx)}
	}
}

// savePrefs writes the current prefs. An empty path means the default file.
func (m Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type toastExpiredMsg int

// resultMsg is the outcome of a fire-and-forget backend call. With refresh
// set, now playing is polled again after delay whether or not it failed.
type resultMsg struct {
	ok      string
	okText  string
	fail    string
	err     error
	refresh bool
	delay   time.Duration
	next    tea.Cmd
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and returns the last view state so the
// caller can persist it.
func Run(opts Options) (view.State, error) {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		return fm.browser.view, err
	}
	return m.browser.view, err
}
