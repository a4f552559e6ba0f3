package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/view"
)

type pane int

const (
	paneList pane = iota
	paneDetail
)

// browserState holds the library panes. The left pane lists playlists or
// artists; the right pane lists tracks or an artist's albums.
type browserState struct {
	view  view.State
	focus pane

	cursor  [2]int
	queries [2]string

	playlists []kiosk.Playlist
	artists   []kiosk.Artist
	albums    []kiosk.Album
	tracks    []kiosk.Track

	// the load the right pane data belongs to
	detailFor view.Action

	loadingList   bool
	loadingDetail bool
	listErr       string
	detailErr     string

	filtering bool
	filter    textinput.Model
}

func newBrowser(v view.State) browserState {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.CharLimit = 64
	v = v.Normalize()
	return browserState{
		view:          v,
		filter:        ti,
		loadingList:   true,
		loadingDetail: detailAction(v) != nil,
	}
}

// detailAction is the load that fills the right pane for v, if any.
func detailAction(v view.State) *view.Action {
	actions := view.Restore(v)
	if len(actions) < 2 {
		return nil
	}
	a := actions[1]
	return &a
}

// listLoadedMsg carries the result of one library load.
type listLoadedMsg struct {
	action    view.Action
	playlists []kiosk.Playlist
	artists   []kiosk.Artist
	albums    []kiosk.Album
	tracks    []kiosk.Track
	err       error
}

func (m Model) restoreView() []tea.Cmd {
	var cmds []tea.Cmd
	for _, a := range view.Restore(m.browser.view) {
		cmds = append(cmds, m.loadCmd(a, false))
	}
	return cmds
}

func (m Model) loadCmd(a view.Action, refresh bool) tea.Cmd {
	lib := m.library
	if lib == nil {
		return nil
	}
	parent := m.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, RequestTimeout)
		defer cancel()
		msg := listLoadedMsg{action: a}
		switch a.Kind {
		case view.LoadPlaylists:
			if refresh {
				msg.playlists, msg.err = lib.RefreshPlaylists(ctx)
			} else {
				msg.playlists, msg.err = lib.Playlists(ctx)
			}
		case view.LoadArtists:
			if refresh {
				msg.artists, msg.err = lib.RefreshArtists(ctx)
			} else {
				msg.artists, msg.err = lib.Artists(ctx)
			}
		case view.LoadPlaylistTracks:
			msg.tracks, msg.err = lib.PlaylistTracks(ctx, a.ID)
		case view.LoadArtistTopTracks:
			msg.tracks, msg.err = lib.ArtistTopTracks(ctx, a.ID)
		case view.LoadArtistAlbums:
			msg.albums, msg.err = lib.ArtistAlbums(ctx, a.ID)
		case view.LoadAlbumTracks:
			msg.tracks, msg.err = lib.AlbumTracks(ctx, a.ID)
		}
		return msg
	}
}

func (m Model) handleListLoaded(msg listLoadedMsg) (tea.Model, tea.Cmd) {
	b := &m.browser
	switch msg.action.Kind {
	case view.LoadPlaylists, view.LoadArtists:
		if (msg.action.Kind == view.LoadPlaylists) != (b.view.Mode == view.ModePlaylists) {
			return m, nil
		}
		b.loadingList = false
		if msg.err != nil {
			b.listErr = ternary(msg.action.Kind == view.LoadPlaylists, "error.loadPlaylists", "error.loadArtists")
			return m.fail(b.listErr, msg.err)
		}
		b.listErr = ""
		if msg.action.Kind == view.LoadPlaylists {
			b.playlists = msg.playlists
		} else {
			b.artists = msg.artists
		}
		b.cursor[paneList] = clampIndex(b.cursor[paneList], len(m.listRows()))
		return m, nil
	}

	want := detailAction(b.view)
	if want == nil || *want != msg.action {
		return m, nil
	}
	b.loadingDetail = false
	b.detailFor = msg.action
	if msg.err != nil {
		b.detailErr = ternary(msg.action.Kind == view.LoadArtistAlbums, "error.loadAlbums", "error.loadTracks")
		b.tracks, b.albums = nil, nil
		return m.fail(b.detailErr, msg.err)
	}
	b.detailErr = ""
	if msg.action.Kind == view.LoadArtistAlbums {
		b.albums = msg.albums
	} else {
		b.tracks = msg.tracks
	}
	b.cursor[paneDetail] = clampIndex(b.cursor[paneDetail], len(m.detailRows()))
	return m, nil
}

// navigate moves to next and loads whatever the new view shows. Loads are
// served from the library cache, so repeating them is cheap.
func (m Model) navigate(next view.State) (Model, tea.Cmd) {
	prev := m.browser.view
	next = next.Normalize()
	m.browser.view = next
	m.prefs.LastView = view.Encode(next)

	var cmds []tea.Cmd
	if prev.Mode != next.Mode {
		m.browser.cursor[paneList] = 0
		m.browser.queries[paneList] = ""
		m.browser.loadingList = true
		m.browser.listErr = ""
		if next.Mode == view.ModePlaylists {
			cmds = append(cmds, m.loadCmd(view.Action{Kind: view.LoadPlaylists}, false))
		} else {
			cmds = append(cmds, m.loadCmd(view.Action{Kind: view.LoadArtists}, false))
		}
	}

	want := detailAction(next)
	switch {
	case want == nil:
		m.browser.loadingDetail = false
		m.browser.detailErr = ""
		m.browser.detailFor = view.Action{}
		m.browser.focus = paneList
	case *want != m.browser.detailFor:
		m.browser.loadingDetail = true
		m.browser.detailErr = ""
		m.browser.cursor[paneDetail] = 0
		m.browser.queries[paneDetail] = ""
		cmds = append(cmds, m.loadCmd(*want, false))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleBrowserKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if next, cmd, ok := m.handleTransportKey(msg); ok {
		return next, cmd
	}

	b := &m.browser
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Settings):
		return m.openSettings()
	case key.Matches(msg, m.keys.Language):
		return m.toggleLanguage()
	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()
	case key.Matches(msg, m.keys.Focus):
		if detailAction(b.view) != nil {
			b.focus = 1 - b.focus
		}
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		b.filtering = true
		b.filter.SetValue(b.queries[b.focus])
		b.filter.CursorEnd()
		cmd := b.filter.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.SwitchView):
		if b.view.Mode == view.ModePlaylists {
			return m.navigate(b.view.WithMode(view.ModeArtists))
		}
		return m.navigate(b.view.WithMode(view.ModePlaylists))
	case key.Matches(msg, m.keys.SubView):
		if b.view.Mode != view.ModeArtists || b.view.ArtistID == "" {
			return m, nil
		}
		if b.view.ArtistSubView == view.SubViewAlbums && b.view.AlbumID == "" {
			return m.navigate(b.view.WithSubView(view.SubViewTracks))
		}
		return m.navigate(b.view.WithSubView(view.SubViewAlbums))
	case key.Matches(msg, m.keys.Refresh):
		return m.refreshLibrary()
	case key.Matches(msg, m.keys.Back):
		if b.queries[b.focus] != "" {
			b.queries[b.focus] = ""
			return m, nil
		}
		return m.navigate(b.view.Back())
	case key.Matches(msg, m.keys.Up):
		b.cursor[b.focus] = clampIndex(b.cursor[b.focus]-1, m.visibleCount(b.focus))
	case key.Matches(msg, m.keys.Down):
		b.cursor[b.focus] = clampIndex(b.cursor[b.focus]+1, m.visibleCount(b.focus))
	case key.Matches(msg, m.keys.Top):
		b.cursor[b.focus] = 0
	case key.Matches(msg, m.keys.Bottom):
		b.cursor[b.focus] = clampIndex(m.visibleCount(b.focus)-1, m.visibleCount(b.focus))
	case key.Matches(msg, m.keys.Select):
		return m.selectRow()
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := &m.browser
	switch msg.String() {
	case "enter":
		b.filtering = false
		b.filter.Blur()
		return m, nil
	case "esc":
		b.filtering = false
		b.filter.Blur()
		b.queries[b.focus] = ""
		b.cursor[b.focus] = 0
		return m, nil
	}
	var cmd tea.Cmd
	b.filter, cmd = b.filter.Update(msg)
	b.queries[b.focus] = b.filter.Value()
	b.cursor[b.focus] = 0
	return m, cmd
}

func (m Model) refreshLibrary() (Model, tea.Cmd) {
	m.browser.loadingList = true
	m.browser.detailFor = view.Action{}
	kind := view.LoadPlaylists
	if m.browser.view.Mode == view.ModeArtists {
		kind = view.LoadArtists
	}
	// The refresh clears the detail scopes too, so reload the right pane
	// after the list has been fetched again.
	cmds := []tea.Cmd{m.loadCmd(view.Action{Kind: kind}, true)}
	if want := detailAction(m.browser.view); want != nil {
		m.browser.loadingDetail = true
		cmds = append(cmds, m.loadCmd(*want, false))
	}
	return m, tea.Sequence(cmds...)
}

func (m Model) selectRow() (Model, tea.Cmd) {
	b := m.browser
	rows := m.visibleRows(b.focus)
	if len(rows) == 0 {
		return m, nil
	}
	r := rows[clampIndex(b.cursor[b.focus], len(rows))]

	if b.focus == paneList {
		var next view.State
		if b.view.Mode == view.ModePlaylists {
			next = b.view.SelectPlaylist(r.id)
		} else {
			next = b.view.SelectArtist(r.id)
		}
		var cmd tea.Cmd
		m, cmd = m.navigate(next)
		m.browser.focus = paneDetail
		return m, cmd
	}

	if m.detailIsAlbums() {
		return m.navigate(b.view.SelectAlbum(r.id))
	}
	return m.playRow(r)
}

// playRow starts a track in its context: the playlist, the album, or for
// top tracks the clicked track and everything after it.
func (m Model) playRow(r row) (Model, tea.Cmd) {
	req := kiosk.PlayTrackRequest{URI: r.uri}
	v := m.browser.view
	switch {
	case v.Mode == view.ModePlaylists:
		req.PlaylistID = v.PlaylistID
	case v.AlbumID != "":
		req.AlbumID = v.AlbumID
	default:
		for _, t := range m.browser.tracks[r.index:] {
			req.TrackURIs = append(req.TrackURIs, t.URI)
		}
	}
	backend := m.backend
	return m, m.callRefresh("", "error.playback", func(ctx context.Context) error {
		return backend.PlayTrack(ctx, req)
	}, SkipRefreshDelay)
}

func (m Model) detailIsAlbums() bool {
	v := m.browser.view
	return v.Mode == view.ModeArtists && v.ArtistID != "" && v.AlbumID == "" && v.ArtistSubView == view.SubViewAlbums
}

func (m Model) listRows() []row {
	if m.browser.view.Mode == view.ModePlaylists {
		rows := make([]row, len(m.browser.playlists))
		for i, p := range m.browser.playlists {
			rows[i] = row{id: p.ID, title: p.Name, right: fmt.Sprintf("%d", p.TracksTotal), index: i}
		}
		return rows
	}
	rows := make([]row, len(m.browser.artists))
	for i, a := range m.browser.artists {
		rows[i] = row{id: a.ID, title: a.Name, index: i}
	}
	return rows
}

func (m Model) detailRows() []row {
	if detailAction(m.browser.view) == nil {
		return nil
	}
	if m.detailIsAlbums() {
		rows := make([]row, len(m.browser.albums))
		for i, a := range m.browser.albums {
			rows[i] = row{
				id:    a.ID,
				uri:   a.URI,
				title: a.Name,
				sub:   fmt.Sprintf("%d %s", a.TotalTracks, m.tr.T("duration.tracks")),
				right: a.Year(),
				index: i,
			}
		}
		return rows
	}
	rows := make([]row, len(m.browser.tracks))
	for i, t := range m.browser.tracks {
		title := t.Name
		if m.browser.view.AlbumID != "" && t.TrackNumber > 0 {
			title = fmt.Sprintf("%2d. %s", t.TrackNumber, t.Name)
		}
		rows[i] = row{
			id:    t.ID,
			uri:   t.URI,
			title: title,
			sub:   t.Artist,
			right: formatTime(msDuration(t.DurationMS)),
			index: i,
		}
	}
	return rows
}

func (m Model) visibleRows(p pane) []row {
	rows := m.listRows()
	if p == paneDetail {
		rows = m.detailRows()
	}
	return filterRows(rows, m.browser.queries[p])
}

func (m Model) visibleCount(p pane) int {
	return len(m.visibleRows(p))
}

// Rendering

func (m Model) renderBrowser() string {
	height := m.bodyHeight()
	listWidth := LayoutListWidth
	if m.width < LayoutCompactWidth {
		listWidth = m.width / 3
	}
	detailWidth := m.width - listWidth

	left := m.renderPane(paneList, m.listTitle(), listWidth, height)
	right := m.renderPane(paneDetail, m.detailTitle(), detailWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) listTitle() string {
	if m.browser.view.Mode == view.ModePlaylists {
		return m.tr.T("nav.playlists")
	}
	return m.tr.T("nav.artists")
}

func (m Model) detailTitle() string {
	v := m.browser.view
	switch {
	case v.Mode == view.ModePlaylists:
		for _, p := range m.browser.playlists {
			if p.ID == v.PlaylistID {
				return p.Name
			}
		}
		return m.tr.T("panel.tracks")
	case v.AlbumID != "":
		for _, a := range m.browser.albums {
			if a.ID == v.AlbumID {
				return m.albumHeading(a)
			}
		}
		return m.tr.T("panel.tracks")
	case v.ArtistSubView == view.SubViewAlbums:
		return m.tr.T("panel.albums")
	default:
		return m.tr.T("panel.topTracks")
	}
}

func (m Model) albumHeading(a kiosk.Album) string {
	var total int64
	for _, t := range m.browser.tracks {
		total += t.DurationMS
	}
	parts := []string{a.Name}
	if y := a.Year(); y != "" {
		parts = append(parts, y)
	}
	parts = append(parts, fmt.Sprintf("%d %s", len(m.browser.tracks), m.tr.T("duration.tracks")), formatTotal(total, m.tr))
	return strings.Join(parts, " • ")
}

func (m Model) renderPane(p pane, title string, width, height int) string {
	styles := m.theme.Styles()
	b := m.browser
	frame := styles.Pane
	if b.focus == p {
		frame = styles.FocusedPane
	}
	inner := width - 2
	if inner < 4 {
		inner = 4
	}

	var lines []string
	heading := styles.PrimaryText.Render(truncate(title, inner))
	if q := b.queries[p]; q != "" {
		heading += styles.MutedText.Render("  /" + q)
	}
	lines = append(lines, heading)

	if b.filtering && b.focus == p {
		lines = append(lines, b.filter.View())
	}

	if empty := m.paneMessage(p); empty != "" {
		lines = append(lines, styles.MutedText.Render(m.tr.T(empty)))
		return frame.Width(inner).Height(height - 2).Render(strings.Join(lines, "\n"))
	}

	rows := m.visibleRows(p)
	visible := height - 2 - len(lines)
	if visible < 1 {
		visible = 1
	}
	cursor := clampIndex(b.cursor[p], len(rows))
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(rows[i], inner, i == cursor && b.focus == p, styles))
	}
	return frame.Width(inner).Height(height - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(r row, width int, selected bool, styles Styles) string {
	playing := r.id != "" && r.id == m.player.TrackID
	marker := "  "
	if playing {
		marker = "♪ "
	}
	right := r.right
	avail := width - 2 - lipgloss.Width(right) - 1
	text := r.title
	if r.sub != "" && avail > len(r.title)+4 {
		text += " · " + r.sub
	}
	text = truncate(text, avail)
	pad := width - 2 - lipgloss.Width(text) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	line := marker + text + strings.Repeat(" ", pad) + right
	switch {
	case selected:
		return styles.Selected.Render(line)
	case playing:
		return styles.AccentText.Render(line)
	default:
		return styles.Text.Render(line)
	}
}

// paneMessage is the message key shown instead of rows, if any.
func (m Model) paneMessage(p pane) string {
	b := m.browser
	playlists := b.view.Mode == view.ModePlaylists
	if p == paneList {
		switch {
		case b.loadingList:
			return ternary(playlists, "loading.playlists", "loading.artists")
		case b.listErr != "":
			return b.listErr
		case len(m.listRows()) == 0:
			return ternary(playlists, "empty.noPlaylists", "empty.noArtists")
		}
		return ""
	}
	switch {
	case detailAction(b.view) == nil:
		return ternary(playlists, "empty.selectPlaylist", "empty.selectArtist")
	case b.loadingDetail:
		switch {
		case m.detailIsAlbums():
			return "loading.albums"
		case !playlists && b.view.AlbumID == "":
			return "loading.topTracks"
		default:
			return "loading.tracks"
		}
	case b.detailErr != "":
		return b.detailErr
	case len(m.detailRows()) == 0:
		return ternary(m.detailIsAlbums(), "empty.noAlbums", "empty.noTracks")
	}
	return ""
}

func msDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
