// Package mcpserver exposes kiosk playback, library and device actions as
// Model Context Protocol tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/five82/deck/internal/devices"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/library"
	"github.com/five82/deck/internal/logging"
)

// Player is the playback slice of the kiosk API.
type Player interface {
	Current(ctx context.Context) (*kiosk.CurrentPlayback, error)
	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	SetShuffle(ctx context.Context, on bool) error
	SetSpotifyVolume(ctx context.Context, percent int) error
}

// Library serves cached playlists and artists.
type Library interface {
	Playlists(ctx context.Context) ([]kiosk.Playlist, error)
	Artists(ctx context.Context) ([]kiosk.Artist, error)
	RefreshPlaylists(ctx context.Context) ([]kiosk.Playlist, error)
	RefreshArtists(ctx context.Context) ([]kiosk.Artist, error)
	Search(ctx context.Context, query string) ([]library.Result, error)
}

// Deps are the services the tools call into.
type Deps struct {
	Player  Player
	Library Library
	Devices devices.ConnectBackend
	Logger  *slog.Logger
}

// New builds the deck MCP server without starting it.
func New(deps Deps, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"deck",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{
		player:  deps.Player,
		library: deps.Library,
		connect: devices.NewConnect(deps.Devices, deps.Logger),
		logger:  logging.OrDiscard(deps.Logger),
	}

	s.AddTool(mcp.NewTool("now_playing",
		mcp.WithDescription("Report the current track, play state, shuffle and volume of the kiosk."),
	), h.handleNowPlaying)

	s.AddTool(mcp.NewTool("playback",
		mcp.WithDescription("Control kiosk playback."),
		mcp.WithString("action", mcp.Description("What to do."), mcp.Required(),
			mcp.Enum(actionPlay, actionPause, actionNext, actionPrevious, actionShuffleOn, actionShuffleOff)),
	), h.handlePlayback)

	s.AddTool(mcp.NewTool("set_volume",
		mcp.WithDescription("Set the Spotify volume in percent."),
		mcp.WithNumber("volume", mcp.Description("Volume between 0 and 100."), mcp.Required()),
	), h.handleSetVolume)

	s.AddTool(mcp.NewTool("list_playlists",
		mcp.WithDescription("List the account's playlists."),
		mcp.WithBoolean("refresh", mcp.Description("Bypass the library cache.")),
	), h.handleListPlaylists)

	s.AddTool(mcp.NewTool("list_artists",
		mcp.WithDescription("List the followed artists."),
		mcp.WithBoolean("refresh", mcp.Description("Bypass the library cache.")),
	), h.handleListArtists)

	s.AddTool(mcp.NewTool("search_library",
		mcp.WithDescription("Fuzzy search playlists and artists by name."),
		mcp.WithString("query", mcp.Description("Text to look for."), mcp.Required()),
	), h.handleSearch)

	s.AddTool(mcp.NewTool("list_devices",
		mcp.WithDescription("List Spotify Connect devices, including ones found on the local network."),
	), h.handleListDevices)

	s.AddTool(mcp.NewTool("transfer_playback",
		mcp.WithDescription("Move playback to a Spotify Connect device."),
		mcp.WithString("device", mcp.Description("Device id or name as shown by list_devices."), mcp.Required()),
	), h.handleTransfer)

	return s
}

// Serve runs the server on stdin and stdout until the client disconnects.
func Serve(_ context.Context, deps Deps, version string) error {
	return server.ServeStdio(New(deps, version))
}
