package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/five82/deck/internal/devices"
)

const (
	actionPlay       = "play"
	actionPause      = "pause"
	actionNext       = "next"
	actionPrevious   = "previous"
	actionShuffleOn  = "shuffle_on"
	actionShuffleOff = "shuffle_off"
)

// toolHandler holds the dependencies shared by the tool handlers.
type toolHandler struct {
	player  Player
	library Library
	connect *devices.Connect
	logger  *slog.Logger
}

// nowPlaying is the now_playing payload. Track is omitted when idle.
type nowPlaying struct {
	Playing bool   `json:"playing"`
	Shuffle bool   `json:"shuffle"`
	Volume  int    `json:"volume_percent"`
	Track   *track `json:"track,omitempty"`
}

type track struct {
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	Album      string `json:"album"`
	ProgressMS int64  `json:"progress_ms"`
	DurationMS int64  `json:"duration_ms"`
}

func (h *toolHandler) handleNowPlaying(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cur, err := h.player.Current(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load current playback: %v", err)), nil
	}
	out := nowPlaying{}
	if cur != nil {
		out.Playing = cur.Playing
		out.Shuffle = cur.Shuffle
		out.Volume = cur.VolumePercent
		if t := cur.Track; t != nil {
			out.Track = &track{
				Name:       t.Name,
				Artist:     t.Artist,
				Album:      t.Album,
				ProgressMS: t.ProgressMS,
				DurationMS: t.DurationMS,
			}
		}
	}
	return jsonResult(out)
}

func (h *toolHandler) handlePlayback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action := request.GetString("action", "")
	var err error
	switch action {
	case actionPlay:
		err = h.player.Play(ctx)
	case actionPause:
		err = h.player.Pause(ctx)
	case actionNext:
		err = h.player.Next(ctx)
	case actionPrevious:
		err = h.player.Previous(ctx)
	case actionShuffleOn:
		err = h.player.SetShuffle(ctx, true)
	case actionShuffleOff:
		err = h.player.SetShuffle(ctx, false)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown action %q", action)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", action, err)), nil
	}
	h.logger.Info("mcp playback", "action", action)
	return mcp.NewToolResultText("ok"), nil
}

func (h *toolHandler) handleSetVolume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vol := request.GetInt("volume", -1)
	if vol < 0 || vol > 100 {
		return mcp.NewToolResultError("volume must be between 0 and 100"), nil
	}
	if err := h.player.SetSpotifyVolume(ctx, vol); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("set volume failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("volume %d%%", vol)), nil
}

func (h *toolHandler) handleListPlaylists(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	load := h.library.Playlists
	if request.GetBool("refresh", false) {
		load = h.library.RefreshPlaylists
	}
	list, err := load(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(list)
}

func (h *toolHandler) handleListArtists(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	load := h.library.Artists
	if request.GetBool("refresh", false) {
		load = h.library.RefreshArtists
	}
	list, err := load(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(list)
}

func (h *toolHandler) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	results, err := h.library.Search(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	type hit struct {
		Kind string `json:"kind"`
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	hits := make([]hit, 0, len(results))
	for _, r := range results {
		hits = append(hits, hit{Kind: string(r.Kind), ID: string(r.ID), Name: r.Name})
	}
	return jsonResult(hits)
}

func (h *toolHandler) handleListDevices(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := h.connect.Load(ctx, true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load devices failed: %v", err)), nil
	}
	return jsonResult(list)
}

func (h *toolHandler) handleTransfer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target := request.GetString("device", "")
	if target == "" {
		return mcp.NewToolResultError("device is required"), nil
	}
	list, err := h.connect.Load(ctx, true)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load devices failed: %v", err)), nil
	}
	name, err := h.connect.TransferTo(ctx, list, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("transfer failed: %v", err)), nil
	}
	return mcp.NewToolResultText("playing on " + name), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
