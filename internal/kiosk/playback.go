package kiosk

import (
	"context"
	"fmt"
)

// Current returns the now-playing state.
func (c *Client) Current(ctx context.Context) (*CurrentPlayback, error) {
	var payload CurrentPlayback
	if err := c.get(ctx, "/api/current", &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Play resumes playback.
func (c *Client) Play(ctx context.Context) error {
	return c.ack(ctx, "/api/play", nil)
}

// Pause pauses playback.
func (c *Client) Pause(ctx context.Context) error {
	return c.ack(ctx, "/api/pause", nil)
}

// Next skips to the next track.
func (c *Client) Next(ctx context.Context) error {
	return c.ack(ctx, "/api/next", nil)
}

// Previous returns to the previous track.
func (c *Client) Previous(ctx context.Context) error {
	return c.ack(ctx, "/api/previous", nil)
}

// PlayTrack starts a track, optionally within a playlist or album context.
func (c *Client) PlayTrack(ctx context.Context, req PlayTrackRequest) error {
	if req.URI == "" {
		return fmt.Errorf("track uri required")
	}
	return c.ack(ctx, "/api/play-track", req)
}

// SetShuffle turns shuffle on or off.
func (c *Client) SetShuffle(ctx context.Context, on bool) error {
	return c.ack(ctx, "/api/shuffle", map[string]bool{"state": on})
}

// Seek moves the playback position.
func (c *Client) Seek(ctx context.Context, positionMS int64) error {
	if positionMS < 0 {
		positionMS = 0
	}
	return c.ack(ctx, "/api/seek", map[string]int64{"position_ms": positionMS})
}

// SetSpotifyVolume sets the Spotify device volume.
func (c *Client) SetSpotifyVolume(ctx context.Context, percent int) error {
	return c.ack(ctx, "/api/volume", map[string]int{"volume_percent": clampPercent(percent)})
}

func (c *Client) ack(ctx context.Context, path string, body any) error {
	var r result
	if err := c.post(ctx, path, body, &r); err != nil {
		return err
	}
	return r.err(path)
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
