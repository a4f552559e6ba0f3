package kiosk

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

// ConnectDevices lists Spotify Connect devices known to the Web API.
func (c *Client) ConnectDevices(ctx context.Context) ([]ConnectDevice, error) {
	var payload struct {
		Devices []ConnectDevice `json:"devices"`
	}
	if err := c.get(ctx, "/api/devices", &payload); err != nil {
		return nil, err
	}
	return payload.Devices, nil
}

// LocalDevices lists Spotify Connect devices discovered on the local network.
func (c *Client) LocalDevices(ctx context.Context) ([]LocalDevice, error) {
	var payload struct {
		Devices []LocalDevice `json:"devices"`
		Error   string        `json:"error,omitempty"`
	}
	if err := c.get(ctx, "/api/spotify-connect/local", &payload); err != nil {
		return nil, err
	}
	return payload.Devices, nil
}

// TransferPlayback moves playback to a Web API device.
func (c *Client) TransferPlayback(ctx context.Context, id spotify.ID) error {
	if id == "" {
		return fmt.Errorf("device id required")
	}
	return c.ack(ctx, "/api/transfer-playback", map[string]spotify.ID{"device_id": id})
}

// TransferPlaybackLocal moves playback to a ZeroConf device id. A 404 whose
// body sets needs_activation is reported through NeedsActivation.
func (c *Client) TransferPlaybackLocal(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return fmt.Errorf("device id required")
	}
	return c.ack(ctx, "/api/transfer-playback-local", map[string]string{"device_id": deviceID})
}

// ActivateLocalDevice runs the ZeroConf addUser flow for a local device.
func (c *Client) ActivateLocalDevice(ctx context.Context, d LocalDevice) (ActivateResult, error) {
	body := map[string]any{
		"ip":          d.IP,
		"port":        d.Port,
		"device_name": d.DisplayName(),
	}
	var payload ActivateResult
	if err := c.post(ctx, "/api/devices/local/activate", body, &payload); err != nil {
		return ActivateResult{}, err
	}
	if !payload.Success {
		return payload, &APIError{Path: "/api/devices/local/activate", Status: 200, Message: payload.Message}
	}
	return payload, nil
}

// AudioDevices lists system audio outputs.
func (c *Client) AudioDevices(ctx context.Context) ([]AudioDevice, error) {
	var payload struct {
		Devices []AudioDevice `json:"devices"`
	}
	if err := c.get(ctx, "/api/audio/devices", &payload); err != nil {
		return nil, err
	}
	return payload.Devices, nil
}

// SetAudioOutput switches the system audio output.
func (c *Client) SetAudioOutput(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return fmt.Errorf("device id required")
	}
	return c.ack(ctx, "/api/audio/output", map[string]string{"device_id": deviceID})
}

// SystemVolume returns the system output volume.
func (c *Client) SystemVolume(ctx context.Context) (int, error) {
	var payload struct {
		Volume int `json:"volume"`
	}
	if err := c.get(ctx, "/api/audio/volume", &payload); err != nil {
		return 0, err
	}
	return payload.Volume, nil
}

// SetSystemVolume sets the system output volume in percent.
func (c *Client) SetSystemVolume(ctx context.Context, volume int) error {
	return c.ack(ctx, "/api/audio/volume", map[string]int{"volume": clampPercent(volume)})
}

// VolumeSettings returns the default and max volume.
func (c *Client) VolumeSettings(ctx context.Context) (VolumeSettings, error) {
	var payload VolumeSettings
	if err := c.get(ctx, "/api/settings/volume", &payload); err != nil {
		return VolumeSettings{}, err
	}
	return payload, nil
}

// SetDefaultVolume stores the startup volume.
func (c *Client) SetDefaultVolume(ctx context.Context, volume int) error {
	return c.ack(ctx, "/api/settings/volume", map[string]int{"default_volume": clampPercent(volume)})
}

// SetMaxVolume stores the volume ceiling.
func (c *Client) SetMaxVolume(ctx context.Context, volume int) error {
	return c.ack(ctx, "/api/settings/volume", map[string]int{"max_volume": clampPercent(volume)})
}
