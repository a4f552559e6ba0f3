package kiosk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// VerifyPIN checks a settings PIN. It returns false without error for a
// wrong PIN.
func (c *Client) VerifyPIN(ctx context.Context, pin string) (bool, error) {
	var payload struct {
		Success bool `json:"success"`
	}
	if err := c.post(ctx, "/api/verify-pin", map[string]string{"pin": pin}, &payload); err != nil {
		if code := StatusCode(err); code == http.StatusUnauthorized || code == http.StatusForbidden {
			return false, nil
		}
		return false, err
	}
	return payload.Success, nil
}

// NetworkStatus reports the kiosk IP and internet reachability.
func (c *Client) NetworkStatus(ctx context.Context) (NetworkStatus, error) {
	var payload NetworkStatus
	if err := c.get(ctx, "/api/system/network-status", &payload); err != nil {
		return NetworkStatus{}, err
	}
	return payload, nil
}

// Shutdown powers the kiosk off.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.ack(ctx, "/api/system/shutdown", nil)
}

// Reboot restarts the kiosk.
func (c *Client) Reboot(ctx context.Context) error {
	return c.ack(ctx, "/api/system/reboot", nil)
}

// PowerSaving reports whether power saving is enabled.
func (c *Client) PowerSaving(ctx context.Context) (bool, error) {
	var payload PowerSaving
	if err := c.get(ctx, "/api/system/power-saving", &payload); err != nil {
		return false, err
	}
	return payload.Enabled, nil
}

// SetPowerSaving toggles power saving. The result reports whether a reboot
// is needed to apply it.
func (c *Client) SetPowerSaving(ctx context.Context, enabled bool) (PowerSaving, error) {
	var payload struct {
		PowerSaving
		Error string `json:"error,omitempty"`
	}
	path := "/api/system/power-saving"
	if err := c.post(ctx, path, map[string]bool{"enabled": enabled}, &payload); err != nil {
		return PowerSaving{}, err
	}
	if payload.Error != "" {
		return PowerSaving{}, &APIError{Path: path, Status: http.StatusOK, Message: payload.Error}
	}
	payload.Enabled = enabled
	return payload.PowerSaving, nil
}

// DeviceInfo returns the kiosk hostname and Spotify player name.
func (c *Client) DeviceInfo(ctx context.Context) (DeviceInfo, error) {
	var payload DeviceInfo
	if err := c.get(ctx, "/api/system/device-info", &payload); err != nil {
		return DeviceInfo{}, err
	}
	return payload, nil
}

// SetHostname renames the kiosk. The PIN is checked by the backend.
func (c *Client) SetHostname(ctx context.Context, hostname, pin string) error {
	hostname = strings.TrimSpace(hostname)
	if hostname == "" {
		return fmt.Errorf("hostname required")
	}
	return c.ack(ctx, "/api/system/hostname", map[string]string{"hostname": hostname, "pin": pin})
}

// SetPlayerName renames the Spotify Connect player. The PIN is checked by
// the backend.
func (c *Client) SetPlayerName(ctx context.Context, name, pin string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("player name required")
	}
	return c.ack(ctx, "/api/system/player-name", map[string]string{"player_name": name, "pin": pin})
}

// CheckUpdate asks the backend whether a newer release exists.
func (c *Client) CheckUpdate(ctx context.Context) (UpdateInfo, error) {
	var payload UpdateInfo
	path := "/api/system/check-update"
	if err := c.get(ctx, path, &payload); err != nil {
		return UpdateInfo{}, err
	}
	if payload.Error != "" {
		return payload, &APIError{Path: path, Status: http.StatusOK, Message: payload.Error}
	}
	return payload, nil
}

// StartUpdate installs the given version. The backend restarts afterwards.
func (c *Client) StartUpdate(ctx context.Context, version string) error {
	return c.ack(ctx, "/api/system/update", map[string]string{"version": version})
}

// AccountInfo returns the Spotify account and app credentials.
func (c *Client) AccountInfo(ctx context.Context) (AccountInfo, error) {
	var payload AccountInfo
	if err := c.get(ctx, "/api/account/info", &payload); err != nil {
		return AccountInfo{}, err
	}
	return payload, nil
}

// SetCredentials replaces the Spotify app credentials. Callers log out
// afterwards so the backend re-authenticates.
func (c *Client) SetCredentials(ctx context.Context, clientID, clientSecret, pin string) error {
	clientID = strings.TrimSpace(clientID)
	clientSecret = strings.TrimSpace(clientSecret)
	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("client id and secret required")
	}
	return c.ack(ctx, "/api/settings/credentials", map[string]string{
		"client_id":     clientID,
		"client_secret": clientSecret,
		"pin":           pin,
	})
}

// Logout ends the backend's Spotify session.
func (c *Client) Logout(ctx context.Context) error {
	return c.get(ctx, "/logout", nil)
}

// SetLanguage stores the UI language on the backend so the kiosk browser
// matches the terminal.
func (c *Client) SetLanguage(ctx context.Context, lang string) error {
	return c.ack(ctx, "/api/settings/language", map[string]string{"language": lang})
}
