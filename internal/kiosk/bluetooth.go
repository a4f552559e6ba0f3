package kiosk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrBluetoothUnavailable is returned when the backend has no Bluetooth stack.
var ErrBluetoothUnavailable = errors.New("bluetooth not available")

// BluetoothDevices lists paired and discovered devices.
func (c *Client) BluetoothDevices(ctx context.Context) (BluetoothDevices, error) {
	var payload struct {
		BluetoothDevices
		Error string `json:"error,omitempty"`
	}
	if err := c.get(ctx, "/api/bluetooth/devices", &payload); err != nil {
		return BluetoothDevices{}, err
	}
	if payload.Error != "" {
		return BluetoothDevices{}, fmt.Errorf("%w: %s", ErrBluetoothUnavailable, payload.Error)
	}
	return payload.BluetoothDevices, nil
}

// StartBluetoothScan starts discovery for the given number of seconds.
func (c *Client) StartBluetoothScan(ctx context.Context, seconds int) error {
	return c.ack(ctx, "/api/bluetooth/scan", map[string]any{"action": "start", "duration": seconds})
}

// StopBluetoothScan stops discovery.
func (c *Client) StopBluetoothScan(ctx context.Context) error {
	return c.ack(ctx, "/api/bluetooth/scan", map[string]any{"action": "stop"})
}

// PairBluetooth pairs a device. When the device wants a PIN the result has
// NeedsPIN set and err is nil; retry with the PIN.
func (c *Client) PairBluetooth(ctx context.Context, address, pin string) (PairResult, error) {
	if address == "" {
		return PairResult{}, fmt.Errorf("address required")
	}
	body := map[string]string{"address": address}
	if pin != "" {
		body["pin"] = pin
	}
	var payload PairResult
	if err := c.post(ctx, "/api/bluetooth/pair", body, &payload); err != nil {
		return PairResult{}, err
	}
	if !payload.Success && !payload.NeedsPIN {
		return payload, &APIError{Path: "/api/bluetooth/pair", Status: http.StatusOK, Message: payload.Message}
	}
	return payload, nil
}

// ConnectBluetooth connects a paired device.
func (c *Client) ConnectBluetooth(ctx context.Context, address string) error {
	return c.ack(ctx, "/api/bluetooth/connect", map[string]string{"address": address})
}

// DisconnectBluetooth disconnects a device.
func (c *Client) DisconnectBluetooth(ctx context.Context, address string) error {
	return c.ack(ctx, "/api/bluetooth/disconnect", map[string]string{"address": address})
}

// ForgetBluetooth removes a pairing.
func (c *Client) ForgetBluetooth(ctx context.Context, address string) error {
	var r result
	rel := &url.URL{Path: "/api/bluetooth/forget"}
	if err := c.doURL(ctx, http.MethodDelete, rel, map[string]string{"address": address}, &r); err != nil {
		return err
	}
	return r.err(rel.Path)
}

// BluetoothPower reports whether the adapter is powered. A missing field
// counts as powered.
func (c *Client) BluetoothPower(ctx context.Context) (bool, error) {
	var payload struct {
		Powered *bool `json:"powered"`
	}
	if err := c.get(ctx, "/api/bluetooth/power", &payload); err != nil {
		return false, err
	}
	return payload.Powered == nil || *payload.Powered, nil
}

// SetBluetoothPower powers the adapter on or off.
func (c *Client) SetBluetoothPower(ctx context.Context, on bool) error {
	return c.ack(ctx, "/api/bluetooth/power", map[string]bool{"powered": on})
}
