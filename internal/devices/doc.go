// Package devices holds the controllers behind the device settings tabs:
// system audio output switching, Spotify Connect transfer and Bluetooth.
//
// AudioSwitcher serializes output switches. A second request while one is
// running fails with ErrSwitchInFlight, and a request within SwitchCooldown
// of the last success fails with a *CooldownError. Neither reaches the
// backend.
//
// Bluetooth tracks which device is connecting or pairing and refuses new
// input until that finishes. A scan started here is considered over after
// ScanDuration, at which point PollInterval drops back to BluetoothPoll.
package devices
