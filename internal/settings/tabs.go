package settings

import "strings"

// Tab is a settings panel.
type Tab string

const (
	TabTheme     Tab = "theme"
	TabDevices   Tab = "devices"
	TabBluetooth Tab = "bluetooth"
	TabVolume    Tab = "volume"
	TabSystem    Tab = "system"
	TabAccount   Tab = "account"
)

// Tabs lists the panels in display order.
var Tabs = []Tab{TabTheme, TabDevices, TabBluetooth, TabVolume, TabSystem, TabAccount}

// Protected reports whether the tab sits behind the PIN.
func (t Tab) Protected() bool {
	switch t {
	case TabBluetooth, TabVolume, TabSystem, TabAccount:
		return true
	default:
		return false
	}
}

// Key is the message key of the tab label.
func (t Tab) Key() string {
	return "settings." + string(t)
}

// ParseTab resolves a tab name.
func ParseTab(s string) (Tab, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range Tabs {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Next returns the tab after t, wrapping around. Step may be negative.
func (t Tab) Next(step int) Tab {
	idx := 0
	for i, tab := range Tabs {
		if tab == t {
			idx = i
			break
		}
	}
	n := len(Tabs)
	return Tabs[((idx+step)%n+n)%n]
}
