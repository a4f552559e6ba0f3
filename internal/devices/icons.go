package devices

import (
	"strings"

	"github.com/five82/deck/internal/kiosk"
)

// Icon is a device glyph.
type Icon string

const (
	IconHeadphones Icon = "🎧"
	IconSpeaker    Icon = "🔊"
	IconBluetooth  Icon = "ᛒ"
	IconComputer   Icon = "💻"
	IconPhone      Icon = "📱"
	IconTV         Icon = "📺"
	IconMusic      Icon = "♫"
)

var headphoneKeywords = []string{
	"headphone", "headphones", "headset", "earphone", "earphones",
	"earbud", "earbuds", "in-ear", "on-ear", "over-ear",
	"koptelefoon", "hoofdtelefoon", "oortelefoon", "oordopjes", "oortjes",
	"airpods", "beats", "bose", "sony wh", "sony wf", "jabra",
	"sennheiser", "jbl", "plantronics", "hyperx", "steelseries",
	"razer", "logitech g", "corsair hs",
	"gaming headset", "wireless headset", "usb headset",
	"hands-free", "headset (", "hp (", "hs (",
	"3.5mm", "audio jack",
}

// AudioIcon picks headphones or speaker from an output's name.
func AudioIcon(name string) Icon {
	lower := strings.ToLower(name)
	for _, kw := range headphoneKeywords {
		if strings.Contains(lower, kw) {
			return IconHeadphones
		}
	}
	return IconSpeaker
}

// BluetoothIcon uses the BlueZ icon hint.
func BluetoothIcon(d kiosk.BluetoothDevice) Icon {
	hint := strings.ToLower(d.Icon)
	if strings.Contains(hint, "audio-headset") || strings.Contains(hint, "audio-headphones") {
		return IconHeadphones
	}
	return IconBluetooth
}

// ConnectIcon maps a Spotify Connect device type.
func ConnectIcon(deviceType string) Icon {
	switch deviceType {
	case "Computer":
		return IconComputer
	case "Smartphone":
		return IconPhone
	case "Speaker":
		return IconSpeaker
	case "TV":
		return IconTV
	default:
		return IconMusic
	}
}

// Status is the state line shown under a Bluetooth device.
type Status int

const (
	StatusAvailable Status = iota
	StatusNotConnected
	StatusConnected
	StatusConnecting
	StatusPairing
)

// Key is the message key for the status text.
func (s Status) Key() string {
	switch s {
	case StatusConnecting:
		return "bt.connecting"
	case StatusPairing:
		return "bt.pairing"
	case StatusConnected:
		return "bt.connected"
	case StatusNotConnected:
		return "bt.notConnected"
	default:
		return "bt.available"
	}
}

// DeviceStatus resolves the status of d given the controller state.
func DeviceStatus(st BluetoothState, d kiosk.BluetoothDevice, paired bool) Status {
	switch {
	case d.Address != "" && d.Address == st.Connecting:
		return StatusConnecting
	case d.Address != "" && d.Address == st.Pairing:
		return StatusPairing
	case d.Connected:
		return StatusConnected
	case paired:
		return StatusNotConnected
	default:
		return StatusAvailable
	}
}
