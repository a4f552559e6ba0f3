package devices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/logging"
)

const (
	// ScanDuration is how long discovery runs before it is stopped locally.
	ScanDuration = 30 * time.Second
	// BluetoothPoll is the device poll interval.
	BluetoothPoll = 3 * time.Second
	// BluetoothScanPoll is the poll interval while scanning.
	BluetoothScanPoll = 2 * time.Second
)

var (
	// ErrBluetoothBusy is returned while a connect or pair is running.
	ErrBluetoothBusy = errors.New("bluetooth operation in progress")
	// ErrPINRequired is returned when a PIN prompt is submitted empty.
	ErrPINRequired = errors.New("pin required")
	// ErrUnknownBluetoothDevice is returned for addresses not in the current lists.
	ErrUnknownBluetoothDevice = errors.New("unknown bluetooth device")
)

// BluetoothBackend is the slice of the kiosk API used by the controller.
type BluetoothBackend interface {
	BluetoothDevices(ctx context.Context) (kiosk.BluetoothDevices, error)
	StartBluetoothScan(ctx context.Context, seconds int) error
	StopBluetoothScan(ctx context.Context) error
	PairBluetooth(ctx context.Context, address, pin string) (kiosk.PairResult, error)
	ConnectBluetooth(ctx context.Context, address string) error
	DisconnectBluetooth(ctx context.Context, address string) error
	ForgetBluetooth(ctx context.Context, address string) error
	BluetoothPower(ctx context.Context) (bool, error)
	SetBluetoothPower(ctx context.Context, on bool) error
}

// BluetoothState is a copy of the controller state for rendering.
type BluetoothState struct {
	Powered     bool
	Unavailable bool
	Scanning    bool
	Paired      []kiosk.BluetoothDevice
	Discovered  []kiosk.BluetoothDevice
	Connecting  string
	Pairing     string
	PendingPIN  string
}

// Busy reports whether input should be ignored.
func (s BluetoothState) Busy() bool {
	return s.Connecting != "" || s.Pairing != ""
}

// Outcome is what selecting or pairing a device did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeConnected
	OutcomeDisconnected
	OutcomeNeedsPIN
	OutcomeForgotten
)

// Bluetooth drives the Bluetooth settings tab.
type Bluetooth struct {
	backend BluetoothBackend
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	state     BluetoothState
	scanStart time.Time
}

// NewBluetooth returns a controller that assumes the adapter is powered
// until told otherwise.
func NewBluetooth(backend BluetoothBackend, logger *slog.Logger, now func() time.Time) *Bluetooth {
	if now == nil {
		now = time.Now
	}
	return &Bluetooth{
		backend: backend,
		logger:  logging.OrDiscard(logger),
		now:     now,
		state:   BluetoothState{Powered: true},
	}
}

// State returns a copy of the current state.
func (b *Bluetooth) State() BluetoothState {
	b.mu.Lock()
	defer b.mu.Unlock()
	st := b.state
	st.Paired = append([]kiosk.BluetoothDevice(nil), b.state.Paired...)
	st.Discovered = append([]kiosk.BluetoothDevice(nil), b.state.Discovered...)
	return st
}

// PollInterval is the current device poll cadence.
func (b *Bluetooth) PollInterval() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expireLocked()
	if b.state.Scanning {
		return BluetoothScanPoll
	}
	return BluetoothPoll
}

// Load refreshes the device lists.
func (b *Bluetooth) Load(ctx context.Context) error {
	devs, err := b.backend.BluetoothDevices(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		if errors.Is(err, kiosk.ErrBluetoothUnavailable) {
			b.state.Unavailable = true
			b.state.Paired, b.state.Discovered = nil, nil
		}
		return fmt.Errorf("load bluetooth devices: %w", err)
	}
	b.state.Unavailable = false
	b.state.Paired = devs.Paired
	b.state.Discovered = devs.Discovered
	b.state.Scanning = devs.Scanning || b.scanActiveLocked()
	b.expireLocked()
	return nil
}

// ToggleScan starts discovery, or stops it when already scanning. It
// reports whether a scan is now running.
func (b *Bluetooth) ToggleScan(ctx context.Context) (bool, error) {
	b.mu.Lock()
	scanning := b.state.Scanning
	b.mu.Unlock()

	if scanning {
		err := b.backend.StopBluetoothScan(ctx)
		b.mu.Lock()
		b.state.Scanning = false
		b.scanStart = time.Time{}
		b.mu.Unlock()
		if err != nil {
			return false, fmt.Errorf("stop scan: %w", err)
		}
		return false, b.Load(ctx)
	}

	if err := b.backend.StartBluetoothScan(ctx, int(ScanDuration/time.Second)); err != nil {
		return false, fmt.Errorf("start scan: %w", err)
	}
	b.mu.Lock()
	b.state.Scanning = true
	b.scanStart = b.now()
	b.mu.Unlock()
	b.logger.Info("bluetooth scan started")
	return true, nil
}

// Select acts on a device: disconnect when connected, connect when paired,
// pair otherwise.
func (b *Bluetooth) Select(ctx context.Context, address string) (Outcome, error) {
	b.mu.Lock()
	if b.state.Busy() {
		b.mu.Unlock()
		return OutcomeNone, ErrBluetoothBusy
	}
	dev, paired, ok := b.findLocked(address)
	b.mu.Unlock()
	if !ok {
		return OutcomeNone, ErrUnknownBluetoothDevice
	}

	switch {
	case dev.Connected:
		return OutcomeDisconnected, b.Disconnect(ctx, address)
	case paired:
		return OutcomeConnected, b.Connect(ctx, address)
	default:
		return b.Pair(ctx, address, "")
	}
}

// Pair pairs a device and connects it. When the device asks for a PIN the
// outcome is OutcomeNeedsPIN and SubmitPIN continues the flow.
func (b *Bluetooth) Pair(ctx context.Context, address, pin string) (Outcome, error) {
	if !b.claim(&b.state.Pairing, address) {
		return OutcomeNone, ErrBluetoothBusy
	}
	res, err := b.backend.PairBluetooth(ctx, address, pin)
	b.release(&b.state.Pairing)
	if err != nil {
		return OutcomeNone, fmt.Errorf("pair: %w", err)
	}
	if res.NeedsPIN {
		b.mu.Lock()
		b.state.PendingPIN = address
		b.mu.Unlock()
		return OutcomeNeedsPIN, nil
	}
	b.logger.Info("bluetooth device paired", "address", address)
	if err := b.Connect(ctx, address); err != nil {
		return OutcomeNone, err
	}
	return OutcomeConnected, nil
}

// SubmitPIN retries the pending pair with pin.
func (b *Bluetooth) SubmitPIN(ctx context.Context, pin string) (Outcome, error) {
	pin = strings.TrimSpace(pin)
	b.mu.Lock()
	address := b.state.PendingPIN
	if pin == "" || address == "" {
		b.mu.Unlock()
		return OutcomeNone, ErrPINRequired
	}
	b.state.PendingPIN = ""
	b.mu.Unlock()
	return b.Pair(ctx, address, pin)
}

// CancelPIN drops the pending PIN prompt.
func (b *Bluetooth) CancelPIN() {
	b.mu.Lock()
	b.state.PendingPIN = ""
	b.mu.Unlock()
}

// Connect connects a paired device and reloads the lists.
func (b *Bluetooth) Connect(ctx context.Context, address string) error {
	return b.link(ctx, address, "connect", b.backend.ConnectBluetooth)
}

// Disconnect disconnects a device and reloads the lists.
func (b *Bluetooth) Disconnect(ctx context.Context, address string) error {
	return b.link(ctx, address, "disconnect", b.backend.DisconnectBluetooth)
}

func (b *Bluetooth) link(ctx context.Context, address, verb string, call func(context.Context, string) error) error {
	if !b.claim(&b.state.Connecting, address) {
		return ErrBluetoothBusy
	}
	err := call(ctx, address)
	b.release(&b.state.Connecting)
	if err != nil {
		return fmt.Errorf("%s: %w", verb, err)
	}
	b.logger.Info("bluetooth "+verb, "address", address)
	if lerr := b.Load(ctx); lerr != nil {
		b.logger.Debug("bluetooth reload failed", "error", lerr)
	}
	return nil
}

// Forget removes a pairing. Confirmation is the caller's job.
func (b *Bluetooth) Forget(ctx context.Context, address string) error {
	err := b.backend.ForgetBluetooth(ctx, address)
	if lerr := b.Load(ctx); lerr != nil {
		b.logger.Debug("bluetooth reload failed", "error", lerr)
	}
	if err != nil {
		return fmt.Errorf("forget: %w", err)
	}
	b.logger.Info("bluetooth device forgotten", "address", address)
	return nil
}

// LoadPower reads the adapter power state.
func (b *Bluetooth) LoadPower(ctx context.Context) error {
	on, err := b.backend.BluetoothPower(ctx)
	if err != nil {
		return fmt.Errorf("load bluetooth power: %w", err)
	}
	b.mu.Lock()
	b.state.Powered = on
	b.mu.Unlock()
	return nil
}

// SetPower powers the adapter. On failure the previous state is kept.
func (b *Bluetooth) SetPower(ctx context.Context, on bool) error {
	if err := b.backend.SetBluetoothPower(ctx, on); err != nil {
		return fmt.Errorf("set bluetooth power: %w", err)
	}
	b.mu.Lock()
	b.state.Powered = on
	b.mu.Unlock()
	if on {
		if err := b.Load(ctx); err != nil {
			b.logger.Debug("bluetooth reload failed", "error", err)
		}
	}
	return nil
}

func (b *Bluetooth) claim(field *string, address string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state.Busy() {
		return false
	}
	*field = address
	return true
}

func (b *Bluetooth) release(field *string) {
	b.mu.Lock()
	*field = ""
	b.mu.Unlock()
}

func (b *Bluetooth) findLocked(address string) (kiosk.BluetoothDevice, bool, bool) {
	for _, d := range b.state.Paired {
		if d.Address == address {
			return d, true, true
		}
	}
	for _, d := range b.state.Discovered {
		if d.Address == address {
			return d, false, true
		}
	}
	return kiosk.BluetoothDevice{}, false, false
}

func (b *Bluetooth) scanActiveLocked() bool {
	return !b.scanStart.IsZero() && b.now().Sub(b.scanStart) < ScanDuration
}

// expireLocked ends a locally started scan once ScanDuration has passed.
func (b *Bluetooth) expireLocked() {
	if b.scanStart.IsZero() || b.scanActiveLocked() {
		return
	}
	b.scanStart = time.Time{}
	b.state.Scanning = false
}
