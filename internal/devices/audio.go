package devices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/five82/deck/internal/cache"
	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/logging"
)

const (
	// SwitchCooldown is the quiet period after a successful output switch.
	SwitchCooldown = 2 * time.Second
	// SwitchSettle is the pause before reloading after a switch so the
	// system default has moved.
	SwitchSettle = 100 * time.Millisecond
	// AudioDevicesTTL bounds how long the device list is served from memory.
	AudioDevicesTTL = 60 * time.Second
)

// ErrSwitchInFlight is returned while another switch is running.
var ErrSwitchInFlight = errors.New("audio switch already in progress")

// CooldownError is returned when a switch is requested inside the cooldown.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("audio switch cooling down: wait %ds", e.Seconds())
}

// Seconds is Remaining rounded up to whole seconds.
func (e *CooldownError) Seconds() int {
	return int(math.Ceil(e.Remaining.Seconds()))
}

// AudioBackend is the slice of the kiosk API used for output switching.
type AudioBackend interface {
	AudioDevices(ctx context.Context) ([]kiosk.AudioDevice, error)
	SetAudioOutput(ctx context.Context, deviceID string) error
	SystemVolume(ctx context.Context) (int, error)
}

// SwitchResult is the state reloaded after a successful switch.
type SwitchResult struct {
	Devices []kiosk.AudioDevice
	Volume  int
	// ReloadErr is set when the output changed but the follow-up reload
	// of devices or volume failed.
	ReloadErr error
}

// AudioSwitcher lists outputs and serializes switches between them.
type AudioSwitcher struct {
	backend AudioBackend
	memo    *cache.Memo[[]kiosk.AudioDevice]
	logger  *slog.Logger
	now     func() time.Time
	sleep   func(context.Context, time.Duration) error

	mu         sync.Mutex
	inFlight   bool
	lastSwitch time.Time
}

// AudioOption configures an AudioSwitcher.
type AudioOption func(*AudioSwitcher)

// WithAudioClock injects the time source used for the cooldown and memo.
func WithAudioClock(now func() time.Time) AudioOption {
	return func(s *AudioSwitcher) {
		if now != nil {
			s.now = now
		}
	}
}

// WithAudioSleep replaces the settle wait.
func WithAudioSleep(sleep func(context.Context, time.Duration) error) AudioOption {
	return func(s *AudioSwitcher) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithAudioLogger sets the logger.
func WithAudioLogger(logger *slog.Logger) AudioOption {
	return func(s *AudioSwitcher) {
		s.logger = logging.OrDiscard(logger)
	}
}

// NewAudioSwitcher returns a switcher with an empty device memo.
func NewAudioSwitcher(backend AudioBackend, opts ...AudioOption) *AudioSwitcher {
	s := &AudioSwitcher{
		backend: backend,
		logger:  logging.Discard(),
		now:     time.Now,
		sleep:   sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.memo = cache.NewMemo[[]kiosk.AudioDevice](AudioDevicesTTL, s.now)
	return s
}

// Cached returns the memoized device list if it is still fresh. Callers show
// it right away and refresh in the background.
func (s *AudioSwitcher) Cached() ([]kiosk.AudioDevice, bool) {
	return s.memo.Get()
}

// Refresh fetches the device list and memoizes it.
func (s *AudioSwitcher) Refresh(ctx context.Context) ([]kiosk.AudioDevice, error) {
	list, err := s.backend.AudioDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("load audio devices: %w", err)
	}
	s.memo.Set(list)
	return list, nil
}

// Switch moves system audio to deviceID. It fails fast with
// ErrSwitchInFlight or a *CooldownError without calling the backend. Once
// the backend accepts the switch the error is nil; reload failures are
// reported in SwitchResult.ReloadErr.
func (s *AudioSwitcher) Switch(ctx context.Context, deviceID string) (SwitchResult, error) {
	if err := s.begin(); err != nil {
		return SwitchResult{}, err
	}
	defer s.end()

	if err := s.backend.SetAudioOutput(ctx, deviceID); err != nil {
		s.logger.Warn("audio output switch failed", "device", deviceID, "error", err)
		return SwitchResult{}, fmt.Errorf("switch audio output: %w", err)
	}

	s.mu.Lock()
	s.lastSwitch = s.now()
	s.mu.Unlock()
	s.memo.Invalidate()
	s.logger.Info("audio output switched", "device", deviceID)

	var res SwitchResult
	if err := s.sleep(ctx, SwitchSettle); err != nil {
		res.ReloadErr = err
		return res, nil
	}
	list, err := s.Refresh(ctx)
	if err != nil {
		res.ReloadErr = err
		return res, nil
	}
	res.Devices = list
	vol, err := s.backend.SystemVolume(ctx)
	if err != nil {
		res.ReloadErr = fmt.Errorf("load volume: %w", err)
		return res, nil
	}
	res.Volume = vol
	return res, nil
}

func (s *AudioSwitcher) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrSwitchInFlight
	}
	if !s.lastSwitch.IsZero() {
		if since := s.now().Sub(s.lastSwitch); since < SwitchCooldown {
			return &CooldownError{Remaining: SwitchCooldown - since}
		}
	}
	s.inFlight = true
	return nil
}

func (s *AudioSwitcher) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
