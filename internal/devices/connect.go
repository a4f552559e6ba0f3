package devices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/sync/errgroup"

	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/logging"
)

// ErrUnknownDevice is returned when no device matches a transfer target.
var ErrUnknownDevice = errors.New("no such device")

// ErrNoDeviceID is returned for local devices that did not advertise an id.
var ErrNoDeviceID = errors.New("device id not available")

// ConnectBackend is the slice of the kiosk API used for Spotify Connect.
type ConnectBackend interface {
	ConnectDevices(ctx context.Context) ([]kiosk.ConnectDevice, error)
	LocalDevices(ctx context.Context) ([]kiosk.LocalDevice, error)
	TransferPlayback(ctx context.Context, id spotify.ID) error
	TransferPlaybackLocal(ctx context.Context, deviceID string) error
	ActivateLocalDevice(ctx context.Context, d kiosk.LocalDevice) (kiosk.ActivateResult, error)
}

// DeviceList is the merged Connect device list.
type DeviceList struct {
	API   []kiosk.ConnectDevice
	Local []kiosk.LocalDevice
}

// Empty reports whether there is nothing to show.
func (l DeviceList) Empty() bool {
	return len(l.API) == 0 && len(l.Local) == 0
}

// Connect loads and transfers between Spotify Connect devices.
type Connect struct {
	backend ConnectBackend
	logger  *slog.Logger
}

// NewConnect returns a Connect controller.
func NewConnect(backend ConnectBackend, logger *slog.Logger) *Connect {
	return &Connect{backend: backend, logger: logging.OrDiscard(logger)}
}

// Load fetches Web API and local devices in parallel. Local discovery is
// best effort: its failure is logged and yields no local devices.
func (c *Connect) Load(ctx context.Context, showLocal bool) (DeviceList, error) {
	var (
		api   []kiosk.ConnectDevice
		local []kiosk.LocalDevice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		api, err = c.backend.ConnectDevices(gctx)
		if err != nil {
			return fmt.Errorf("load devices: %w", err)
		}
		return nil
	})
	if showLocal {
		g.Go(func() error {
			var err error
			local, err = c.backend.LocalDevices(gctx)
			if err != nil {
				c.logger.Debug("local device discovery failed", "error", err)
				local = nil
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DeviceList{}, err
	}
	return DeviceList{API: api, Local: FilterLocal(api, local, showLocal)}, nil
}

// FilterLocal drops local devices the Web API already lists. Names match
// when either lowercased name contains the other.
func FilterLocal(api []kiosk.ConnectDevice, local []kiosk.LocalDevice, show bool) []kiosk.LocalDevice {
	if !show || len(local) == 0 {
		return nil
	}
	apiNames := make([]string, 0, len(api))
	for _, d := range api {
		if n := strings.ToLower(strings.TrimSpace(d.Name)); n != "" {
			apiNames = append(apiNames, n)
		}
	}
	out := make([]kiosk.LocalDevice, 0, len(local))
	for _, d := range local {
		name := strings.ToLower(strings.TrimSpace(d.DisplayName()))
		if name != "" && matchesAny(name, apiNames) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesAny(name string, others []string) bool {
	for _, o := range others {
		if strings.Contains(o, name) || strings.Contains(name, o) {
			return true
		}
	}
	return false
}

// Transfer moves playback to a Web API device.
func (c *Connect) Transfer(ctx context.Context, d kiosk.ConnectDevice) error {
	if err := c.backend.TransferPlayback(ctx, d.ID); err != nil {
		return fmt.Errorf("transfer playback: %w", err)
	}
	c.logger.Info("playback transferred", "device", d.Name)
	return nil
}

// LocalTransfer reports how playback reached a local device.
type LocalTransfer struct {
	Activated bool
	Result    kiosk.ActivateResult
}

// TransferLocal moves playback to a local device, running ZeroConf
// activation when the backend asks for it.
func (c *Connect) TransferLocal(ctx context.Context, d kiosk.LocalDevice) (LocalTransfer, error) {
	if d.DeviceID == "" {
		return LocalTransfer{}, ErrNoDeviceID
	}
	err := c.backend.TransferPlaybackLocal(ctx, d.DeviceID)
	if err == nil {
		c.logger.Info("playback transferred", "device", d.DisplayName(), "local", true)
		return LocalTransfer{}, nil
	}
	if !kiosk.NeedsActivation(err) {
		return LocalTransfer{}, fmt.Errorf("transfer playback: %w", err)
	}

	c.logger.Info("activating local device", "device", d.DisplayName(), "ip", d.IP)
	res, err := c.backend.ActivateLocalDevice(ctx, d)
	if err != nil {
		return LocalTransfer{}, fmt.Errorf("activate device: %w", err)
	}
	return LocalTransfer{Activated: true, Result: res}, nil
}

// TransferTo moves playback to the device whose id or name matches target.
// Names compare case-insensitively and Web API devices are tried before
// local ones. It returns the matched device's display name.
func (c *Connect) TransferTo(ctx context.Context, list DeviceList, target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return "", ErrUnknownDevice
	}
	for _, d := range list.API {
		if string(d.ID) == target || strings.EqualFold(d.Name, target) {
			return d.Name, c.Transfer(ctx, d)
		}
	}
	for _, d := range list.Local {
		if (d.DeviceID != "" && d.DeviceID == target) || strings.EqualFold(d.DisplayName(), target) {
			res, err := c.TransferLocal(ctx, d)
			if err != nil {
				return d.DisplayName(), err
			}
			if res.Activated && !res.Result.Success {
				return d.DisplayName(), fmt.Errorf("activate device: %s", res.Result.Message)
			}
			return d.DisplayName(), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDevice, target)
}
