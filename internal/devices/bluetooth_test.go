package devices

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/deck/internal/kiosk"
)

type fakeBT struct {
	devices  kiosk.BluetoothDevices
	loadErr  error
	calls    []string
	pinFirst bool
	powerErr error
	powered  bool
	onPair   func()
}

func (f *fakeBT) BluetoothDevices(context.Context) (kiosk.BluetoothDevices, error) {
	f.calls = append(f.calls, "list")
	return f.devices, f.loadErr
}

func (f *fakeBT) StartBluetoothScan(_ context.Context, seconds int) error {
	f.calls = append(f.calls, fmt.Sprintf("scan:%d", seconds))
	return nil
}

func (f *fakeBT) StopBluetoothScan(context.Context) error {
	f.calls = append(f.calls, "stop")
	return nil
}

func (f *fakeBT) PairBluetooth(_ context.Context, address, pin string) (kiosk.PairResult, error) {
	f.calls = append(f.calls, "pair:"+address+":"+pin)
	if f.onPair != nil {
		f.onPair()
	}
	if f.pinFirst && pin == "" {
		return kiosk.PairResult{NeedsPIN: true}, nil
	}
	return kiosk.PairResult{Success: true}, nil
}

func (f *fakeBT) ConnectBluetooth(_ context.Context, address string) error {
	f.calls = append(f.calls, "connect:"+address)
	return nil
}

func (f *fakeBT) DisconnectBluetooth(_ context.Context, address string) error {
	f.calls = append(f.calls, "disconnect:"+address)
	return nil
}

func (f *fakeBT) ForgetBluetooth(_ context.Context, address string) error {
	f.calls = append(f.calls, "forget:"+address)
	return nil
}

func (f *fakeBT) BluetoothPower(context.Context) (bool, error) { return f.powered, nil }

func (f *fakeBT) SetBluetoothPower(_ context.Context, on bool) error {
	if f.powerErr != nil {
		return f.powerErr
	}
	f.powered = on
	return nil
}

func sampleDevices() kiosk.BluetoothDevices {
	return kiosk.BluetoothDevices{
		Paired: []kiosk.BluetoothDevice{
			{Address: "AA", Name: "Headphones", Connected: true, Paired: true, Codec: "AAC"},
			{Address: "BB", Name: "Speaker", Paired: true},
		},
		Discovered: []kiosk.BluetoothDevice{{Address: "CC", Name: "New"}},
	}
}

func loaded(t *testing.T, f *fakeBT, c *clock) *Bluetooth {
	t.Helper()
	f.devices = sampleDevices()
	b := NewBluetooth(f, nil, c.Now)
	require.NoError(t, b.Load(context.Background()))
	f.calls = nil
	return b
}

func TestBluetooth_SelectDispatches(t *testing.T) {
	f := &fakeBT{}
	b := loaded(t, f, newClock())
	ctx := context.Background()

	out, err := b.Select(ctx, "AA")
	require.NoError(t, err)
	assert.Equal(t, OutcomeDisconnected, out)

	out, err = b.Select(ctx, "BB")
	require.NoError(t, err)
	assert.Equal(t, OutcomeConnected, out)

	out, err = b.Select(ctx, "CC")
	require.NoError(t, err)
	assert.Equal(t, OutcomeConnected, out, "pair auto-connects")

	assert.Equal(t, []string{
		"disconnect:AA", "list",
		"connect:BB", "list",
		"pair:CC:", "connect:CC", "list",
	}, f.calls)

	_, err = b.Select(ctx, "ZZ")
	assert.ErrorIs(t, err, ErrUnknownBluetoothDevice)
}

func TestBluetooth_PinFlow(t *testing.T) {
	f := &fakeBT{pinFirst: true}
	b := loaded(t, f, newClock())
	ctx := context.Background()

	out, err := b.Select(ctx, "CC")
	require.NoError(t, err)
	assert.Equal(t, OutcomeNeedsPIN, out)
	assert.Equal(t, "CC", b.State().PendingPIN)
	assert.False(t, b.State().Busy())

	_, err = b.SubmitPIN(ctx, "   ")
	assert.ErrorIs(t, err, ErrPINRequired)

	out, err = b.SubmitPIN(ctx, " 0000 ")
	require.NoError(t, err)
	assert.Equal(t, OutcomeConnected, out)
	assert.Empty(t, b.State().PendingPIN)
	assert.Contains(t, f.calls, "pair:CC:0000")

	b.state.PendingPIN = "CC"
	b.CancelPIN()
	_, err = b.SubmitPIN(ctx, "1234")
	assert.ErrorIs(t, err, ErrPINRequired)
}

func TestBluetooth_IgnoresInputWhileBusy(t *testing.T) {
	f := &fakeBT{}
	b := loaded(t, f, newClock())

	var during error
	f.onPair = func() {
		_, during = b.Select(context.Background(), "BB")
		assert.Equal(t, StatusPairing, DeviceStatus(b.State(), kiosk.BluetoothDevice{Address: "CC"}, false))
	}
	_, err := b.Pair(context.Background(), "CC", "")
	require.NoError(t, err)
	assert.ErrorIs(t, during, ErrBluetoothBusy)
	assert.NotContains(t, f.calls, "connect:BB")
}

func TestBluetooth_ScanAutoStops(t *testing.T) {
	f := &fakeBT{}
	c := newClock()
	b := loaded(t, f, c)
	ctx := context.Background()

	assert.Equal(t, BluetoothPoll, b.PollInterval())

	on, err := b.ToggleScan(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []string{"scan:30"}, f.calls)
	assert.Equal(t, BluetoothScanPoll, b.PollInterval())

	c.Advance(29 * time.Second)
	require.NoError(t, b.Load(ctx))
	assert.True(t, b.State().Scanning, "backend says idle but local scan window is open")

	c.Advance(time.Second)
	assert.Equal(t, BluetoothPoll, b.PollInterval())
	assert.False(t, b.State().Scanning)
}

func TestBluetooth_ToggleScanStops(t *testing.T) {
	f := &fakeBT{}
	b := loaded(t, f, newClock())
	ctx := context.Background()

	_, err := b.ToggleScan(ctx)
	require.NoError(t, err)
	on, err := b.ToggleScan(ctx)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Equal(t, []string{"scan:30", "stop", "list"}, f.calls)
}

func TestBluetooth_PowerRevertsOnFailure(t *testing.T) {
	f := &fakeBT{powered: true}
	b := loaded(t, f, newClock())
	ctx := context.Background()

	require.NoError(t, b.LoadPower(ctx))
	assert.True(t, b.State().Powered)

	f.powerErr = errors.New("rfkill")
	require.Error(t, b.SetPower(ctx, false))
	assert.True(t, b.State().Powered)

	f.powerErr = nil
	require.NoError(t, b.SetPower(ctx, false))
	assert.False(t, b.State().Powered)
}

func TestBluetooth_Unavailable(t *testing.T) {
	f := &fakeBT{loadErr: fmt.Errorf("%w: no adapter", kiosk.ErrBluetoothUnavailable)}
	b := NewBluetooth(f, nil, nil)

	err := b.Load(context.Background())
	require.Error(t, err)
	assert.True(t, b.State().Unavailable)
}

func TestBluetooth_Forget(t *testing.T) {
	f := &fakeBT{}
	b := loaded(t, f, newClock())
	require.NoError(t, b.Forget(context.Background(), "BB"))
	assert.Equal(t, []string{"forget:BB", "list"}, f.calls)
}

func TestDeviceStatusAndIcons(t *testing.T) {
	st := BluetoothState{Connecting: "AA"}
	assert.Equal(t, StatusConnecting, DeviceStatus(st, kiosk.BluetoothDevice{Address: "AA", Connected: true}, true))
	assert.Equal(t, StatusConnected, DeviceStatus(st, kiosk.BluetoothDevice{Address: "BB", Connected: true}, true))
	assert.Equal(t, StatusNotConnected, DeviceStatus(st, kiosk.BluetoothDevice{Address: "BB"}, true))
	assert.Equal(t, StatusAvailable, DeviceStatus(st, kiosk.BluetoothDevice{Address: "CC"}, false))
	assert.Equal(t, "bt.notConnected", StatusNotConnected.Key())

	assert.Equal(t, IconHeadphones, AudioIcon("Sony WH-1000XM4"))
	assert.Equal(t, IconHeadphones, AudioIcon("Koptelefoon"))
	assert.Equal(t, IconSpeaker, AudioIcon("HDMI Output"))
	assert.Equal(t, IconHeadphones, BluetoothIcon(kiosk.BluetoothDevice{Icon: "audio-headphones"}))
	assert.Equal(t, IconBluetooth, BluetoothIcon(kiosk.BluetoothDevice{Icon: "phone"}))
	assert.Equal(t, IconTV, ConnectIcon("TV"))
	assert.Equal(t, IconMusic, ConnectIcon("CastAudio"))
}
