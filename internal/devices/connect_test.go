package devices

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zmb3/spotify/v2"

	"github.com/five82/deck/internal/kiosk"
)

type fakeConnect struct {
	api         []kiosk.ConnectDevice
	local       []kiosk.LocalDevice
	apiErr      error
	localErr    error
	transferred []string
	localErr404 bool
	activated   []kiosk.LocalDevice
}

func (f *fakeConnect) ConnectDevices(context.Context) ([]kiosk.ConnectDevice, error) {
	return f.api, f.apiErr
}

func (f *fakeConnect) LocalDevices(context.Context) ([]kiosk.LocalDevice, error) {
	return f.local, f.localErr
}

func (f *fakeConnect) TransferPlayback(_ context.Context, id spotify.ID) error {
	f.transferred = append(f.transferred, string(id))
	return nil
}

func (f *fakeConnect) TransferPlaybackLocal(_ context.Context, id string) error {
	f.transferred = append(f.transferred, "local:"+id)
	if f.localErr404 {
		return &kiosk.APIError{Path: "/api/transfer-playback-local", Status: 404, NeedsActivation: true}
	}
	return nil
}

func (f *fakeConnect) ActivateLocalDevice(_ context.Context, d kiosk.LocalDevice) (kiosk.ActivateResult, error) {
	f.activated = append(f.activated, d)
	return kiosk.ActivateResult{Success: true, SpotifyDeviceID: "new-id"}, nil
}

func TestFilterLocal(t *testing.T) {
	api := []kiosk.ConnectDevice{{Name: "Living Room"}, {Name: "Kitchen Speaker"}, {Name: ""}}
	local := []kiosk.LocalDevice{
		{Name: "living room"},
		{Name: "mdns-123", RemoteName: "Kitchen"},
		{Name: "Bedroom"},
		{Name: ""},
	}

	got := FilterLocal(api, local, true)
	names := make([]string, len(got))
	for i, d := range got {
		names[i] = d.DisplayName()
	}
	assert.Equal(t, []string{"Bedroom", ""}, names)

	assert.Nil(t, FilterLocal(api, local, false))
}

func TestConnect_Load(t *testing.T) {
	f := &fakeConnect{
		api:   []kiosk.ConnectDevice{{ID: "d1", Name: "Kiosk"}},
		local: []kiosk.LocalDevice{{Name: "Soundbar"}},
	}
	c := NewConnect(f, nil)

	list, err := c.Load(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, list.API, 1)
	assert.Len(t, list.Local, 1)
	assert.False(t, list.Empty())

	list, err = c.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, list.Local)
}

func TestConnect_LoadLocalFailureIsNotFatal(t *testing.T) {
	f := &fakeConnect{localErr: errors.New("mdns down")}
	c := NewConnect(f, nil)

	list, err := c.Load(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, list.Empty())

	f.apiErr = errors.New("spotify down")
	_, err = c.Load(context.Background(), true)
	assert.ErrorContains(t, err, "load devices")
}

func TestConnect_TransferLocalActivatesOnDemand(t *testing.T) {
	f := &fakeConnect{}
	c := NewConnect(f, nil)
	dev := kiosk.LocalDevice{Name: "Soundbar", DeviceID: "abc", IP: "10.0.0.9", Port: 4070}

	out, err := c.TransferLocal(context.Background(), dev)
	require.NoError(t, err)
	assert.False(t, out.Activated)

	f.localErr404 = true
	out, err = c.TransferLocal(context.Background(), dev)
	require.NoError(t, err)
	assert.True(t, out.Activated)
	assert.Equal(t, "new-id", out.Result.SpotifyDeviceID)
	require.Len(t, f.activated, 1)
	assert.Equal(t, "10.0.0.9", f.activated[0].IP)

	_, err = c.TransferLocal(context.Background(), kiosk.LocalDevice{Name: "no id"})
	assert.ErrorIs(t, err, ErrNoDeviceID)
}

func TestConnect_Transfer(t *testing.T) {
	f := &fakeConnect{}
	c := NewConnect(f, nil)
	require.NoError(t, c.Transfer(context.Background(), kiosk.ConnectDevice{ID: "d1"}))
	assert.Equal(t, []string{"d1"}, f.transferred)
}

func TestConnect_TransferTo(t *testing.T) {
	list := DeviceList{
		API:   []kiosk.ConnectDevice{{ID: "d1", Name: "Kiosk"}},
		Local: []kiosk.LocalDevice{{Name: "mdns-1", RemoteName: "Soundbar", DeviceID: "l1"}},
	}

	tests := []struct {
		name     string
		target   string
		wantName string
		wantCall string
	}{
		{name: "api by id", target: "d1", wantName: "Kiosk", wantCall: "d1"},
		{name: "api by name", target: "kiosk", wantName: "Kiosk", wantCall: "d1"},
		{name: "local by id", target: "l1", wantName: "Soundbar", wantCall: "local:l1"},
		{name: "local by name", target: "SOUNDBAR", wantName: "Soundbar", wantCall: "local:l1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeConnect{}
			name, err := NewConnect(f, nil).TransferTo(context.Background(), list, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, []string{tt.wantCall}, f.transferred)
		})
	}

	_, err := NewConnect(&fakeConnect{}, nil).TransferTo(context.Background(), list, "Garage")
	assert.ErrorIs(t, err, ErrUnknownDevice)
}
