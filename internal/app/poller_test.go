package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/state"
)

func waitCall(t *testing.T, calls <-chan struct{}, within time.Duration) {
	t.Helper()
	select {
	case <-calls:
	case <-time.After(within):
		t.Fatalf("poll function not called within %v", within)
	}
}

func TestPoller_RunsImmediatelyAndOnTrigger(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 4)
	p := NewPoller(time.Hour, func(context.Context) { calls <- struct{}{} })
	p.Start(ctx)

	waitCall(t, calls, time.Second)
	p.Trigger()
	waitCall(t, calls, time.Second)

	cancel()
	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatalf("poller did not stop after cancel")
	}
}

func TestPoller_IgnoresNonPositiveInterval(t *testing.T) {
	p := NewPoller(0, func(context.Context) {})
	if p.Interval() != defaultPollInterval {
		t.Fatalf("Interval = %v, want %v", p.Interval(), defaultPollInterval)
	}
}

type fakeNowPlaying struct {
	mu   sync.Mutex
	errs []error
	cur  *kiosk.CurrentPlayback
}

func (f *fakeNowPlaying) Current(context.Context) (*kiosk.CurrentPlayback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return f.cur, nil
}

func TestRefresh_TracksFailuresAndRecovers(t *testing.T) {
	store := &state.Store{}
	src := &fakeNowPlaying{
		errs: []error{errors.New("down"), errors.New("still down")},
		cur: &kiosk.CurrentPlayback{
			Playing: true,
			Track:   &kiosk.CurrentTrack{ID: "t1", Name: "Song", DurationMS: 200000, ProgressMS: 1000},
		},
	}
	ctx := context.Background()

	refresh(ctx, store, src, nil)
	refresh(ctx, store, src, nil)
	snap := store.Snapshot()
	if !snap.IsOffline() || snap.ConsecutiveFailures != 2 {
		t.Fatalf("after two failures: offline=%v failures=%d", snap.IsOffline(), snap.ConsecutiveFailures)
	}

	refresh(ctx, store, src, nil)
	snap = store.Snapshot()
	if snap.IsOffline() || snap.LastError != nil {
		t.Fatalf("after recovery: offline=%v err=%v", snap.IsOffline(), snap.LastError)
	}
	if snap.Player.Title != "Song" || !snap.Player.Playing {
		t.Fatalf("Player = %+v, want playing Song", snap.Player)
	}
}

func TestRefresh_CancelledContextIsNotAFailure(t *testing.T) {
	store := &state.Store{}
	src := &fakeNowPlaying{errs: []error{context.Canceled}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	refresh(ctx, store, src, nil)
	if snap := store.Snapshot(); snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
}
