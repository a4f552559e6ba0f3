package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/deck/internal/kiosk"
	"github.com/five82/deck/internal/logging"
	"github.com/five82/deck/internal/state"
)

const defaultPollInterval = 5 * time.Second

// Poller runs a refresh function on a fixed cadence in a background
// goroutine. A refresh can be forced with Trigger.
type Poller struct {
	fn       func(context.Context)
	interval time.Duration
	trigger  chan struct{}
	done     chan struct{}
}

// NewPoller returns a stopped poller.
func NewPoller(interval time.Duration, fn func(context.Context)) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Poller{
		fn:       fn,
		interval: interval,
		trigger:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Start runs fn once immediately and then every interval until ctx is
// cancelled. It returns immediately.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		for {
			p.fn(ctx)
			timer := time.NewTimer(p.Interval())
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			case <-p.trigger:
				timer.Stop()
			}
		}
	}()
}

// Done is closed once the poll goroutine has exited.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// Interval returns the cadence.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Trigger runs fn as soon as possible without waiting for the interval.
func (p *Poller) Trigger() {
	signal(p.trigger)
}

func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// NowPlayingSource is the slice of the kiosk API the now-playing poller uses.
type NowPlayingSource interface {
	Current(ctx context.Context) (*kiosk.CurrentPlayback, error)
}

// StartPoller keeps store in sync with /api/current. The returned poller can
// be triggered after transport commands.
func StartPoller(ctx context.Context, store *state.Store, src NowPlayingSource, interval time.Duration, logger *slog.Logger) *Poller {
	p := NewPoller(interval, func(ctx context.Context) {
		refresh(ctx, store, src, logger)
	})
	p.Start(ctx)
	return p
}

func refresh(ctx context.Context, store *state.Store, src NowPlayingSource, logger *slog.Logger) {
	logger = logging.OrDiscard(logger)
	cur, err := src.Current(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		store.Update(nil, err)
		logger.Warn("now playing poll failed", "error", err)
		return
	}
	store.Update(cur, nil)
}
