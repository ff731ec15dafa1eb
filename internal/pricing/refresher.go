package pricing

import (
	"context"
	"sync"
	"time"

	"github.com/tvarnsen/indyplan/internal/logger"
)

// Refreshable is anything whose cached data can be re-fetched.
type Refreshable interface {
	Refresh(ctx context.Context) error
}

// Refresher re-fetches market prices on a fixed interval so interactive
// requests rarely pay the upstream round trip.
type Refresher struct {
	target   Refreshable
	interval time.Duration
	quit     chan struct{}
	wg       sync.WaitGroup
}

// NewRefresher creates a refresher for target at the given interval.
func NewRefresher(target Refreshable, interval time.Duration) *Refresher {
	return &Refresher{
		target:   target,
		interval: interval,
		quit:     make(chan struct{}),
	}
}

// Start launches the refresh loop. The first refresh happens after one full
// interval; the initial fetch is lazy on first use.
func (r *Refresher) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				if err := r.target.Refresh(ctx); err != nil {
					logger.FromContext(ctx).Warn("Background price refresh failed", "error", err)
				}
				cancel()
			case <-r.quit:
				return
			}
		}
	}()
}

// Stop stops the refresh loop and waits for it to exit.
func (r *Refresher) Stop() {
	close(r.quit)
	r.wg.Wait()
}
