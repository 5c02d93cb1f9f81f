package host

import (
	"context"
	"time"

	"github.com/ardnew/watchface/model"
)

// Ticker emits a model.Tick at every minute boundary.
type Ticker struct {
	// Now returns the current local time. Defaults to time.Now.
	Now func() time.Time
	// After waits for the duration to elapse. Defaults to time.After.
	After func(time.Duration) <-chan time.Time
}

// untilNextMinute returns the time remaining from t to the next whole minute.
func untilNextMinute(t time.Time) time.Duration {
	return t.Truncate(time.Minute).Add(time.Minute).Sub(t)
}

// Run sends a Tick to out on every minute boundary until ctx is done.
func (k Ticker) Run(ctx context.Context, out chan<- model.Event) {
	now, after := k.Now, k.After
	if nil == now {
		now = time.Now
	}
	if nil == after {
		after = time.After
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-after(untilNextMinute(now())):
		}
		select {
		case <-ctx.Done():
			return
		case out <- model.Tick{Time: now()}:
		}
	}
}
