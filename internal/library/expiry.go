package library

import (
	"context"
	"errors"
	"log"
	"time"
)

// Ticker lets tests drive the expiry monitor with a fake channel.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct {
	ticker *time.Ticker
}

func (rt *realTicker) C() <-chan time.Time {
	return rt.ticker.C
}

func (rt *realTicker) Stop() {
	rt.ticker.Stop()
}

func NewTicker(d time.Duration) Ticker {
	return &realTicker{ticker: time.NewTicker(d)}
}

// ExpiredActivities lists active activities past their expected end time.
// Expired holds stay active until an admin intervenes or the monitor runs
// with auto-release on.
func (c *Coordinator) ExpiredActivities(ctx context.Context) ([]ReadingActivity, error) {
	return c.store.ExpiredActivities(ctx, c.now())
}

// RunExpiryMonitor sweeps the ledger on every tick and returns when the
// ticker channel closes. With autoRelease off it only reports overdue
// holds; with it on, it force-returns them, which frees copies and feeds
// the notification queue like a normal return.
func (c *Coordinator) RunExpiryMonitor(ctx context.Context, autoRelease bool, ticker Ticker) {
	for range ticker.C() {
		c.sweepExpired(ctx, autoRelease)
	}
}

func (c *Coordinator) sweepExpired(ctx context.Context, autoRelease bool) {
	expired, err := c.ExpiredActivities(ctx)
	if err != nil {
		log.Print("Failed to list expired reading activities: ", err)
		return
	}
	if len(expired) == 0 {
		return
	}
	if !autoRelease {
		log.Printf("%v reading activities past their expected end time", len(expired))
		return
	}
	for _, activity := range expired {
		_, returnErr := c.ReturnBook(ctx, activity.ID)
		if returnErr != nil && !errors.Is(returnErr, ErrAlreadyReturned) {
			log.Print("Failed to release expired reading activity: ", returnErr)
		}
	}
}
