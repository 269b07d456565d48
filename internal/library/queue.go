package library

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type waiter struct {
	memberID    uuid.UUID
	hours       int32
	requestedAt time.Time
}

// bookQueue holds the ephemeral reservation state of one book: the FIFO
// waiting list and the subset of waiters already surfaced to admins.
// Members stay in waiters while notified; approval removes them from both.
// All fields are guarded by mu; callers of the helper methods below must
// hold it.
type bookQueue struct {
	mu       sync.Mutex
	waiters  []waiter
	notified []uuid.UUID
}

func (bq *bookQueue) head() (uuid.UUID, bool) {
	if len(bq.waiters) == 0 {
		return uuid.Nil, false
	}
	return bq.waiters[0].memberID, true
}

func (bq *bookQueue) waiterFor(memberID uuid.UUID) (waiter, bool) {
	for _, w := range bq.waiters {
		if w.memberID == memberID {
			return w, true
		}
	}
	return waiter{}, false
}

// enqueue appends the member in arrival order; duplicate entries keep their
// original position and duration.
func (bq *bookQueue) enqueue(memberID uuid.UUID, hours int32, requestedAt time.Time) {
	if _, ok := bq.waiterFor(memberID); ok {
		return
	}
	bq.waiters = append(bq.waiters, waiter{memberID: memberID, hours: hours, requestedAt: requestedAt})
}

// rank returns the member's 1-based waiting list position, or 0 if absent.
func (bq *bookQueue) rank(memberID uuid.UUID) int64 {
	for i, w := range bq.waiters {
		if w.memberID == memberID {
			return int64(i + 1)
		}
	}
	return 0
}

func (bq *bookQueue) remove(memberID uuid.UUID) bool {
	for i, w := range bq.waiters {
		if w.memberID == memberID {
			bq.waiters = append(bq.waiters[:i], bq.waiters[i+1:]...)
			return true
		}
	}
	return false
}

func (bq *bookQueue) isNotified(memberID uuid.UUID) bool {
	for _, id := range bq.notified {
		if id == memberID {
			return true
		}
	}
	return false
}

func (bq *bookQueue) removeNotified(memberID uuid.UUID) bool {
	for i, id := range bq.notified {
		if id == memberID {
			bq.notified = append(bq.notified[:i], bq.notified[i+1:]...)
			return true
		}
	}
	return false
}

func (bq *bookQueue) empty() bool {
	return len(bq.waiters) == 0 && len(bq.notified) == 0
}
