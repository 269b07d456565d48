package library

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ReadDurationHours is the fixed duration of an in-library read request.
const ReadDurationHours = 6

// Coordinator arbitrates book copies between members: it owns the per-book
// waiting lists and drives every state change of the lending ledger.
//
// Durable records go through the Store; queue state is in-memory only and
// starts empty on boot. All operations touching one book's copies or queue
// run under that book's lock, so two concurrent requests can never both see
// the last copy as free. Operations on different books proceed in parallel.
type Coordinator struct {
	store Store
	now   func() time.Time

	mu     sync.Mutex
	queues map[uuid.UUID]*bookQueue
}

func NewCoordinator(store Store) *Coordinator {
	return &Coordinator{
		store:  store,
		now:    time.Now,
		queues: make(map[uuid.UUID]*bookQueue),
	}
}

func (c *Coordinator) queueFor(bookID uuid.UUID) *bookQueue {
	c.mu.Lock()
	defer c.mu.Unlock()
	bq, ok := c.queues[bookID]
	if !ok {
		bq = &bookQueue{}
		c.queues[bookID] = bq
	}
	return bq
}

// RequestBook grants the book immediately when a copy is free and nobody
// else is ahead in the queue; otherwise it appends the member to the
// waiting list and reports the 1-based rank.
func (c *Coordinator) RequestBook(ctx context.Context, memberID uuid.UUID, bookID uuid.UUID, hours int32) (BorrowResult, error) {
	if hours < 1 {
		return BorrowResult{}, ErrInvalidDuration
	}

	member, err := c.store.GetMember(ctx, memberID)
	if err != nil {
		return BorrowResult{}, err
	}
	if !member.Active {
		return BorrowResult{}, ErrMemberInactive
	}

	alreadyHolds, err := c.store.HasActiveActivity(ctx, memberID, bookID)
	if err != nil {
		return BorrowResult{}, err
	}
	if alreadyHolds {
		return BorrowResult{Granted: true, Message: "You have already borrowed the book"}, nil
	}

	bq := c.queueFor(bookID)
	bq.mu.Lock()
	defer bq.mu.Unlock()

	book, err := c.store.GetBook(ctx, bookID)
	if err != nil {
		return BorrowResult{}, err
	}

	head, hasQueue := bq.head()
	queueMessage := ""
	if hasQueue && head != memberID {
		queueMessage = " Someone else requested this book first, you'll get your turn soon!"
	} else if book.AvailableCopies > 0 {
		start := c.now()
		activity, createErr := c.store.CreateActivity(ctx, bookID, memberID, start, start.Add(time.Duration(hours)*time.Hour))
		if createErr != nil && !errors.Is(createErr, ErrBookUnavailable) {
			return BorrowResult{}, createErr
		}
		if createErr == nil {
			bq.remove(memberID)
			bq.removeNotified(memberID)
			return BorrowResult{
				Granted:  true,
				Message:  fmt.Sprintf("Book %v assigned successfully to %v", book.Title, member.Name),
				Activity: &activity,
			}, nil
		}
	}

	bq.enqueue(memberID, hours, c.now())
	return BorrowResult{
		Granted: false,
		Message: "Book not available." + queueMessage + " You are in waiting list.",
		Rank:    bq.rank(memberID),
	}, nil
}

// ReturnBook closes the activity, frees the copy and surfaces the next
// waiting member to admins. It does not auto-promote anyone; promotion
// always goes through ApproveNextReader.
func (c *Coordinator) ReturnBook(ctx context.Context, activityID uuid.UUID) (ReadingActivity, error) {
	activity, err := c.store.CloseActivity(ctx, activityID)
	if err != nil {
		return ReadingActivity{}, err
	}

	bq := c.queueFor(activity.Book.ID)
	bq.mu.Lock()
	c.refillNotificationsLocked(ctx, bq, activity.Book.ID)
	bq.mu.Unlock()

	return activity, nil
}

// ApproveNextReader promotes a queued member into a reading activity using
// the duration they asked for. Any queued member may be approved, not just
// the queue head; the notification feed presents candidates in FIFO order.
func (c *Coordinator) ApproveNextReader(ctx context.Context, bookID uuid.UUID, memberID uuid.UUID) (ReadingActivity, error) {
	bq := c.queueFor(bookID)
	bq.mu.Lock()
	defer bq.mu.Unlock()

	w, queued := bq.waiterFor(memberID)
	if !queued {
		return ReadingActivity{}, ErrNotInQueue
	}

	member, err := c.store.GetMember(ctx, memberID)
	if err != nil {
		return ReadingActivity{}, err
	}
	if !member.Active {
		return ReadingActivity{}, ErrMemberInactive
	}

	book, err := c.store.GetBook(ctx, bookID)
	if err != nil {
		return ReadingActivity{}, err
	}
	if book.AvailableCopies <= 0 {
		return ReadingActivity{}, ErrBookUnavailable
	}

	start := c.now()
	activity, err := c.store.CreateActivity(ctx, bookID, memberID, start, start.Add(time.Duration(w.hours)*time.Hour))
	if err != nil {
		return ReadingActivity{}, err
	}

	bq.remove(memberID)
	if bq.removeNotified(memberID) {
		c.refillNotificationsLocked(ctx, bq, bookID)
	}
	return activity, nil
}

// RemoveMember evicts a deactivated member from every waiting list and
// notified set, promoting the next candidates where a notification slot
// frees up.
func (c *Coordinator) RemoveMember(ctx context.Context, memberID uuid.UUID) {
	c.mu.Lock()
	queues := make(map[uuid.UUID]*bookQueue, len(c.queues))
	for bookID, bq := range c.queues {
		queues[bookID] = bq
	}
	c.mu.Unlock()

	for bookID, bq := range queues {
		bq.mu.Lock()
		bq.remove(memberID)
		if bq.removeNotified(memberID) {
			c.refillNotificationsLocked(ctx, bq, bookID)
		}
		bq.mu.Unlock()
	}
}

// QueueRank reports the member's current 1-based position in the book's
// waiting list, or 0 when not queued.
func (c *Coordinator) QueueRank(bookID uuid.UUID, memberID uuid.UUID) int64 {
	bq := c.queueFor(bookID)
	bq.mu.Lock()
	defer bq.mu.Unlock()
	return bq.rank(memberID)
}

func (c *Coordinator) BorrowedActivities(ctx context.Context, memberID uuid.UUID) ([]ReadingActivity, error) {
	return c.store.ActiveActivitiesByMember(ctx, memberID)
}

func (c *Coordinator) AvailableBooks(ctx context.Context, memberID uuid.UUID) ([]Book, error) {
	return c.store.AvailableBooks(ctx, memberID)
}

// refillNotificationsLocked tops the notified set up to the book's current
// available copies, walking the waiting list in FIFO order. Inactive and
// deleted members are purged from both structures on the way. Callers must
// hold bq.mu.
func (c *Coordinator) refillNotificationsLocked(ctx context.Context, bq *bookQueue, bookID uuid.UUID) {
	if bq.empty() {
		return
	}

	book, err := c.store.GetBook(ctx, bookID)
	if err != nil {
		log.Print("Failed to refill notifications: ", err)
		return
	}

	kept := bq.notified[:0]
	for _, notifiedID := range bq.notified {
		member, memberErr := c.store.GetMember(ctx, notifiedID)
		if memberErr != nil || !member.Active {
			bq.remove(notifiedID)
			continue
		}
		kept = append(kept, notifiedID)
	}
	bq.notified = kept

	remaining := book.AvailableCopies - int32(len(bq.notified))
	for i := 0; i < len(bq.waiters) && remaining > 0; {
		w := bq.waiters[i]
		member, memberErr := c.store.GetMember(ctx, w.memberID)
		if memberErr != nil || !member.Active {
			bq.remove(w.memberID)
			continue
		}
		if !bq.isNotified(w.memberID) {
			bq.notified = append(bq.notified, w.memberID)
			remaining--
		}
		i++
	}
}
