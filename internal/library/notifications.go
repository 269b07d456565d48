package library

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// AdminNotifications derives the approval-pending feed from queue state:
// per book, the notified members in FIFO order, capped at the book's
// current available copies. It is a pure read projection; polling it never
// changes state.
func (c *Coordinator) AdminNotifications(ctx context.Context) ([]Notification, error) {
	c.mu.Lock()
	bookIDs := make([]uuid.UUID, 0, len(c.queues))
	for bookID := range c.queues {
		bookIDs = append(bookIDs, bookID)
	}
	c.mu.Unlock()

	type candidate struct {
		memberID uuid.UUID
		hours    int32
	}

	notifications := make([]Notification, 0)
	for _, bookID := range bookIDs {
		bq := c.queueFor(bookID)

		bq.mu.Lock()
		candidates := make([]candidate, 0, len(bq.notified))
		for _, memberID := range bq.notified {
			hours := int32(1)
			if w, ok := bq.waiterFor(memberID); ok {
				hours = w.hours
			}
			candidates = append(candidates, candidate{memberID: memberID, hours: hours})
		}
		bq.mu.Unlock()

		if len(candidates) == 0 {
			continue
		}

		book, err := c.store.GetBook(ctx, bookID)
		if err != nil {
			continue
		}

		allowed := book.AvailableCopies
		count := int32(0)
		for _, cand := range candidates {
			if count >= allowed {
				break
			}
			member, memberErr := c.store.GetMember(ctx, cand.memberID)
			if memberErr != nil || !member.Active {
				continue
			}
			notifications = append(notifications, Notification{Book: book, Member: member, Duration: cand.hours})
			count++
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Book.Title < notifications[j].Book.Title
	})
	return notifications, nil
}
