package library

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	ch chan time.Time
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{ch: make(chan time.Time)}
}

func (ft *fakeTicker) C() <-chan time.Time {
	return ft.ch
}

func (ft *fakeTicker) Stop() {}

func TestExpiredActivities(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 2)
	overdue := store.addMember("Paul", true)
	onTime := store.addMember("Chani", true)
	c := newTestCoordinator(store)
	ctx := context.Background()

	late, err := c.RequestBook(ctx, overdue.ID, book.ID, 2)
	require.NoError(t, err)
	_, err = c.RequestBook(ctx, onTime.ID, book.ID, 8)
	require.NoError(t, err)

	expired, err := c.ExpiredActivities(ctx)
	require.NoError(t, err)
	assert.Empty(t, expired)

	// An activity at exactly its expected end is not expired yet.
	c.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	expired, err = c.ExpiredActivities(ctx)
	require.NoError(t, err)
	assert.Empty(t, expired)

	c.now = func() time.Time { return testNow.Add(3 * time.Hour) }
	expired, err = c.ExpiredActivities(ctx)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, late.Activity.ID, expired[0].ID)
	assert.Equal(t, overdue.ID, expired[0].Member.ID)
}

func TestExpiryMonitorReportsOnly(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	member := store.addMember("Paul", true)
	c := newTestCoordinator(store)
	ctx := context.Background()

	granted, err := c.RequestBook(ctx, member.ID, book.ID, 2)
	require.NoError(t, err)
	c.now = func() time.Time { return testNow.Add(5 * time.Hour) }

	ticker := newFakeTicker()
	done := make(chan struct{})
	go func() {
		c.RunExpiryMonitor(ctx, false, ticker)
		close(done)
	}()
	ticker.ch <- testNow
	close(ticker.ch)
	<-done

	// Without auto-release the hold stays open.
	activities, err := c.BorrowedActivities(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, granted.Activity.ID, activities[0].ID)
	assert.Equal(t, int32(0), store.availableCopies(book.ID))
}

func TestExpiryMonitorAutoRelease(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	holder := store.addMember("Paul", true)
	waiting := store.addMember("Chani", true)
	c := newTestCoordinator(store)
	ctx := context.Background()

	_, err := c.RequestBook(ctx, holder.ID, book.ID, 2)
	require.NoError(t, err)
	_, err = c.RequestBook(ctx, waiting.ID, book.ID, 2)
	require.NoError(t, err)
	c.now = func() time.Time { return testNow.Add(5 * time.Hour) }

	ticker := newFakeTicker()
	done := make(chan struct{})
	go func() {
		c.RunExpiryMonitor(ctx, true, ticker)
		close(done)
	}()
	ticker.ch <- testNow
	close(ticker.ch)
	<-done

	// The overdue hold is force-returned and the waiter gets notified.
	activities, err := c.BorrowedActivities(ctx, holder.ID)
	require.NoError(t, err)
	assert.Empty(t, activities)
	assert.Equal(t, int32(1), store.availableCopies(book.ID))

	notifications, err := c.AdminNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, waiting.ID, notifications[0].Member.ID)
}
