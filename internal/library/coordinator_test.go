package library

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestCoordinator(store *memStore) *Coordinator {
	c := NewCoordinator(store)
	c.now = func() time.Time { return testNow }
	return c
}

func TestRequestBookGrantsWhenCopyFree(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 2)
	member := store.addMember("Paul", true)
	c := newTestCoordinator(store)

	result, err := c.RequestBook(context.Background(), member.ID, book.ID, 4)

	require.NoError(t, err)
	assert.True(t, result.Granted)
	assert.Equal(t, "Book Dune assigned successfully to Paul", result.Message)
	assert.Equal(t, int64(0), result.Rank)
	require.NotNil(t, result.Activity)
	assert.Equal(t, testNow, result.Activity.StartTime)
	assert.Equal(t, testNow.Add(4*time.Hour), result.Activity.ExpectedEndTime)
	assert.True(t, result.Activity.Active)
	assert.Equal(t, int32(1), store.availableCopies(book.ID))
}

func TestRequestBookInvalidDuration(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	member := store.addMember("Paul", true)
	c := newTestCoordinator(store)

	_, err := c.RequestBook(context.Background(), member.ID, book.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = c.RequestBook(context.Background(), member.ID, book.ID, -3)
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Equal(t, int32(1), store.availableCopies(book.ID))
}

func TestRequestBookUnknownMemberAndBook(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	member := store.addMember("Paul", true)
	c := newTestCoordinator(store)

	_, err := c.RequestBook(context.Background(), uuid.New(), book.ID, 2)
	assert.ErrorIs(t, err, ErrUnknownMember)

	_, err = c.RequestBook(context.Background(), member.ID, uuid.New(), 2)
	assert.ErrorIs(t, err, ErrUnknownBook)
}

func TestRequestBookInactiveMember(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	member := store.addMember("Paul", false)
	c := newTestCoordinator(store)

	_, err := c.RequestBook(context.Background(), member.ID, book.ID, 2)
	assert.ErrorIs(t, err, ErrMemberInactive)
	assert.Equal(t, int32(1), store.availableCopies(book.ID))
}

func TestRequestBookAlreadyBorrowed(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 2)
	member := store.addMember("Paul", true)
	c := newTestCoordinator(store)

	first, err := c.RequestBook(context.Background(), member.ID, book.ID, 2)
	require.NoError(t, err)
	require.True(t, first.Granted)

	second, err := c.RequestBook(context.Background(), member.ID, book.ID, 2)
	require.NoError(t, err)
	assert.True(t, second.Granted)
	assert.Equal(t, "You have already borrowed the book", second.Message)
	assert.Nil(t, second.Activity)
	assert.Equal(t, 1, store.activityCount())
	assert.Equal(t, int32(1), store.availableCopies(book.ID))
}

func TestRequestBookQueuesWithIncreasingRanks(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	holder := store.addMember("Paul", true)
	second := store.addMember("Chani", true)
	third := store.addMember("Leto", true)
	c := newTestCoordinator(store)

	granted, err := c.RequestBook(context.Background(), holder.ID, book.ID, 2)
	require.NoError(t, err)
	require.True(t, granted.Granted)

	queuedSecond, err := c.RequestBook(context.Background(), second.ID, book.ID, 2)
	require.NoError(t, err)
	assert.False(t, queuedSecond.Granted)
	assert.Equal(t, int64(1), queuedSecond.Rank)
	assert.Contains(t, queuedSecond.Message, "You are in waiting list.")

	queuedThird, err := c.RequestBook(context.Background(), third.ID, book.ID, 3)
	require.NoError(t, err)
	assert.False(t, queuedThird.Granted)
	assert.Equal(t, int64(2), queuedThird.Rank)
	assert.Contains(t, queuedThird.Message, "Someone else requested this book first")

	// Re-requesting keeps the original position.
	repeat, err := c.RequestBook(context.Background(), second.ID, book.ID, 9)
	require.NoError(t, err)
	assert.False(t, repeat.Granted)
	assert.Equal(t, int64(1), repeat.Rank)
	assert.Equal(t, int64(1), c.QueueRank(book.ID, second.ID))
	assert.Equal(t, int64(2), c.QueueRank(book.ID, third.ID))
	assert.Equal(t, int64(0), c.QueueRank(book.ID, holder.ID))
}

func TestRequestBookQueueHeadBlocksLaterArrivals(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	holder := store.addMember("Paul", true)
	waiting := store.addMember("Chani", true)
	late := store.addMember("Leto", true)
	c := newTestCoordinator(store)

	granted, err := c.RequestBook(context.Background(), holder.ID, book.ID, 2)
	require.NoError(t, err)
	require.True(t, granted.Granted)
	queued, err := c.RequestBook(context.Background(), waiting.ID, book.ID, 2)
	require.NoError(t, err)
	require.False(t, queued.Granted)

	_, err = c.ReturnBook(context.Background(), granted.Activity.ID)
	require.NoError(t, err)
	require.Equal(t, int32(1), store.availableCopies(book.ID))

	// A copy is free but the queue head is someone else.
	lateResult, err := c.RequestBook(context.Background(), late.ID, book.ID, 2)
	require.NoError(t, err)
	assert.False(t, lateResult.Granted)
	assert.Equal(t, int64(2), lateResult.Rank)

	// The head itself can claim the freed copy directly.
	headResult, err := c.RequestBook(context.Background(), waiting.ID, book.ID, 2)
	require.NoError(t, err)
	assert.True(t, headResult.Granted)
	assert.Equal(t, int32(0), store.availableCopies(book.ID))
	assert.Equal(t, int64(1), c.QueueRank(book.ID, late.ID))
}

func TestReturnBook(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	member := store.addMember("Paul", true)
	c := newTestCoordinator(store)

	granted, err := c.RequestBook(context.Background(), member.ID, book.ID, 2)
	require.NoError(t, err)
	require.Equal(t, int32(0), store.availableCopies(book.ID))

	returned, err := c.ReturnBook(context.Background(), granted.Activity.ID)
	require.NoError(t, err)
	assert.False(t, returned.Active)
	assert.Equal(t, int32(1), store.availableCopies(book.ID))

	_, err = c.ReturnBook(context.Background(), granted.Activity.ID)
	assert.ErrorIs(t, err, ErrAlreadyReturned)
	assert.Equal(t, int32(1), store.availableCopies(book.ID))

	_, err = c.ReturnBook(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUnknownActivity)
}

func TestApproveNextReader(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	holder := store.addMember("Paul", true)
	waiting := store.addMember("Chani", true)
	c := newTestCoordinator(store)

	granted, err := c.RequestBook(context.Background(), holder.ID, book.ID, 2)
	require.NoError(t, err)
	_, err = c.RequestBook(context.Background(), waiting.ID, book.ID, 12)
	require.NoError(t, err)

	// No free copy yet.
	_, err = c.ApproveNextReader(context.Background(), book.ID, waiting.ID)
	assert.ErrorIs(t, err, ErrBookUnavailable)

	_, err = c.ReturnBook(context.Background(), granted.Activity.ID)
	require.NoError(t, err)

	activity, err := c.ApproveNextReader(context.Background(), book.ID, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, waiting.ID, activity.Member.ID)
	// The duration requested at queue time is honored.
	assert.Equal(t, testNow.Add(12*time.Hour), activity.ExpectedEndTime)
	assert.Equal(t, int32(0), store.availableCopies(book.ID))
	assert.Equal(t, int64(0), c.QueueRank(book.ID, waiting.ID))
}

func TestApproveNextReaderNotInQueue(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	member := store.addMember("Paul", true)
	c := newTestCoordinator(store)

	_, err := c.ApproveNextReader(context.Background(), book.ID, member.ID)
	assert.ErrorIs(t, err, ErrNotInQueue)
	assert.Equal(t, int32(1), store.availableCopies(book.ID))
	assert.Equal(t, 0, store.activityCount())
}

func TestApproveNextReaderOutOfOrder(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	holder := store.addMember("Paul", true)
	first := store.addMember("Chani", true)
	second := store.addMember("Leto", true)
	c := newTestCoordinator(store)

	granted, err := c.RequestBook(context.Background(), holder.ID, book.ID, 2)
	require.NoError(t, err)
	_, err = c.RequestBook(context.Background(), first.ID, book.ID, 2)
	require.NoError(t, err)
	_, err = c.RequestBook(context.Background(), second.ID, book.ID, 2)
	require.NoError(t, err)
	_, err = c.ReturnBook(context.Background(), granted.Activity.ID)
	require.NoError(t, err)

	activity, err := c.ApproveNextReader(context.Background(), book.ID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, activity.Member.ID)
	// The skipped member keeps the head position.
	assert.Equal(t, int64(1), c.QueueRank(book.ID, first.ID))
}

func TestApproveNextReaderInactiveMember(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	holder := store.addMember("Paul", true)
	waiting := store.addMember("Chani", true)
	c := newTestCoordinator(store)

	granted, err := c.RequestBook(context.Background(), holder.ID, book.ID, 2)
	require.NoError(t, err)
	_, err = c.RequestBook(context.Background(), waiting.ID, book.ID, 2)
	require.NoError(t, err)
	_, err = c.ReturnBook(context.Background(), granted.Activity.ID)
	require.NoError(t, err)

	store.setMemberActive(waiting.ID, false)
	_, err = c.ApproveNextReader(context.Background(), book.ID, waiting.ID)
	assert.ErrorIs(t, err, ErrMemberInactive)
	assert.Equal(t, int32(1), store.availableCopies(book.ID))
}

func TestRemoveMemberDropsReservations(t *testing.T) {
	store := newMemStore()
	first := store.addBook("Dune", 1)
	second := store.addBook("Hyperion", 1)
	holder := store.addMember("Paul", true)
	leaving := store.addMember("Chani", true)
	staying := store.addMember("Leto", true)
	c := newTestCoordinator(store)

	for _, book := range []Book{first, second} {
		granted, err := c.RequestBook(context.Background(), holder.ID, book.ID, 2)
		require.NoError(t, err)
		require.True(t, granted.Granted)
		_, err = c.RequestBook(context.Background(), leaving.ID, book.ID, 2)
		require.NoError(t, err)
		_, err = c.RequestBook(context.Background(), staying.ID, book.ID, 2)
		require.NoError(t, err)
	}

	c.RemoveMember(context.Background(), leaving.ID)

	assert.Equal(t, int64(0), c.QueueRank(first.ID, leaving.ID))
	assert.Equal(t, int64(0), c.QueueRank(second.ID, leaving.ID))
	assert.Equal(t, int64(1), c.QueueRank(first.ID, staying.ID))
	assert.Equal(t, int64(1), c.QueueRank(second.ID, staying.ID))
}

func TestConcurrentRequestsSingleCopy(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 1)
	c := newTestCoordinator(store)

	const readers = 20
	members := make([]Member, 0, readers)
	for i := 0; i < readers; i++ {
		members = append(members, store.addMember("Reader", true))
	}

	results := make([]BorrowResult, readers)
	errs := make([]error, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.RequestBook(context.Background(), members[i].ID, book.ID, 2)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	grantedCount := 0
	seenRanks := make(map[int64]bool)
	for _, result := range results {
		if result.Granted {
			grantedCount++
			continue
		}
		assert.GreaterOrEqual(t, result.Rank, int64(1))
		assert.False(t, seenRanks[result.Rank], "duplicate rank %v", result.Rank)
		seenRanks[result.Rank] = true
	}
	assert.Equal(t, 1, grantedCount)
	assert.Len(t, seenRanks, readers-1)
	assert.Equal(t, int32(0), store.availableCopies(book.ID))
	assert.Equal(t, 1, store.activityCount())
}

func TestLendingScenario(t *testing.T) {
	store := newMemStore()
	book := store.addBook("Dune", 2)
	m1 := store.addMember("Paul", true)
	m2 := store.addMember("Chani", true)
	m3 := store.addMember("Leto", true)
	c := newTestCoordinator(store)
	ctx := context.Background()

	r1, err := c.RequestBook(ctx, m1.ID, book.ID, 2)
	require.NoError(t, err)
	require.True(t, r1.Granted)
	r2, err := c.RequestBook(ctx, m2.ID, book.ID, 2)
	require.NoError(t, err)
	require.True(t, r2.Granted)
	assert.Equal(t, int32(0), store.availableCopies(book.ID))

	r3, err := c.RequestBook(ctx, m3.ID, book.ID, 5)
	require.NoError(t, err)
	assert.False(t, r3.Granted)
	assert.Equal(t, int64(1), r3.Rank)

	notifications, err := c.AdminNotifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	_, err = c.ReturnBook(ctx, r1.Activity.ID)
	require.NoError(t, err)

	notifications, err = c.AdminNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, m3.ID, notifications[0].Member.ID)
	assert.Equal(t, int32(5), notifications[0].Duration)

	activity, err := c.ApproveNextReader(ctx, book.ID, m3.ID)
	require.NoError(t, err)
	assert.Equal(t, m3.ID, activity.Member.ID)
	assert.Equal(t, int32(0), store.availableCopies(book.ID))

	notifications, err = c.AdminNotifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, notifications)
	assert.Equal(t, int64(0), c.QueueRank(book.ID, m3.ID))
}
