package library

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore is an in-memory Store with the same invariants as the Postgres
// adapter: copy counters move only together with activity writes.
type memStore struct {
	mu         sync.Mutex
	books      map[uuid.UUID]Book
	members    map[uuid.UUID]Member
	activities map[uuid.UUID]*memActivity
}

type memActivity struct {
	id          uuid.UUID
	bookID      uuid.UUID
	memberID    uuid.UUID
	start       time.Time
	expectedEnd time.Time
	active      bool
}

func newMemStore() *memStore {
	return &memStore{
		books:      make(map[uuid.UUID]Book),
		members:    make(map[uuid.UUID]Member),
		activities: make(map[uuid.UUID]*memActivity),
	}
}

func (s *memStore) addBook(title string, copies int32) Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	book := Book{ID: uuid.New(), Title: title, TotalCopies: copies, AvailableCopies: copies}
	s.books[book.ID] = book
	return book
}

func (s *memStore) addMember(name string, active bool) Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	member := Member{ID: uuid.New(), Name: name, Active: active}
	s.members[member.ID] = member
	return member
}

func (s *memStore) setMemberActive(memberID uuid.UUID, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	member := s.members[memberID]
	member.Active = active
	s.members[memberID] = member
}

func (s *memStore) availableCopies(bookID uuid.UUID) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.books[bookID].AvailableCopies
}

func (s *memStore) activityCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activities)
}

func (s *memStore) GetBook(_ context.Context, id uuid.UUID) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[id]
	if !ok {
		return Book{}, ErrUnknownBook
	}
	return book, nil
}

func (s *memStore) GetMember(_ context.Context, id uuid.UUID) (Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	member, ok := s.members[id]
	if !ok {
		return Member{}, ErrUnknownMember
	}
	return member, nil
}

func (s *memStore) HasActiveActivity(_ context.Context, memberID uuid.UUID, bookID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, activity := range s.activities {
		if activity.active && activity.memberID == memberID && activity.bookID == bookID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) CreateActivity(_ context.Context, bookID uuid.UUID, memberID uuid.UUID, start time.Time, expectedEnd time.Time) (ReadingActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[bookID]
	if !ok {
		return ReadingActivity{}, ErrUnknownBook
	}
	member, ok := s.members[memberID]
	if !ok {
		return ReadingActivity{}, ErrUnknownMember
	}
	if book.AvailableCopies <= 0 {
		return ReadingActivity{}, ErrBookUnavailable
	}
	book.AvailableCopies--
	s.books[bookID] = book

	activity := &memActivity{
		id:          uuid.New(),
		bookID:      bookID,
		memberID:    memberID,
		start:       start,
		expectedEnd: expectedEnd,
		active:      true,
	}
	s.activities[activity.id] = activity
	return s.toDomainLocked(activity, book, member), nil
}

func (s *memStore) CloseActivity(_ context.Context, activityID uuid.UUID) (ReadingActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity, ok := s.activities[activityID]
	if !ok {
		return ReadingActivity{}, ErrUnknownActivity
	}
	if !activity.active {
		return ReadingActivity{}, ErrAlreadyReturned
	}
	activity.active = false

	book := s.books[activity.bookID]
	if book.AvailableCopies < book.TotalCopies {
		book.AvailableCopies++
		s.books[activity.bookID] = book
	}
	return s.toDomainLocked(activity, book, s.members[activity.memberID]), nil
}

func (s *memStore) ActiveActivitiesByMember(_ context.Context, memberID uuid.UUID) ([]ReadingActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	activities := make([]ReadingActivity, 0)
	for _, activity := range s.activities {
		if activity.active && activity.memberID == memberID {
			activities = append(activities, s.toDomainLocked(activity, s.books[activity.bookID], s.members[memberID]))
		}
	}
	return activities, nil
}

func (s *memStore) ExpiredActivities(_ context.Context, now time.Time) ([]ReadingActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	activities := make([]ReadingActivity, 0)
	for _, activity := range s.activities {
		if activity.active && activity.expectedEnd.Before(now) {
			activities = append(activities, s.toDomainLocked(activity, s.books[activity.bookID], s.members[activity.memberID]))
		}
	}
	return activities, nil
}

func (s *memStore) AvailableBooks(_ context.Context, memberID uuid.UUID) ([]Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	held := make(map[uuid.UUID]bool)
	for _, activity := range s.activities {
		if activity.active && activity.memberID == memberID {
			held[activity.bookID] = true
		}
	}
	books := make([]Book, 0)
	for _, book := range s.books {
		if book.AvailableCopies > 0 && !held[book.ID] {
			books = append(books, book)
		}
	}
	return books, nil
}

func (s *memStore) toDomainLocked(activity *memActivity, book Book, member Member) ReadingActivity {
	return ReadingActivity{
		ID:              activity.id,
		Book:            book,
		Member:          member,
		StartTime:       activity.start,
		ExpectedEndTime: activity.expectedEnd,
		Active:          activity.active,
	}
}
