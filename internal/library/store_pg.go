package library

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/tayeblagha/library-managememnt-demo/internal/database"
)

// PGStore is the Postgres adapter of the Store port.
type PGStore struct {
	db *sql.DB
	q  *database.Queries
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db, q: database.New(db)}
}

func toBook(b database.Book) Book {
	return Book{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		ImageURL:        b.ImageUrl,
		TotalCopies:     b.TotalCopies,
		AvailableCopies: b.AvailableCopies,
	}
}

func toMember(m database.Member) Member {
	return Member{
		ID:       m.ID,
		Name:     m.Name,
		ImageURL: m.ImageUrl,
		Active:   m.IsActive,
	}
}

func (s *PGStore) GetBook(ctx context.Context, id uuid.UUID) (Book, error) {
	book, err := s.q.GetBook(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Book{}, ErrUnknownBook
	}
	if err != nil {
		return Book{}, err
	}
	return toBook(book), nil
}

func (s *PGStore) GetMember(ctx context.Context, id uuid.UUID) (Member, error) {
	member, err := s.q.GetMember(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Member{}, ErrUnknownMember
	}
	if err != nil {
		return Member{}, err
	}
	return toMember(member), nil
}

func (s *PGStore) HasActiveActivity(ctx context.Context, memberID uuid.UUID, bookID uuid.UUID) (bool, error) {
	return s.q.HasActiveReadingActivity(ctx, database.HasActiveReadingActivityParams{MemberID: memberID, BookID: bookID})
}

func (s *PGStore) CreateActivity(ctx context.Context, bookID uuid.UUID, memberID uuid.UUID, start time.Time, expectedEnd time.Time) (ReadingActivity, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReadingActivity{}, err
	}
	qtx := s.q.WithTx(tx)

	decremented, err := qtx.DecrementAvailableCopies(ctx, bookID)
	if err != nil {
		rollback(tx)
		return ReadingActivity{}, err
	}
	if decremented == 0 {
		rollback(tx)
		_, getErr := s.q.GetBook(ctx, bookID)
		if errors.Is(getErr, sql.ErrNoRows) {
			return ReadingActivity{}, ErrUnknownBook
		}
		return ReadingActivity{}, ErrBookUnavailable
	}

	dbActivity, err := qtx.CreateReadingActivity(ctx, database.CreateReadingActivityParams{
		ID:              uuid.New(),
		BookID:          bookID,
		MemberID:        memberID,
		StartTime:       start,
		ExpectedEndTime: expectedEnd,
	})
	if err != nil {
		rollback(tx)
		return ReadingActivity{}, err
	}
	if err := tx.Commit(); err != nil {
		return ReadingActivity{}, err
	}

	return s.resolveActivity(ctx, dbActivity)
}

func (s *PGStore) CloseActivity(ctx context.Context, activityID uuid.UUID) (ReadingActivity, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReadingActivity{}, err
	}
	qtx := s.q.WithTx(tx)

	dbActivity, err := qtx.GetReadingActivity(ctx, activityID)
	if errors.Is(err, sql.ErrNoRows) {
		rollback(tx)
		return ReadingActivity{}, ErrUnknownActivity
	}
	if err != nil {
		rollback(tx)
		return ReadingActivity{}, err
	}
	if !dbActivity.IsActive {
		rollback(tx)
		return ReadingActivity{}, ErrAlreadyReturned
	}

	closed, err := qtx.CloseReadingActivity(ctx, activityID)
	if err != nil {
		rollback(tx)
		return ReadingActivity{}, err
	}
	if closed == 0 {
		rollback(tx)
		return ReadingActivity{}, ErrAlreadyReturned
	}

	incremented, err := qtx.IncrementAvailableCopies(ctx, dbActivity.BookID)
	if err != nil {
		rollback(tx)
		return ReadingActivity{}, err
	}
	if incremented == 0 {
		log.Print("Available copies already at total for book ", dbActivity.BookID)
	}
	if err := tx.Commit(); err != nil {
		return ReadingActivity{}, err
	}

	dbActivity.IsActive = false
	return s.resolveActivity(ctx, dbActivity)
}

func (s *PGStore) ActiveActivitiesByMember(ctx context.Context, memberID uuid.UUID) ([]ReadingActivity, error) {
	dbActivities, err := s.q.GetActiveReadingActivitiesByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	activities := make([]ReadingActivity, 0, len(dbActivities))
	for _, dbActivity := range dbActivities {
		activity, resolveErr := s.resolveActivity(ctx, dbActivity)
		if resolveErr != nil {
			return nil, resolveErr
		}
		activities = append(activities, activity)
	}
	return activities, nil
}

func (s *PGStore) ExpiredActivities(ctx context.Context, now time.Time) ([]ReadingActivity, error) {
	dbActivities, err := s.q.GetExpiredReadingActivities(ctx, now)
	if err != nil {
		return nil, err
	}
	activities := make([]ReadingActivity, 0, len(dbActivities))
	for _, dbActivity := range dbActivities {
		activity, resolveErr := s.resolveActivity(ctx, dbActivity)
		if resolveErr != nil {
			return nil, resolveErr
		}
		activities = append(activities, activity)
	}
	return activities, nil
}

func (s *PGStore) AvailableBooks(ctx context.Context, memberID uuid.UUID) ([]Book, error) {
	dbBooks, err := s.q.ListAvailableBooks(ctx, memberID)
	if err != nil {
		return nil, err
	}
	books := make([]Book, 0, len(dbBooks))
	for _, dbBook := range dbBooks {
		books = append(books, toBook(dbBook))
	}
	return books, nil
}

func (s *PGStore) resolveActivity(ctx context.Context, dbActivity database.ReadingActivity) (ReadingActivity, error) {
	book, err := s.GetBook(ctx, dbActivity.BookID)
	if err != nil {
		return ReadingActivity{}, err
	}
	member, err := s.GetMember(ctx, dbActivity.MemberID)
	if err != nil {
		return ReadingActivity{}, err
	}
	return ReadingActivity{
		ID:              dbActivity.ID,
		Book:            book,
		Member:          member,
		StartTime:       dbActivity.StartTime,
		ExpectedEndTime: dbActivity.ExpectedEndTime,
		Active:          dbActivity.IsActive,
	}, nil
}

func rollback(tx *sql.Tx) {
	err := tx.Rollback()
	if err != nil {
		log.Print("Failed to rollback transaction ", err)
	}
}
