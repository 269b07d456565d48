package library

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence port for catalog and ledger records. Queue state
// never reaches the Store; it lives in the Coordinator only.
//
// CreateActivity and CloseActivity adjust the book's available copies
// atomically with the activity write, so no error path can leave a
// decremented counter without an activity or vice versa.
type Store interface {
	GetBook(ctx context.Context, id uuid.UUID) (Book, error)
	GetMember(ctx context.Context, id uuid.UUID) (Member, error)

	HasActiveActivity(ctx context.Context, memberID uuid.UUID, bookID uuid.UUID) (bool, error)
	CreateActivity(ctx context.Context, bookID uuid.UUID, memberID uuid.UUID, start time.Time, expectedEnd time.Time) (ReadingActivity, error)
	CloseActivity(ctx context.Context, activityID uuid.UUID) (ReadingActivity, error)

	ActiveActivitiesByMember(ctx context.Context, memberID uuid.UUID) ([]ReadingActivity, error)
	ExpiredActivities(ctx context.Context, now time.Time) ([]ReadingActivity, error)
	AvailableBooks(ctx context.Context, memberID uuid.UUID) ([]Book, error)
}
