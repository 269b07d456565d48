package library

import (
	"time"

	"github.com/google/uuid"
)

type Book struct {
	ID              uuid.UUID
	Title           string
	Author          string
	ImageURL        string
	TotalCopies     int32
	AvailableCopies int32
}

type Member struct {
	ID       uuid.UUID
	Name     string
	ImageURL string
	Active   bool
}

// ReadingActivity is one lending instance. It is created when a request is
// granted and mutated exactly once, to flip Active off on return.
type ReadingActivity struct {
	ID              uuid.UUID
	Book            Book
	Member          Member
	StartTime       time.Time
	ExpectedEndTime time.Time
	Active          bool
}

// Notification is one admin-facing approval candidate: a queued member
// waiting for a book that currently has a free copy.
type Notification struct {
	Book     Book
	Member   Member
	Duration int32
}

// BorrowResult is the outcome of a read/borrow request. Rank is the 1-based
// waiting list position and is only set when the request was queued.
type BorrowResult struct {
	Granted  bool
	Message  string
	Rank     int64
	Activity *ReadingActivity
}
