package server

import (
	"time"

	"github.com/tayeblagha/library-managememnt-demo/internal/database"
	"github.com/tayeblagha/library-managememnt-demo/internal/library"
)

type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ImageURL        string `json:"imageUrl"`
	TotalCopies     int32  `json:"totalCopies"`
	AvailableCopies int32  `json:"availableCopies"`
}

type Member struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Active   bool   `json:"active"`
}

type ReadingActivity struct {
	ID              string    `json:"id"`
	Book            Book      `json:"book"`
	Member          Member    `json:"member"`
	StartTime       time.Time `json:"startTime"`
	ExpectedEndTime time.Time `json:"expectedEndTime"`
	Active          bool      `json:"active"`
}

type NotificationDTO struct {
	Book     Book   `json:"book"`
	Member   Member `json:"member"`
	Duration int32  `json:"duration"`
}

// BookBorrowResponse is the structured outcome of lending operations. Rank
// is only present when the request ended up in a waiting list.
type BookBorrowResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Rank    int64  `json:"rank,omitempty"`
}

type RequestBook struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ImageURL    string `json:"imageUrl"`
	TotalCopies *int32 `json:"totalCopies"`
}

type RequestMember struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Active   bool   `json:"active"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func bookResponseFromDB(book database.Book) Book {
	return Book{
		ID:              book.ID.String(),
		Title:           book.Title,
		Author:          book.Author,
		ImageURL:        book.ImageUrl,
		TotalCopies:     book.TotalCopies,
		AvailableCopies: book.AvailableCopies,
	}
}

func memberResponseFromDB(member database.Member) Member {
	return Member{
		ID:       member.ID.String(),
		Name:     member.Name,
		ImageURL: member.ImageUrl,
		Active:   member.IsActive,
	}
}

func bookResponse(book library.Book) Book {
	return Book{
		ID:              book.ID.String(),
		Title:           book.Title,
		Author:          book.Author,
		ImageURL:        book.ImageURL,
		TotalCopies:     book.TotalCopies,
		AvailableCopies: book.AvailableCopies,
	}
}

func memberResponse(member library.Member) Member {
	return Member{
		ID:       member.ID.String(),
		Name:     member.Name,
		ImageURL: member.ImageURL,
		Active:   member.Active,
	}
}

func activityResponse(activity library.ReadingActivity) ReadingActivity {
	return ReadingActivity{
		ID:              activity.ID.String(),
		Book:            bookResponse(activity.Book),
		Member:          memberResponse(activity.Member),
		StartTime:       activity.StartTime,
		ExpectedEndTime: activity.ExpectedEndTime,
		Active:          activity.Active,
	}
}

func notificationResponse(notification library.Notification) NotificationDTO {
	return NotificationDTO{
		Book:     bookResponse(notification.Book),
		Member:   memberResponse(notification.Member),
		Duration: notification.Duration,
	}
}
