package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tayeblagha/library-managememnt-demo/internal/common"
	"github.com/tayeblagha/library-managememnt-demo/internal/library"
)

// respondBorrow maps a lending outcome onto the wire contract: domain
// failures become success=false payloads, only infrastructure faults turn
// into transport errors.
func respondBorrow(w http.ResponseWriter, result library.BorrowResult, err error) {
	if err != nil {
		if library.IsRecoverable(err) {
			common.RespondWithJSON(w, http.StatusOK, BookBorrowResponse{Success: false, Message: err.Error()})
			return
		}
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, BookBorrowResponse{
		Success: result.Granted,
		Message: result.Message,
		Rank:    result.Rank,
	})
}

func parseMemberAndBook(r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	memberID, err := uuid.Parse(r.PathValue("memberId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	bookID, err := uuid.Parse(r.PathValue("bookId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	return memberID, bookID, true
}

// @Summary Read a book
// @Description Requests the book for a fixed in-library reading window. Queues the member when no copy is free
// @Tags Lending
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID"
// @Param bookId path string true "Book ID"
// @Success 200 {object} BookBorrowResponse
// @Failure 400 {object} ErrorResponse "Invalid ids"
// @Router /member/read/{memberId}/{bookId} [post]
func (cfg *ApiConfig) HandleReadBook(w http.ResponseWriter, r *http.Request) {
	memberID, bookID, ok := parseMemberAndBook(r)
	if !ok {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid member or book id")
		return
	}
	result, err := cfg.Coordinator.RequestBook(r.Context(), memberID, bookID, library.ReadDurationHours)
	respondBorrow(w, result, err)
}

// @Summary Borrow a book
// @Description Requests the book for a caller-chosen number of hours. Queues the member when no copy is free
// @Tags Lending
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID"
// @Param bookId path string true "Book ID"
// @Param duration query int true "Borrow duration in hours"
// @Success 200 {object} BookBorrowResponse
// @Failure 400 {object} ErrorResponse "Invalid ids"
// @Router /member/borrow/{memberId}/{bookId} [post]
func (cfg *ApiConfig) HandleBorrowBook(w http.ResponseWriter, r *http.Request) {
	memberID, bookID, ok := parseMemberAndBook(r)
	if !ok {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid member or book id")
		return
	}
	hours, err := strconv.ParseInt(r.URL.Query().Get("duration"), 10, 32)
	if err != nil {
		hours = 0
	}
	result, requestErr := cfg.Coordinator.RequestBook(r.Context(), memberID, bookID, int32(hours))
	respondBorrow(w, result, requestErr)
}

// @Summary Return a book
// @Description Closes the reading activity and frees the copy. Returning twice fails
// @Tags Lending
// @Accept json
// @Produce json
// @Param activityId path string true "Reading activity ID"
// @Success 200 {object} BookBorrowResponse
// @Failure 400 {object} ErrorResponse "Invalid activity id"
// @Router /member/return/{activityId} [post]
func (cfg *ApiConfig) HandleReturnBook(w http.ResponseWriter, r *http.Request) {
	activityID, err := uuid.Parse(r.PathValue("activityId"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid activity id")
		return
	}
	_, returnErr := cfg.Coordinator.ReturnBook(r.Context(), activityID)
	respondBorrow(w, library.BorrowResult{Granted: true, Message: "book returned successfully"}, returnErr)
}

// @Summary Available books for a member
// @Description Books with a free copy that the member does not already hold
// @Tags Lending
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID"
// @Success 200 {array} Book
// @Failure 500 {object} ErrorResponse
// @Router /member/available/{memberId} [get]
func (cfg *ApiConfig) HandleGetAvailableBooks(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(r.PathValue("memberId"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	books, listErr := cfg.Coordinator.AvailableBooks(r.Context(), memberID)
	if listErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, listErr.Error())
		return
	}
	response := make([]Book, 0, len(books))
	for _, book := range books {
		response = append(response, bookResponse(book))
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}

// @Summary Borrowed activities for a member
// @Description The member's active reading activities
// @Tags Lending
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID"
// @Success 200 {array} ReadingActivity
// @Failure 500 {object} ErrorResponse
// @Router /member/borrowed/{memberId} [get]
func (cfg *ApiConfig) HandleGetBorrowedActivities(w http.ResponseWriter, r *http.Request) {
	memberID, err := uuid.Parse(r.PathValue("memberId"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}
	activities, listErr := cfg.Coordinator.BorrowedActivities(r.Context(), memberID)
	if listErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, listErr.Error())
		return
	}
	response := make([]ReadingActivity, 0, len(activities))
	for _, activity := range activities {
		response = append(response, activityResponse(activity))
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}

// @Summary Admin notifications
// @Description Queued members waiting for books that currently have a free copy, in approval order
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {array} NotificationDTO
// @Failure 500 {object} ErrorResponse
// @Router /library/notifications [get]
func (cfg *ApiConfig) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := cfg.Coordinator.AdminNotifications(r.Context())
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response := make([]NotificationDTO, 0, len(notifications))
	for _, notification := range notifications {
		response = append(response, notificationResponse(notification))
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}

// @Summary Expired activities
// @Description Active reading activities past their expected end time
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {array} ReadingActivity
// @Failure 500 {object} ErrorResponse
// @Router /library/expired [get]
func (cfg *ApiConfig) HandleGetExpiredActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := cfg.Coordinator.ExpiredActivities(r.Context())
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	response := make([]ReadingActivity, 0, len(activities))
	for _, activity := range activities {
		response = append(response, activityResponse(activity))
	}
	common.RespondWithJSON(w, http.StatusOK, response)
}

// @Summary Approve next reader
// @Description Promotes a queued member into a reading activity with the duration they requested
// @Tags Admin
// @Accept json
// @Produce json
// @Param bookId path string true "Book ID"
// @Param memberId path string true "Member ID"
// @Success 200 {object} BookBorrowResponse
// @Failure 400 {object} ErrorResponse "Invalid ids"
// @Router /library/approve/{bookId}/{memberId} [post]
func (cfg *ApiConfig) HandleApproveNextReader(w http.ResponseWriter, r *http.Request) {
	memberID, bookID, ok := parseMemberAndBook(r)
	if !ok {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid member or book id")
		return
	}
	activity, err := cfg.Coordinator.ApproveNextReader(r.Context(), bookID, memberID)
	if err != nil {
		respondBorrow(w, library.BorrowResult{}, err)
		return
	}
	respondBorrow(w, library.BorrowResult{
		Granted: true,
		Message: "Book " + activity.Book.Title + " assigned successfully to " + activity.Member.Name,
	}, nil)
}
