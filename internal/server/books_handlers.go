package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/tayeblagha/library-managememnt-demo/internal/common"
	"github.com/tayeblagha/library-managememnt-demo/internal/database"
)

const bookImageBaseURL = "https://raw.githubusercontent.com/smoothcoode/Image/refs/heads/main/books/"

func createBookParams(request RequestBook) database.CreateBookParams {
	totalCopies := int32(1)
	if request.TotalCopies != nil {
		totalCopies = *request.TotalCopies
	}
	return database.CreateBookParams{
		ID:          uuid.New(),
		Title:       request.Title,
		Author:      request.Author,
		ImageUrl:    bookImageBaseURL + request.ImageURL,
		TotalCopies: totalCopies,
	}
}

// @Summary Search books
// @Description Returns a page of books, optionally filtered by title substring
// @Tags Books
// @Accept json
// @Produce json
// @Param title query string false "Title filter"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size"
// @Success 200 {object} Page[Book] "Page of books"
// @Failure 500 {object} ErrorResponse
// @Router /book [get]
func (cfg *ApiConfig) HandleGetBooks(w http.ResponseWriter, r *http.Request) {
	page, size := parsePageRequest(r)
	title := r.URL.Query().Get("title")

	total, err := cfg.DB.CountBooks(r.Context(), title)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	books, err := cfg.DB.GetBooksPage(r.Context(), database.GetBooksPageParams{
		Title:  title,
		Limit:  size,
		Offset: page * size,
	})
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	content := make([]Book, 0, len(books))
	for _, book := range books {
		content = append(content, bookResponseFromDB(book))
	}
	common.RespondWithJSON(w, http.StatusOK, newPage(content, total, page, size))
}

// @Summary Get book
// @Description Returns one book by id
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} Book
// @Failure 404 {object} ErrorResponse "Unknown book"
// @Router /book/{id} [get]
func (cfg *ApiConfig) HandleGetBookByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	book, err := cfg.DB.GetBook(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		common.RespondWithError(w, http.StatusNotFound, "Unknown book")
		return
	}
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, bookResponseFromDB(book))
}

// @Summary Create book
// @Description Creates a new book. Available copies always start equal to total copies
// @Tags Books
// @Accept json
// @Produce json
// @Param request body RequestBook true "Book's info"
// @Success 201 {object} Book
// @Failure 400 {object} ErrorResponse "Invalid request body or empty title"
// @Failure 500 {object} ErrorResponse
// @Router /book [post]
func (cfg *ApiConfig) HandlePostBook(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	request := RequestBook{}
	err := decoder.Decode(&request)
	if err != nil || request.Title == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	book, dbErr := cfg.DB.CreateBook(r.Context(), createBookParams(request))
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, dbErr.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, bookResponseFromDB(book))
}

// @Summary Create books in batch
// @Description Creates several books at once
// @Tags Books
// @Accept json
// @Produce json
// @Param request body []RequestBook true "Books' info"
// @Success 201 {array} Book
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse
// @Router /book/batch [post]
func (cfg *ApiConfig) HandlePostBooksBatch(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	request := []RequestBook{}
	err := decoder.Decode(&request)
	if err != nil || len(request) == 0 {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	created := make([]Book, 0, len(request))
	for _, requestBook := range request {
		if requestBook.Title == "" {
			common.RespondWithError(w, http.StatusBadRequest, "Empty book title")
			return
		}
		book, dbErr := cfg.DB.CreateBook(r.Context(), createBookParams(requestBook))
		if dbErr != nil {
			common.RespondWithError(w, http.StatusInternalServerError, dbErr.Error())
			return
		}
		created = append(created, bookResponseFromDB(book))
	}
	common.RespondWithJSON(w, http.StatusCreated, created)
}

// @Summary Update book
// @Description Updates the book's title, author and copy counts
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param request body Book true "Book's info"
// @Success 200 {object} Book
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Unknown book"
// @Router /book/{id} [put]
func (cfg *ApiConfig) HandlePutBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}
	decoder := json.NewDecoder(r.Body)
	request := Book{}
	decodeErr := decoder.Decode(&request)
	if decodeErr != nil || request.Title == "" {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	count, dbErr := cfg.DB.UpdateBook(r.Context(), database.UpdateBookParams{
		ID:              id,
		Title:           request.Title,
		Author:          request.Author,
		TotalCopies:     request.TotalCopies,
		AvailableCopies: request.AvailableCopies,
	})
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, dbErr.Error())
		return
	}
	if count == 0 {
		common.RespondWithError(w, http.StatusNotFound, "Unknown book")
		return
	}

	book, getErr := cfg.DB.GetBook(r.Context(), id)
	if getErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, getErr.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, bookResponseFromDB(book))
}

// @Summary Delete book
// @Description Deletes the book and its reading activities
// @Tags Books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Success 204 {string} string "Deleted successfully"
// @Failure 404 {object} ErrorResponse "Unknown book"
// @Router /book/{id} [delete]
func (cfg *ApiConfig) HandleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid book id")
		return
	}

	count, dbErr := cfg.DB.DeleteBook(r.Context(), id)
	if dbErr != nil {
		common.RespondWithError(w, http.StatusInternalServerError, dbErr.Error())
		return
	}
	if count == 0 {
		common.RespondWithError(w, http.StatusNotFound, "Unknown book")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
