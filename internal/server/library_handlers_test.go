package server

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayeblagha/library-managememnt-demo/internal/library"
)

func decodeBorrowResponse(t *testing.T, rr *httptest.ResponseRecorder) BookBorrowResponse {
	t.Helper()
	response := BookBorrowResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	return response
}

func TestRespondBorrowGranted(t *testing.T) {
	rr := httptest.NewRecorder()
	respondBorrow(rr, library.BorrowResult{Granted: true, Message: "Book Dune assigned successfully to Paul"}, nil)

	assert.Equal(t, 200, rr.Code)
	response := decodeBorrowResponse(t, rr)
	assert.True(t, response.Success)
	assert.Equal(t, "Book Dune assigned successfully to Paul", response.Message)
	assert.NotContains(t, rr.Body.String(), "rank")
}

func TestRespondBorrowQueued(t *testing.T) {
	rr := httptest.NewRecorder()
	respondBorrow(rr, library.BorrowResult{Granted: false, Message: "Book not available. You are in waiting list.", Rank: 3}, nil)

	assert.Equal(t, 200, rr.Code)
	response := decodeBorrowResponse(t, rr)
	assert.False(t, response.Success)
	assert.Equal(t, int64(3), response.Rank)
}

func TestRespondBorrowRecoverableError(t *testing.T) {
	rr := httptest.NewRecorder()
	respondBorrow(rr, library.BorrowResult{}, library.ErrMemberInactive)

	assert.Equal(t, 200, rr.Code)
	response := decodeBorrowResponse(t, rr)
	assert.False(t, response.Success)
	assert.Equal(t, library.ErrMemberInactive.Error(), response.Message)
}

func TestRespondBorrowInfrastructureError(t *testing.T) {
	rr := httptest.NewRecorder()
	respondBorrow(rr, library.BorrowResult{}, errors.New("connection refused"))

	assert.Equal(t, 500, rr.Code)
	errorResponse := ErrorResponse{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	assert.Equal(t, "connection refused", errorResponse.Error)
}

func TestBorrowResponseRankOmittedWhenZero(t *testing.T) {
	data, err := json.Marshal(BookBorrowResponse{Success: true, Message: "ok"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"ok"}`, string(data))
}
