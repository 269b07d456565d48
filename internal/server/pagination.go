package server

import (
	"net/http"
	"strconv"
)

const defaultPageSize = 9

// Page mirrors the Spring Data page envelope the catalog UI consumes.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int64 `json:"totalPages"`
	Size             int32 `json:"size"`
	Number           int32 `json:"number"`
	Last             bool  `json:"last"`
	First            bool  `json:"first"`
	NumberOfElements int32 `json:"numberOfElements"`
	Empty            bool  `json:"empty"`
}

func newPage[T any](content []T, totalElements int64, number int32, size int32) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := int64(0)
	if size > 0 {
		totalPages = (totalElements + int64(size) - 1) / int64(size)
	}
	return Page[T]{
		Content:          content,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		Size:             size,
		Number:           number,
		Last:             int64(number)+1 >= totalPages,
		First:            number == 0,
		NumberOfElements: int32(len(content)),
		Empty:            len(content) == 0,
	}
}

func parsePageRequest(r *http.Request) (int32, int32) {
	page := int32(0)
	size := int32(defaultPageSize)
	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n >= 0 {
			page = int32(n)
		}
	}
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n > 0 {
			size = int32(n)
		}
	}
	return page, size
}
