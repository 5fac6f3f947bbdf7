package search

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidQuery = errors.New("search query must not be empty")
	ErrInvalidLimit = errors.New("search limit out of range")
)

// MapHTTPStatus converts search errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidQuery), errors.Is(err, ErrInvalidLimit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
