package documents

import (
	"errors"
	"net/http"
)

// Domain errors for document operations.
var (
	ErrNotFound          = errors.New("document not found")
	ErrPageNotFound      = errors.New("page not found")
	ErrDuplicate         = errors.New("document storage key already exists")
	ErrFileTooLarge      = errors.New("file exceeds maximum upload size")
	ErrInvalidFile       = errors.New("invalid file: only pdf files are accepted")
	ErrInvalidPage       = errors.New("page number must be a positive integer")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBlobNotFound      = errors.New("document file not found")
	ErrUnavailable       = errors.New("ingestion unavailable")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrPageNotFound), errors.Is(err, ErrBlobNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidFile), errors.Is(err, ErrInvalidPage):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
