package ingestion

import "errors"

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidChunkSize  = errors.New("chunk size must be positive")
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrPersistenceFailed = errors.New("page persistence failed")
	ErrAlreadyScheduled  = errors.New("document already scheduled for ingestion")
	ErrQueueFull         = errors.New("ingestion queue full")
	ErrStopped           = errors.New("ingestion pipeline stopped")
)
