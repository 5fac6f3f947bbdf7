// Package documents manages uploaded PDF documents: metadata persistence,
// blob storage, status transitions, and the chunked page text written by
// ingestion.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded PDF and its ingestion status.
type Document struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	PageCount  int       `json:"page_count"`
	Status     Status    `json:"status"`
	StorageKey string    `json:"storage_key"`
	CreatedAt  time.Time `json:"created_at"`

	// ExtractedPages is the number of pages ingestion read, including blank
	// pages that produced no chunks. Zero until the document is ready.
	ExtractedPages int `json:"extracted_pages"`
}

// Page is one chunk of extracted text. For a fixed document and page number,
// chunk indexes run 0..k-1 and their concatenation is the page text.
type Page struct {
	DocumentID uuid.UUID
	PageNumber int
	ChunkIndex int
	Text       string
}

// PageText is the reassembled text of one page.
// Chunks is populated only when the page was split into more than one chunk.
type PageText struct {
	PageNumber int      `json:"page_number"`
	Text       string   `json:"text"`
	Chunks     []string `json:"chunks"`
}

// CreateCommand contains the data required to create a new document.
// Data holds the raw file bytes to be stored.
type CreateCommand struct {
	Filename  string
	PageCount int
	Data      []byte
}
