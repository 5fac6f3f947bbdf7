// Package ingestion turns stored PDFs into searchable page chunks.
// A bounded worker pool runs one job per document: extract page text, split
// it into chunks, and persist the chunks together with the ready transition.
// Any failure is absorbed into a compensating failed transition.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/doc-library/internal/documents"
	"github.com/google/uuid"
)

// Store is the document persistence a job reads and finalizes.
type Store interface {
	Find(ctx context.Context, id uuid.UUID) (*documents.Document, error)
	Complete(ctx context.Context, id uuid.UUID, extractedPages int, pages []documents.Page) error
	Fail(ctx context.Context, id uuid.UUID) error
}

// Blobs reads stored document files.
type Blobs interface {
	Retrieve(ctx context.Context, key string) ([]byte, error)
}

// Extractor returns the plain text of every page in order.
type Extractor interface {
	ExtractPages(ctx context.Context, data []byte) ([]string, error)
}

// Outcome is the terminal result of one job run.
type Outcome string

const (
	// OutcomeSkipped means the document was missing or already terminal.
	OutcomeSkipped Outcome = "skipped"
	OutcomeReady   Outcome = "ready"
	OutcomeFailed  Outcome = "failed"
	// OutcomeAbandoned means the failed transition could not be written and
	// the document remains processing.
	OutcomeAbandoned Outcome = "abandoned"
)

// Job processes a single document.
type Job struct {
	store       Store
	blobs       Blobs
	extractor   Extractor
	chunkSize   int
	failTimeout time.Duration
	logger      *slog.Logger
}

// NewJob creates a job runner from the ingestion configuration.
func NewJob(store Store, blobs Blobs, extractor Extractor, cfg *Config, logger *slog.Logger) *Job {
	return &Job{
		store:       store,
		blobs:       blobs,
		extractor:   extractor,
		chunkSize:   cfg.ChunkSize,
		failTimeout: cfg.FailTimeoutDuration(),
		logger:      logger,
	}
}

// Run ingests the document identified by id whose file lives at key.
func (j *Job) Run(ctx context.Context, id uuid.UUID, key string) Outcome {
	logger := j.logger.With("document_id", id)

	doc, err := j.store.Find(ctx, id)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			logger.Info("document gone before ingestion")
			return OutcomeSkipped
		}
		logger.Error("document lookup failed", "error", err)
		return j.fail(ctx, logger, id)
	}

	if doc.Status.Terminal() {
		logger.Info("document already finalized", "status", doc.Status)
		return OutcomeSkipped
	}

	start := time.Now()
	chunks, err := j.process(ctx, id, key)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) || errors.Is(err, documents.ErrInvalidTransition) {
			logger.Info("document changed during ingestion", "error", err)
			return OutcomeSkipped
		}
		logger.Warn("ingestion failed", "error", err)
		return j.fail(ctx, logger, id)
	}

	logger.Info("ingestion complete", "chunks", chunks, "duration", time.Since(start))
	return OutcomeReady
}

func (j *Job) process(ctx context.Context, id uuid.UUID, key string) (chunks int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ingestion panic: %v", r)
		}
	}()

	data, err := j.blobs.Retrieve(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("%w: read %s: %w", ErrExtractionFailed, key, err)
	}

	texts, err := j.extractor.ExtractPages(ctx, data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	if len(texts) == 0 {
		return 0, fmt.Errorf("%w: no pages", ErrExtractionFailed)
	}

	pages, err := buildPages(id, texts, j.chunkSize)
	if err != nil {
		return 0, err
	}

	if err := j.store.Complete(ctx, id, len(texts), pages); err != nil {
		if errors.Is(err, documents.ErrNotFound) || errors.Is(err, documents.ErrInvalidTransition) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrPersistenceFailed, err)
	}

	return len(pages), nil
}

// fail writes the failed status from its own context, timeout, and recover
// so a broken job cannot prevent it.
func (j *Job) fail(parent context.Context, logger *slog.Logger, id uuid.UUID) (outcome Outcome) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), j.failTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("failed-status write panicked", "panic", r)
			outcome = OutcomeAbandoned
		}
	}()

	if err := j.store.Fail(ctx, id); err != nil {
		if errors.Is(err, documents.ErrNotFound) || errors.Is(err, documents.ErrInvalidTransition) {
			logger.Info("document changed before failed-status write", "error", err)
			return OutcomeSkipped
		}
		logger.Error("failed-status write failed, document left processing", "error", err)
		return OutcomeAbandoned
	}

	return OutcomeFailed
}

// buildPages chunks each page's text. Page numbers are 1-based, chunk
// indexes restart at 0 for each page, and empty pages produce no rows.
func buildPages(id uuid.UUID, texts []string, chunkSize int) ([]documents.Page, error) {
	pages := make([]documents.Page, 0, len(texts))

	for i, text := range texts {
		chunks, err := Split(text, chunkSize)
		if err != nil {
			return nil, err
		}
		for idx, chunk := range chunks {
			pages = append(pages, documents.Page{
				DocumentID: id,
				PageNumber: i + 1,
				ChunkIndex: idx,
				Text:       chunk,
			})
		}
	}

	return pages, nil
}
