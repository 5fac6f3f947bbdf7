package ingestion_test

import (
	"context"
	"errors"
	"sync"

	"github.com/JaimeStill/doc-library/internal/documents"
	"github.com/google/uuid"
)

type fakeStore struct {
	mu        sync.Mutex
	docs      map[uuid.UUID]*documents.Document
	pages     map[uuid.UUID][]documents.Page
	extracted map[uuid.UUID]int
	completes int
	fails     int

	completeErr error
	failErr     error
	failPanic   bool

	done chan uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:      make(map[uuid.UUID]*documents.Document),
		pages:     make(map[uuid.UUID][]documents.Page),
		extracted: make(map[uuid.UUID]int),
		done:      make(chan uuid.UUID, 64),
	}
}

func (s *fakeStore) add(status documents.Status) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.docs[id] = &documents.Document{ID: id, Status: status}
	return id
}

func (s *fakeStore) status(id uuid.UUID) documents.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[id].Status
}

func (s *fakeStore) Find(ctx context.Context, id uuid.UUID) (*documents.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return nil, documents.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (s *fakeStore) Complete(ctx context.Context, id uuid.UUID, extractedPages int, pages []documents.Page) error {
	s.mu.Lock()
	defer func() {
		s.mu.Unlock()
		s.done <- id
	}()
	s.completes++

	if s.completeErr != nil {
		return s.completeErr
	}
	d, ok := s.docs[id]
	if !ok {
		return documents.ErrNotFound
	}
	if !d.Status.CanTransition(documents.StatusReady) {
		return documents.ErrInvalidTransition
	}
	d.Status = documents.StatusReady
	s.pages[id] = pages
	s.extracted[id] = extractedPages
	return nil
}

func (s *fakeStore) Fail(ctx context.Context, id uuid.UUID) error {
	if s.failPanic {
		panic("fail write exploded")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails++

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if s.failErr != nil {
		return s.failErr
	}
	d, ok := s.docs[id]
	if !ok {
		return documents.ErrNotFound
	}
	if !d.Status.CanTransition(documents.StatusFailed) {
		return documents.ErrInvalidTransition
	}
	d.Status = documents.StatusFailed
	return nil
}

type fakeBlobs struct {
	data map[string][]byte
}

func (b fakeBlobs) Retrieve(ctx context.Context, key string) ([]byte, error) {
	d, ok := b.data[key]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return d, nil
}

type fakeExtractor struct {
	pages []string
	err   error
	panic bool
}

func (e fakeExtractor) ExtractPages(ctx context.Context, data []byte) ([]string, error) {
	if e.panic {
		panic("parser exploded")
	}
	return e.pages, e.err
}

// blockingExtractor holds every call until release is closed.
type blockingExtractor struct {
	started chan struct{}
	release chan struct{}
	pages   []string
}

func newBlockingExtractor(pages ...string) *blockingExtractor {
	return &blockingExtractor{
		started: make(chan struct{}, 64),
		release: make(chan struct{}),
		pages:   pages,
	}
}

func (e *blockingExtractor) ExtractPages(ctx context.Context, data []byte) ([]string, error) {
	e.started <- struct{}{}
	<-e.release
	return e.pages, nil
}

func (s *fakeStore) completeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completes
}
