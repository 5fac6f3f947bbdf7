package documents

import (
	"context"

	"github.com/JaimeStill/doc-library/pkg/pagination"
	"github.com/google/uuid"
)

// System defines document persistence and lifecycle operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Document], error)
	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	Create(ctx context.Context, cmd CreateCommand) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Download(ctx context.Context, id uuid.UUID) (*Document, []byte, error)
	GetPage(ctx context.Context, id uuid.UUID, pageNumber int) (*PageText, error)

	// Complete stores pages, records how many pages were extracted, and moves
	// the document from processing to ready in one transaction.
	Complete(ctx context.Context, id uuid.UUID, extractedPages int, pages []Page) error

	// Fail moves the document from processing to failed.
	Fail(ctx context.Context, id uuid.UUID) error
}

// Scheduler queues a stored document for background ingestion.
type Scheduler interface {
	Ingest(id uuid.UUID, storageKey string) error
}
