package documents_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/JaimeStill/doc-library/internal/documents"
	"github.com/JaimeStill/doc-library/internal/pgtest"
	"github.com/JaimeStill/doc-library/pkg/pagination"
	"github.com/JaimeStill/doc-library/pkg/storage"
	"github.com/google/uuid"
)

func newPostgresSystem(t *testing.T) (documents.System, *sql.DB) {
	t.Helper()
	db := pgtest.Open(t)

	cfg := &storage.Config{Backend: storage.BackendFilesystem, BasePath: t.TempDir()}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("storage config: %v", err)
	}
	blobs, err := storage.New(cfg, pgtest.Logger())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}

	var pages pagination.Config
	if err := pages.Finalize(nil); err != nil {
		t.Fatalf("pagination config: %v", err)
	}

	return documents.New(db, blobs, pgtest.Logger(), pages), db
}

func createDocument(t *testing.T, sys documents.System) *documents.Document {
	t.Helper()
	doc, err := sys.Create(context.Background(), documents.CreateCommand{
		Filename:  "report.pdf",
		PageCount: 3,
		Data:      []byte("%PDF-1.4 test"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() { sys.Delete(context.Background(), doc.ID) })
	return doc
}

func countPages(t *testing.T, db *sql.DB, id uuid.UUID) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM document_pages WHERE document_id = $1`, id).Scan(&n); err != nil {
		t.Fatalf("count pages: %v", err)
	}
	return n
}

func TestPostgres_CompleteThenTerminal(t *testing.T) {
	sys, db := newPostgresSystem(t)
	ctx := context.Background()
	doc := createDocument(t, sys)

	if doc.Status != documents.StatusProcessing {
		t.Fatalf("created status = %q, want processing", doc.Status)
	}

	pages := []documents.Page{
		{DocumentID: doc.ID, PageNumber: 1, ChunkIndex: 0, Text: "hello"},
		{DocumentID: doc.ID, PageNumber: 3, ChunkIndex: 0, Text: "abc"},
		{DocumentID: doc.ID, PageNumber: 3, ChunkIndex: 1, Text: "def"},
	}
	if err := sys.Complete(ctx, doc.ID, 3, pages); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	got, err := sys.Find(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got.Status != documents.StatusReady || got.ExtractedPages != 3 {
		t.Errorf("after Complete status = %q extracted = %d, want ready 3", got.Status, got.ExtractedPages)
	}
	if n := countPages(t, db, doc.ID); n != 3 {
		t.Errorf("rows = %d, want 3", n)
	}

	if err := sys.Complete(ctx, doc.ID, 3, pages); !errors.Is(err, documents.ErrInvalidTransition) {
		t.Errorf("second Complete() err = %v, want ErrInvalidTransition", err)
	}
	if err := sys.Fail(ctx, doc.ID); !errors.Is(err, documents.ErrInvalidTransition) {
		t.Errorf("Fail() on ready err = %v, want ErrInvalidTransition", err)
	}
	if n := countPages(t, db, doc.ID); n != 3 {
		t.Errorf("rows after rejected Complete = %d, want 3", n)
	}
}

func TestPostgres_TransitionMissingDocument(t *testing.T) {
	sys, _ := newPostgresSystem(t)
	ctx := context.Background()

	if err := sys.Complete(ctx, uuid.New(), 1, nil); !errors.Is(err, documents.ErrNotFound) {
		t.Errorf("Complete() err = %v, want ErrNotFound", err)
	}
	if err := sys.Fail(ctx, uuid.New()); !errors.Is(err, documents.ErrNotFound) {
		t.Errorf("Fail() err = %v, want ErrNotFound", err)
	}
}

func TestPostgres_CompleteRollsBack(t *testing.T) {
	sys, db := newPostgresSystem(t)
	ctx := context.Background()
	doc := createDocument(t, sys)

	duplicate := []documents.Page{
		{DocumentID: doc.ID, PageNumber: 1, ChunkIndex: 0, Text: "first"},
		{DocumentID: doc.ID, PageNumber: 1, ChunkIndex: 0, Text: "again"},
	}
	if err := sys.Complete(ctx, doc.ID, 1, duplicate); err == nil {
		t.Fatal("Complete() with duplicate chunk succeeded")
	}

	got, err := sys.Find(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got.Status != documents.StatusProcessing || got.ExtractedPages != 0 {
		t.Errorf("after rollback status = %q extracted = %d, want processing 0", got.Status, got.ExtractedPages)
	}
	if n := countPages(t, db, doc.ID); n != 0 {
		t.Errorf("rows after rollback = %d, want 0", n)
	}

	if err := sys.Fail(ctx, doc.ID); err != nil {
		t.Fatalf("Fail() error = %v", err)
	}
	if err := sys.Fail(ctx, doc.ID); !errors.Is(err, documents.ErrInvalidTransition) {
		t.Errorf("second Fail() err = %v, want ErrInvalidTransition", err)
	}
	if err := sys.Complete(ctx, doc.ID, 1, nil); !errors.Is(err, documents.ErrInvalidTransition) {
		t.Errorf("Complete() on failed err = %v, want ErrInvalidTransition", err)
	}
}

func TestPostgres_GetPage(t *testing.T) {
	sys, _ := newPostgresSystem(t)
	ctx := context.Background()
	doc := createDocument(t, sys)

	if _, err := sys.GetPage(ctx, doc.ID, 1); !errors.Is(err, documents.ErrPageNotFound) {
		t.Errorf("GetPage() before ingestion err = %v, want ErrPageNotFound", err)
	}

	pages := []documents.Page{
		{DocumentID: doc.ID, PageNumber: 1, ChunkIndex: 0, Text: "hello"},
		{DocumentID: doc.ID, PageNumber: 3, ChunkIndex: 1, Text: "def"},
		{DocumentID: doc.ID, PageNumber: 3, ChunkIndex: 0, Text: "abc"},
	}
	if err := sys.Complete(ctx, doc.ID, 3, pages); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	tests := []struct {
		name       string
		page       int
		wantText   string
		wantChunks int
		wantErr    error
	}{
		{"single chunk", 1, "hello", 0, nil},
		{"blank page", 2, "", 0, nil},
		{"chunks in index order", 3, "abcdef", 2, nil},
		{"past last page", 4, "", 0, documents.ErrPageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, err := sys.GetPage(ctx, doc.ID, tt.page)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetPage() error = %v", err)
			}
			if pt.Text != tt.wantText || len(pt.Chunks) != tt.wantChunks {
				t.Errorf("got text %q with %d chunks, want %q with %d", pt.Text, len(pt.Chunks), tt.wantText, tt.wantChunks)
			}
		})
	}
}

func TestPostgres_DeleteCascades(t *testing.T) {
	sys, db := newPostgresSystem(t)
	ctx := context.Background()
	doc := createDocument(t, sys)

	pages := []documents.Page{{DocumentID: doc.ID, PageNumber: 1, ChunkIndex: 0, Text: "hello"}}
	if err := sys.Complete(ctx, doc.ID, 1, pages); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if err := sys.Delete(ctx, doc.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if n := countPages(t, db, doc.ID); n != 0 {
		t.Errorf("rows after delete = %d, want 0", n)
	}
	if _, err := sys.Find(ctx, doc.ID); !errors.Is(err, documents.ErrNotFound) {
		t.Errorf("Find() after delete err = %v, want ErrNotFound", err)
	}
	if err := sys.Delete(ctx, doc.ID); !errors.Is(err, documents.ErrNotFound) {
		t.Errorf("second Delete() err = %v, want ErrNotFound", err)
	}
}
