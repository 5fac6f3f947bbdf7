package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/doc-library/pkg/pagination"
	"github.com/JaimeStill/doc-library/pkg/query"
	"github.com/JaimeStill/doc-library/pkg/repository"
	"github.com/JaimeStill/doc-library/pkg/storage"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a document repository with database and blob storage integration.
func New(db *sql.DB, storage storage.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		storage:    storage,
		logger:     logger.With("system", "documents"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	doc, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &doc, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	id := uuid.New()
	storageKey := buildStorageKey(id, cmd.Filename)

	if err := r.storage.Store(ctx, storageKey, cmd.Data); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	q := `INSERT INTO documents(id, filename, size_bytes, page_count, status, storage_key)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, filename, size_bytes, page_count, status, storage_key, created_at, extracted_pages`

	doc, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.Filename, int64(len(cmd.Data)), cmd.PageCount, string(StatusProcessing), storageKey,
		}, scanDocument)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, storageKey); delErr != nil {
			r.logger.Error("cleanup failed after db error", "storage_key", storageKey, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document created", "id", doc.ID, "filename", doc.Filename, "storage_key", storageKey)
	return &doc, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	q := `DELETE FROM documents WHERE id = $1`
	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, doc.StorageKey); err != nil {
		r.logger.Error("storage cleanup failed", "storage_key", doc.StorageKey, "error", err)
	}

	r.logger.Info("document deleted", "id", id)
	return nil
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*Document, []byte, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	data, err := r.storage.Retrieve(ctx, doc.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, ErrBlobNotFound
		}
		return nil, nil, fmt.Errorf("retrieve file: %w", err)
	}

	return doc, data, nil
}

func (r *repo) GetPage(ctx context.Context, id uuid.UUID, pageNumber int) (*PageText, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	q := `SELECT text FROM document_pages
		WHERE document_id = $1 AND page_number = $2
		ORDER BY chunk_index`

	chunks, err := repository.QueryMany(ctx, r.db, q, []any{id, pageNumber}, scanText)
	if err != nil {
		return nil, fmt.Errorf("query page chunks: %w", err)
	}

	return assemblePage(pageNumber, doc.ExtractedPages, chunks)
}

func (r *repo) Complete(ctx context.Context, id uuid.UUID, extractedPages int, pages []Page) error {
	if extractedPages < 0 {
		return fmt.Errorf("extracted pages must not be negative: %d", extractedPages)
	}

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := transition(ctx, tx, id, StatusReady); err != nil {
			return struct{}{}, err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE documents SET extracted_pages = $1 WHERE id = $2`, extractedPages, id,
		); err != nil {
			return struct{}{}, fmt.Errorf("record extracted pages: %w", err)
		}
		return struct{}{}, insertPages(ctx, tx, id, pages)
	})
	if err != nil {
		return err
	}

	r.logger.Info("document ready", "id", id, "pages", extractedPages, "chunks", len(pages))
	return nil
}

func (r *repo) Fail(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, transition(ctx, tx, id, StatusFailed)
	})
	if err != nil {
		return err
	}

	r.logger.Info("document failed", "id", id)
	return nil
}

// transition moves a processing document to next. The status guard lives in
// the WHERE clause so concurrent writers cannot both succeed.
func transition(ctx context.Context, tx *sql.Tx, id uuid.UUID, next Status) error {
	if !StatusProcessing.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, StatusProcessing, next)
	}

	q := `UPDATE documents SET status = $1 WHERE id = $2 AND status = $3`
	err := repository.ExecExpectOne(ctx, tx, q, string(next), id, string(StatusProcessing))
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update status: %w", err)
	}

	var current Status
	row := tx.QueryRowContext(ctx, `SELECT status FROM documents WHERE id = $1`, id)
	if err := row.Scan(&current); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
}

func insertPages(ctx context.Context, tx *sql.Tx, id uuid.UUID, pages []Page) error {
	if len(pages) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO document_pages(id, document_id, page_number, chunk_index, text)
		VALUES($1, $2, $3, $4, $5)`)
	if err != nil {
		return fmt.Errorf("prepare page insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pages {
		if _, err := stmt.ExecContext(ctx, uuid.New(), id, p.PageNumber, p.ChunkIndex, p.Text); err != nil {
			return fmt.Errorf("insert page %d chunk %d: %w", p.PageNumber, p.ChunkIndex, err)
		}
	}
	return nil
}

// assemblePage joins a page's chunks. A page within the extracted range
// with no chunks was blank and yields empty text.
func assemblePage(pageNumber, extractedPages int, chunks []string) (*PageText, error) {
	if len(chunks) == 0 {
		if pageNumber < 1 || pageNumber > extractedPages {
			return nil, ErrPageNotFound
		}
		return &PageText{PageNumber: pageNumber, Text: "", Chunks: []string{}}, nil
	}

	pt := &PageText{
		PageNumber: pageNumber,
		Text:       strings.Join(chunks, ""),
		Chunks:     []string{},
	}
	if len(chunks) > 1 {
		pt.Chunks = chunks
	}
	return pt, nil
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("documents/%s/%s", id.String(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	replacer := strings.NewReplacer(
		" ", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	name = replacer.Replace(name)
	if name == "." || name == ".." || name == "/" || name == "" {
		return "document.pdf"
	}
	return name
}
