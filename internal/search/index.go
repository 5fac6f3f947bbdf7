package search

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaimeStill/doc-library/pkg/query"
	"github.com/JaimeStill/doc-library/pkg/repository"
	"github.com/google/uuid"
)

// Hit is a chunk whose text contains the query.
type Hit struct {
	DocumentID uuid.UUID
	Filename   string
	PageNumber int
	Text       string
}

// Index finds chunks containing a literal, case-insensitive substring.
type Index interface {
	Scan(ctx context.Context, q string, limit int) ([]Hit, error)
}

type pgIndex struct {
	db *sql.DB
}

// NewIndex returns an Index that scans the document_pages table.
func NewIndex(db *sql.DB) Index {
	return &pgIndex{db: db}
}

const scanQuery = `SELECT p.document_id, d.filename, p.page_number, p.text
	FROM public.document_pages p
	JOIN public.documents d ON d.id = p.document_id
	WHERE p.text ILIKE $1 ESCAPE '\'
	LIMIT $2`

func (i *pgIndex) Scan(ctx context.Context, q string, limit int) ([]Hit, error) {
	pattern := "%" + query.EscapeLike(q) + "%"

	hits, err := repository.QueryMany(ctx, i.db, scanQuery, []any{pattern, limit}, scanHit)
	if err != nil {
		return nil, fmt.Errorf("scan chunks: %w", err)
	}
	return hits, nil
}

func scanHit(s repository.Scanner) (Hit, error) {
	var h Hit
	err := s.Scan(&h.DocumentID, &h.Filename, &h.PageNumber, &h.Text)
	return h, err
}
