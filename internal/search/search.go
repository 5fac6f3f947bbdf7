// Package search answers substring queries over ingested page chunks.
// Matching is chunk-local: an occurrence that straddles a chunk boundary is
// not found. Results are unranked.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Match is one chunk containing the query.
type Match struct {
	DocumentID uuid.UUID `json:"document_id"`
	Filename   string    `json:"filename"`
	PageNumber int       `json:"page_number"`
	Snippet    string    `json:"text_snippet"`
}

// System runs searches.
type System interface {
	// Search returns up to limit matches for q. A nil limit selects the
	// configured default; an explicit limit must be in 1..MaxLimit.
	Search(ctx context.Context, q string, limit *int) ([]Match, error)
}

type searcher struct {
	index  Index
	cfg    Config
	logger *slog.Logger
}

// New creates a search system over index.
func New(index Index, cfg *Config, logger *slog.Logger) System {
	return &searcher{
		index:  index,
		cfg:    *cfg,
		logger: logger.With("system", "search"),
	}
}

func (s *searcher) Search(ctx context.Context, q string, requested *int) ([]Match, error) {
	if q == "" {
		return nil, ErrInvalidQuery
	}

	limit := s.cfg.DefaultLimit
	if requested != nil {
		limit = *requested
	}
	if limit < 1 || limit > s.cfg.MaxLimit {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidLimit, limit, s.cfg.MaxLimit)
	}

	hits, err := s.index.Scan(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}

	matches := make([]Match, len(hits))
	for i, h := range hits {
		matches[i] = Match{
			DocumentID: h.DocumentID,
			Filename:   h.Filename,
			PageNumber: h.PageNumber,
			Snippet:    Snippet(h.Text, q),
		}
	}

	s.logger.Debug("search", "query", q, "limit", limit, "matches", len(matches))
	return matches, nil
}
