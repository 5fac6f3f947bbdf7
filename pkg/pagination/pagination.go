package pagination

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/JaimeStill/doc-library/pkg/query"
)

// ErrInvalidPage is returned when page or page_size is present but not a positive integer.
var ErrInvalidPage = errors.New("invalid pagination parameter")

// PageRequest is a client request for one page of a listing.
type PageRequest struct {
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Search   *string           `json:"search,omitempty"`
	Sort     []query.SortField `json:"sort,omitempty"`
}

// Normalize fills unset values from cfg and caps PageSize at cfg.MaxPageSize.
func (r *PageRequest) Normalize(cfg Config) {
	r.Page = max(r.Page, 1)
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	r.PageSize = min(r.PageSize, cfg.MaxPageSize)
}

// Offset is the number of rows preceding the requested page.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery reads page, page_size, search and sort from values.
// Absent values take the config defaults; a page_size above the maximum is
// capped. A present page or page_size that is not a positive integer yields
// ErrInvalidPage. Blank search terms are dropped.
func PageRequestFromQuery(values url.Values, cfg Config) (PageRequest, error) {
	page, err := positiveParam(values, "page")
	if err != nil {
		return PageRequest{}, err
	}

	pageSize, err := positiveParam(values, "page_size")
	if err != nil {
		return PageRequest{}, err
	}

	req := PageRequest{
		Page:     page,
		PageSize: pageSize,
		Sort:     query.ParseSortFields(values.Get("sort")),
	}

	if s := strings.TrimSpace(values.Get("search")); s != "" {
		req.Search = &s
	}

	req.Normalize(cfg)
	return req, nil
}

func positiveParam(values url.Values, name string) (int, error) {
	if !values.Has(name) {
		return 0, nil
	}
	n, err := strconv.Atoi(values.Get(name))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s=%q (want a positive integer)", ErrInvalidPage, name, values.Get(name))
	}
	return n, nil
}

// PageResult is one page of T with the totals needed to walk the rest.
type PageResult[T any] struct {
	Data       []T  `json:"data"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPageResult wraps data with page metadata. TotalPages is never less than one
// and Data is never nil.
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	totalPages := 1
	if pageSize > 0 && total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}
