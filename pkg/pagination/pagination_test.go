package pagination_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/JaimeStill/doc-library/pkg/pagination"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &pagination.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.DefaultPageSize != 20 {
		t.Errorf("DefaultPageSize = %d, want 20", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_PAGE_DEFAULT", "15")
	t.Setenv("TEST_PAGE_MAX", "75")

	cfg := &pagination.Config{}
	env := &pagination.Env{
		DefaultPageSize: "TEST_PAGE_DEFAULT",
		MaxPageSize:     "TEST_PAGE_MAX",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.DefaultPageSize != 15 || cfg.MaxPageSize != 75 {
		t.Errorf("got %d/%d, want 15/75", cfg.DefaultPageSize, cfg.MaxPageSize)
	}
}

func TestConfig_Finalize_DefaultExceedsMax(t *testing.T) {
	cfg := &pagination.Config{DefaultPageSize: 50, MaxPageSize: 25}

	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() succeeded, want error")
	}
}

func TestConfig_Merge(t *testing.T) {
	base := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	base.Merge(&pagination.Config{DefaultPageSize: 15})

	if base.DefaultPageSize != 15 {
		t.Errorf("DefaultPageSize = %d, want 15", base.DefaultPageSize)
	}
	if base.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100 (zero overlay ignored)", base.MaxPageSize)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantSearch   string
		wantSorts    int
	}{
		{"defaults", "", 1, 20, "", 0},
		{"explicit", "page=3&page_size=5", 3, 5, "", 0},
		{"page size capped", "page_size=500", 1, 100, "", 0},
		{"search and sort", "search=report&sort=filename,-created_at", 1, 20, "report", 2},
		{"search trimmed", "search=%20%20report%20", 1, 20, "report", 0},
		{"blank search dropped", "search=%20%20", 1, 20, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req, err := pagination.PageRequestFromQuery(values, cfg)
			if err != nil {
				t.Fatalf("PageRequestFromQuery() failed: %v", err)
			}

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
			if tt.wantSearch == "" && req.Search != nil {
				t.Errorf("Search = %q, want nil", *req.Search)
			}
			if tt.wantSearch != "" && (req.Search == nil || *req.Search != tt.wantSearch) {
				t.Errorf("Search = %v, want %q", req.Search, tt.wantSearch)
			}
			if len(req.Sort) != tt.wantSorts {
				t.Errorf("len(Sort) = %d, want %d", len(req.Sort), tt.wantSorts)
			}
		})
	}
}

func TestPageRequestFromQuery_Invalid(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

	tests := []struct {
		name  string
		query string
	}{
		{"zero page", "page=0"},
		{"negative page", "page=-1"},
		{"non-numeric page", "page=two"},
		{"zero page size", "page_size=0"},
		{"empty page size", "page_size="},
		{"non-numeric page size", "page_size=ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			_, err := pagination.PageRequestFromQuery(values, cfg)
			if !errors.Is(err, pagination.ErrInvalidPage) {
				t.Errorf("err = %v, want ErrInvalidPage", err)
			}
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	req := pagination.PageRequest{Page: 4, PageSize: 25}
	if req.Offset() != 75 {
		t.Errorf("Offset() = %d, want 75", req.Offset())
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page        int
		pageSize    int
		wantPages   int
		wantHasNext bool
	}{
		{"empty", 0, 1, 10, 1, false},
		{"exact", 30, 1, 10, 3, true},
		{"remainder", 31, 3, 10, 4, true},
		{"last page", 31, 4, 10, 4, false},
		{"past the end", 5, 9, 10, 1, false},
		{"zero page size", 5, 1, 0, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult[string](nil, tt.total, tt.page, tt.pageSize)

			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantPages)
			}
			if result.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", result.HasNext, tt.wantHasNext)
			}
			if result.Data == nil {
				t.Error("Data is nil, want empty slice")
			}
		})
	}
}
