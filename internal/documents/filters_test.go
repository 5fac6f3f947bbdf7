package documents_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/doc-library/internal/documents"
	"github.com/JaimeStill/doc-library/pkg/query"
)

var testProjection = query.NewProjectionMap("public", "documents", "d").
	Project("filename", "Filename").
	Project("status", "Status")

func TestFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		values       url.Values
		wantFilename string
		wantStatus   documents.Status
	}{
		{"empty", url.Values{}, "", ""},
		{"filename", url.Values{"filename": {"report"}}, "report", ""},
		{"status", url.Values{"status": {"ready"}}, "", documents.StatusReady},
		{"unknown status ignored", url.Values{"status": {"archived"}}, "", ""},
		{"both", url.Values{"filename": {"a"}, "status": {"failed"}}, "a", documents.StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := documents.FiltersFromQuery(tt.values)

			var gotFilename string
			if f.Filename != nil {
				gotFilename = *f.Filename
			}
			if gotFilename != tt.wantFilename {
				t.Errorf("Filename = %q, want %q", gotFilename, tt.wantFilename)
			}

			var gotStatus documents.Status
			if f.Status != nil {
				gotStatus = *f.Status
			}
			if gotStatus != tt.wantStatus {
				t.Errorf("Status = %q, want %q", gotStatus, tt.wantStatus)
			}
		})
	}
}

func TestFilters_Apply(t *testing.T) {
	name := "50%_off"
	status := documents.StatusReady
	f := documents.Filters{Filename: &name, Status: &status}

	sql, args := f.Apply(query.NewBuilder(testProjection)).BuildCount()

	if !strings.Contains(sql, "ILIKE") || !strings.Contains(sql, "= $2") {
		t.Errorf("unexpected sql: %s", sql)
	}
	if len(args) != 2 {
		t.Fatalf("len(args) = %d, want 2", len(args))
	}
	if args[0] != `%50\%\_off%` {
		t.Errorf("args[0] = %v, want escaped pattern", args[0])
	}
	if args[1] != "ready" {
		t.Errorf("args[1] = %v, want ready", args[1])
	}
}

func TestFilters_Apply_Empty(t *testing.T) {
	sql, args := documents.Filters{}.Apply(query.NewBuilder(testProjection)).BuildCount()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("empty filters produced a WHERE clause: %s", sql)
	}
	if len(args) != 0 {
		t.Errorf("len(args) = %d, want 0", len(args))
	}
}
