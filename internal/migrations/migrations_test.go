package migrations_test

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/JaimeStill/doc-library/internal/migrations"
)

func TestFS_PairsUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	ups := make(map[string]bool)
	downs := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	if len(ups) == 0 {
		t.Fatal("no up migrations embedded")
	}
	for v := range ups {
		if !downs[v] {
			t.Errorf("migration %s has no down file", v)
		}
	}
}

func TestFS_SchemaCascadesPages(t *testing.T) {
	data, err := fs.ReadFile(migrations.FS, "000001_create_documents.up.sql")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	sql := string(data)

	for _, want := range []string{
		"ON DELETE CASCADE",
		"UNIQUE (document_id, page_number, chunk_index)",
		"CHECK (status IN ('processing', 'ready', 'failed'))",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("schema missing %q", want)
		}
	}
}

func TestFS_ExtractedPagesColumn(t *testing.T) {
	data, err := fs.ReadFile(migrations.FS, "000002_add_extracted_pages.up.sql")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "ADD COLUMN extracted_pages INTEGER NOT NULL DEFAULT 0") {
		t.Errorf("migration does not add extracted_pages: %s", data)
	}
}
