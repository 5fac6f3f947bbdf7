package documents

import "github.com/JaimeStill/doc-library/pkg/query"

var projection = query.NewProjectionMap("public", "documents", "d").
	Project("id", "Id").
	Project("filename", "Filename").
	Project("size_bytes", "SizeBytes").
	Project("page_count", "PageCount").
	Project("status", "Status").
	Project("storage_key", "StorageKey").
	Project("created_at", "CreatedAt").
	Project("extracted_pages", "ExtractedPages")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
