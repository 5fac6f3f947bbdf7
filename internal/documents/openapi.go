package documents

import "github.com/JaimeStill/doc-library/pkg/openapi"

type spec struct {
	List     *openapi.Operation
	Find     *openapi.Operation
	Upload   *openapi.Operation
	Delete   *openapi.Operation
	Download *openapi.Operation
	GetPage  *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List documents",
		Description: "List documents with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number, a positive integer", false),
			openapi.QueryParam("page_size", "integer", "Items per page, capped at the configured maximum", false),
			openapi.QueryParam("search", "string", "Search in filename", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields, prefix with - for descending", false),
			openapi.QueryParam("filename", "string", "Filter by filename (contains)", false),
			openapi.QueryParam("status", "string", "Filter by ingestion status", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Documents list", "DocumentPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find document",
		Description: "Find document by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document details", "Document"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Upload: &openapi.Operation{
		Summary:     "Upload document",
		Description: "Upload a PDF. The document is created in the processing state and its text is extracted in the background.",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"file": {Type: "string", Format: "binary", Description: "PDF file to upload"},
						},
						Required: []string{"file"},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Document uploaded", "Document"),
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "File too large"},
			503: openapi.ResponseRef("ServiceUnavailable"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete document",
		Description: "Delete document, its extracted pages, and its stored file",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Document deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Download: &openapi.Operation{
		Summary:     "Download document",
		Description: "Download the original PDF",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "PDF file",
				Content: map[string]*openapi.MediaType{
					"application/pdf": {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
				},
			},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	GetPage: &openapi.Operation{
		Summary:     "Get page text",
		Description: "Extracted text of a single page",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
			openapi.IntPathParam("page", "Page number (1-based)"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page text", "PageText"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"filename":    {Type: "string", Description: "Original filename"},
				"size_bytes":  {Type: "integer", Format: "int64", Description: "File size in bytes"},
				"page_count":  {Type: "integer", Description: "Page count, 0 when it could not be read at upload"},
				"status":      {Type: "string", Enum: []string{string(StatusProcessing), string(StatusReady), string(StatusFailed)}},
				"storage_key": {Type: "string", Description: "Storage location key"},
				"created_at":  {Type: "string", Format: "date-time"},
				"extracted_pages": {
					Type:        "integer",
					Description: "Pages read by ingestion, including blank pages; 0 until ready",
				},
			},
		},
		"PageText": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"page_number": {Type: "integer"},
				"text":        {Type: "string"},
				"chunks": {
					Type:        "array",
					Description: "Chunk texts, present only when the page was split",
					Items:       &openapi.Schema{Type: "string"},
				},
			},
		},
		"DocumentPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Document")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
				"has_next":    {Type: "boolean"},
			},
		},
	}
}
