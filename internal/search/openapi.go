package search

import "github.com/JaimeStill/doc-library/pkg/openapi"

type spec struct {
	Search *openapi.Operation
}

var Spec = spec{
	Search: &openapi.Operation{
		Summary:     "Search page text",
		Description: "Case-insensitive substring search over extracted chunks. Results are unranked.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("q", "string", "Text to find", true),
			openapi.QueryParam("limit", "integer", "Maximum matches, 1 to 100 (default 10 when omitted)", false),
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Matches",
				Content: map[string]*openapi.MediaType{
					"application/json": {
						Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("SearchMatch")},
					},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"SearchMatch": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"document_id":  {Type: "string", Format: "uuid"},
				"filename":     {Type: "string"},
				"page_number":  {Type: "integer"},
				"text_snippet": {Type: "string", Description: "Text around the first match"},
			},
		},
	}
}
