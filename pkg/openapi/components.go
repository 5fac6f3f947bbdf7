package openapi

// NewComponents returns the schemas and responses shared by every API group.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "Page number (1-indexed)", Example: 1},
					"page_size": {Type: "integer", Description: "Results per page", Example: 20},
					"search":    {Type: "string", Description: "Search query"},
					"sort": {
						Type:        "array",
						Description: "Sort fields applied in order",
						Items: &Schema{
							Type: "object",
							Properties: map[string]*Schema{
								"field":      {Type: "string"},
								"descending": {Type: "boolean"},
							},
						},
					},
				},
			},
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":          errorResponse("Invalid request"),
			"NotFound":            errorResponse("Resource not found"),
			"Conflict":            errorResponse("Resource conflict"),
			"Unauthorized":        errorResponse("Missing or invalid API key"),
			"ServiceUnavailable":  errorResponse("Service temporarily unavailable"),
			"UnprocessableEntity": errorResponse("Request could not be processed"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing existing names.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the components, replacing existing names.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, response := range responses {
		c.Responses[name] = response
	}
}

func errorResponse(description string) *Response {
	return ResponseJSON(description, "Error")
}
