package openapi

// NewSpec creates an OpenAPI 3.1 document with standard components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: "3.1.0",
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

// SetDescription sets the API description.
func (s *Spec) SetDescription(desc string) {
	s.Info.Description = desc
}

// AddServer appends a server URL.
func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// RequireAPIKey registers an API key security scheme read from header and
// applies it to every operation.
func (s *Spec) RequireAPIKey(header string) {
	if s.Components.SecuritySchemes == nil {
		s.Components.SecuritySchemes = make(map[string]*SecurityScheme)
	}
	s.Components.SecuritySchemes["ApiKey"] = &SecurityScheme{
		Type: "apiKey",
		Name: header,
		In:   "header",
	}
	s.Security = []map[string][]string{{"ApiKey": {}}}
}
