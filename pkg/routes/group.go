package routes

import (
	"net/http"

	"github.com/JaimeStill/doc-library/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec writes the group's operations and schemas into spec.
// Operations without explicit tags inherit the group tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, nil, spec)
}

func (g *Group) addToSpec(basePath string, parentTags []string, spec *openapi.Spec) {
	tags := g.Tags
	if len(tags) == 0 {
		tags = parentTags
	}

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		path := basePath + g.Prefix + route.Pattern
		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = tags
		}

		item, ok := spec.Paths[path]
		if !ok {
			item = &openapi.PathItem{}
			spec.Paths[path] = item
		}

		switch route.Method {
		case http.MethodGet:
			item.Get = op
		case http.MethodPost:
			item.Post = op
		case http.MethodPut:
			item.Put = op
		case http.MethodDelete:
			item.Delete = op
		}
	}

	for _, child := range g.Children {
		child.addToSpec(basePath+g.Prefix, tags, spec)
	}
}

func (g *Group) register(mux *http.ServeMux, prefix string) {
	for _, route := range g.Routes {
		pattern := route.Method + " " + prefix + g.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix+g.Prefix)
	}
}
