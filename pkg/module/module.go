// Package module mounts self-contained HTTP handlers under single-segment
// prefixes. Each module owns its middleware chain and sees request paths
// with its prefix stripped.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Module is an HTTP handler mounted at a fixed prefix such as "/api".
type Module struct {
	prefix      string
	handler     http.Handler
	middlewares []func(http.Handler) http.Handler
}

// New creates a module. It panics if prefix is not a single path segment
// with a leading slash.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:  prefix,
		handler: handler,
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. The first registered middleware runs outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middlewares = append(m.middlewares, mw)
}

// Handler returns the module handler wrapped in its middleware chain.
func (m *Module) Handler() http.Handler {
	h := m.handler
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		h = m.middlewares[i](h)
	}
	return h
}

// Serve strips the module prefix from the request path and dispatches it.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	req := r.Clone(r.Context())
	req.URL.Path = path
	req.URL.RawPath = ""

	m.Handler().ServeHTTP(w, req)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix must not be empty")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must start with /", prefix)
	}
	if strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
