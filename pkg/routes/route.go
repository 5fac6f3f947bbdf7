// Package routes declares HTTP routes alongside their OpenAPI operations so a
// single definition drives both mux registration and spec generation.
package routes

import (
	"net/http"

	"github.com/JaimeStill/doc-library/pkg/openapi"
)

// Route binds a method and pattern to a handler. OpenAPI is optional;
// routes without it are served but left out of the spec.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
