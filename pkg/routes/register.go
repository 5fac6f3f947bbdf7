package routes

import (
	"net/http"

	"github.com/JaimeStill/doc-library/pkg/openapi"
)

// Register mounts every group on mux and documents it in spec.
// Mux patterns are relative to the module; spec paths are prefixed with basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		group.AddToSpec(basePath, spec)
		group.register(mux, "")
	}
}
