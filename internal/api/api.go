// Package api assembles the document library HTTP API module.
package api

import (
	"net/http"

	"github.com/JaimeStill/doc-library/internal/config"
	"github.com/JaimeStill/doc-library/pkg/middleware"
	"github.com/JaimeStill/doc-library/pkg/module"
	"github.com/JaimeStill/doc-library/pkg/openapi"
)

// NewModule builds the API module: domain routes, the generated OpenAPI
// document, and the request logging, CORS, and API key middleware.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)
	if cfg.API.APIKey != "" {
		spec.RequireAPIKey(middleware.APIKeyHeader)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.APIKey(cfg.API.APIKey))

	return m, nil
}
