package api

import (
	"net/http"

	"github.com/JaimeStill/doc-library/internal/config"
	"github.com/JaimeStill/doc-library/internal/documents"
	"github.com/JaimeStill/doc-library/internal/search"
	"github.com/JaimeStill/doc-library/pkg/openapi"
	"github.com/JaimeStill/doc-library/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	documentsHandler := documents.NewHandler(
		domain.Documents,
		domain.Ingestion,
		runtime.Logger,
		runtime.Pagination,
		cfg.Storage.MaxUploadSizeBytes(),
	)
	searchHandler := search.NewHandler(domain.Search, runtime.Logger)

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		documentsHandler.Routes(),
		searchHandler.Routes(),
	)
}
