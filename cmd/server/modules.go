package main

import (
	"context"
	"net/http"

	"github.com/JaimeStill/doc-library/internal/api"
	"github.com/JaimeStill/doc-library/internal/config"
	"github.com/JaimeStill/doc-library/internal/infrastructure"
	"github.com/JaimeStill/doc-library/pkg/handlers"
	"github.com/JaimeStill/doc-library/pkg/lifecycle"
	"github.com/JaimeStill/doc-library/pkg/module"
)

type Modules struct {
	API *module.Module

	domain *api.Domain
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	runtime := api.NewRuntime(cfg, infra)
	domain := api.NewDomain(runtime, cfg)

	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:    apiModule,
		domain: domain,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

// Start launches module background work such as ingestion workers.
func (m *Modules) Start(lc *lifecycle.Coordinator) error {
	return m.domain.Start(lc)
}

type healthResponse struct {
	Status       string `json:"status"`
	DBConnection bool   `json:"db_connection"`
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", healthHandler(infra.Database))

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:       "unhealthy",
				DBConnection: false,
			})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, healthResponse{
			Status:       "healthy",
			DBConnection: true,
		})
	}
}
