package search

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/doc-library/pkg/handlers"
	"github.com/JaimeStill/doc-library/pkg/routes"
)

// Handler provides the HTTP search endpoint.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a search handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "search"),
	}
}

// Routes returns the search endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/search",
		Tags:        []string{"Search"},
		Description: "Substring search over extracted page text",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Search, OpenAPI: Spec.Search},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	var limit *int
	if values.Has("limit") {
		n, err := strconv.Atoi(values.Get("limit"))
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidLimit)
			return
		}
		limit = &n
	}

	matches, err := h.sys.Search(r.Context(), values.Get("q"), limit)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, matches)
}
