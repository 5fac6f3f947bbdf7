package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware enforcing cfg. When CORS is disabled or no origins
// are configured the middleware passes requests through untouched.
// Preflight requests are answered with 200 and never reach next.
func CORS(cfg *CORSConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled || len(cfg.Origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
