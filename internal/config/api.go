package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/doc-library/internal/search"
	"github.com/JaimeStill/doc-library/pkg/middleware"
	"github.com/JaimeStill/doc-library/pkg/openapi"
	"github.com/JaimeStill/doc-library/pkg/pagination"
)

const (
	EnvAPIBasePath = "API_BASE_PATH"
	EnvAPIKey      = "API_KEY"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
}

var paginationEnv = &pagination.Env{
	DefaultPageSize: "API_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "API_PAGINATION_MAX_PAGE_SIZE",
}

var searchEnv = &search.Env{
	DefaultLimit: "API_SEARCH_DEFAULT_LIMIT",
	MaxLimit:     "API_SEARCH_MAX_LIMIT",
}

// APIConfig contains settings for the API module.
type APIConfig struct {
	BasePath string `toml:"base_path"`

	// APIKey, when set, is required in the X-API-Key header of every API request.
	APIKey string `toml:"api_key"`

	CORS       middleware.CORSConfig `toml:"cors"`
	Pagination pagination.Config     `toml:"pagination"`
	OpenAPI    openapi.Config        `toml:"openapi"`
	Search     search.Config         `toml:"search"`
}

// Finalize applies defaults, loads environment overrides, and validates nested sections.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	if err := c.Search.Finalize(searchEnv); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
	c.Search.Merge(&overlay.Search)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.APIKey = v
	}
}
