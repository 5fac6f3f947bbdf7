// Package storage provides blob storage for uploaded documents.
// A filesystem backend serves development and single-node deployments;
// an S3 backend serves shared object stores.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/doc-library/pkg/lifecycle"
)

// System defines blob storage operations.
type System interface {
	// Store saves data at key, replacing any existing blob atomically.
	// Returns ErrInvalidKey if the key is empty or escapes the store.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the blob at key or ErrNotFound.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob at key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Validate reports whether key exists and is readable.
	Validate(ctx context.Context, key string) (bool, error)

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}

// New returns the backend selected by cfg.Backend.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Backend {
	case BackendFilesystem, "":
		return newFilesystem(cfg, logger)
	case BackendS3:
		return newS3(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
