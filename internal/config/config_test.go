package config_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/doc-library/internal/config"
	"github.com/JaimeStill/doc-library/pkg/storage"
)

const baseTOML = `
shutdown_timeout = "20s"

[server]
port = 9090

[database]
name = "docs"
user = "docs"

[storage]
backend = "filesystem"
base_path = "/tmp/blobs"
max_upload_size = "10MB"

[api]
api_key = "secret"

[api.search]
default_limit = 5

[ingestion]
chunk_size = 500
`

func parse(t *testing.T, data string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return cfg
}

func TestConfig_Finalize(t *testing.T) {
	cfg := parse(t, baseTOML)
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 20*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 20s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Addr() != "0.0.0.0:9090" {
		t.Errorf("Addr() = %q, want 0.0.0.0:9090", cfg.Server.Addr())
	}
	if cfg.Storage.Backend != storage.BackendFilesystem {
		t.Errorf("Storage.Backend = %q", cfg.Storage.Backend)
	}
	if cfg.Storage.MaxUploadSizeBytes() != 10*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 10485760", cfg.Storage.MaxUploadSizeBytes())
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.API.APIKey != "secret" {
		t.Errorf("API.APIKey = %q, want secret", cfg.API.APIKey)
	}
	if cfg.API.Search.DefaultLimit != 5 || cfg.API.Search.MaxLimit != 100 {
		t.Errorf("API.Search = %+v, want default 5 max 100", cfg.API.Search)
	}
	if cfg.Ingestion.ChunkSize != 500 {
		t.Errorf("Ingestion.ChunkSize = %d, want 500", cfg.Ingestion.ChunkSize)
	}
	if cfg.Ingestion.Workers != 4 || cfg.Ingestion.QueueSize != 64 {
		t.Errorf("Ingestion = %+v, want default workers and queue", cfg.Ingestion)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := parse(t, baseTOML)
	overlay := parse(t, `
[server]
port = 7070

[ingestion]
workers = 2
`)
	cfg.Merge(overlay)

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Ingestion.Workers != 2 {
		t.Errorf("Ingestion.Workers = %d, want 2", cfg.Ingestion.Workers)
	}
	if cfg.Ingestion.ChunkSize != 500 {
		t.Errorf("Ingestion.ChunkSize = %d, want base value 500", cfg.Ingestion.ChunkSize)
	}
	if cfg.API.APIKey != "secret" {
		t.Errorf("API.APIKey = %q, want base value kept", cfg.API.APIKey)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "6060")
	t.Setenv("API_KEY", "from-env")
	t.Setenv("INGESTION_CHUNK_SIZE", "250")
	t.Setenv("STORAGE_MAX_UPLOAD_SIZE", "1MB")

	cfg := parse(t, baseTOML)
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Server.Port != 6060 {
		t.Errorf("Server.Port = %d, want 6060", cfg.Server.Port)
	}
	if cfg.API.APIKey != "from-env" {
		t.Errorf("API.APIKey = %q, want from-env", cfg.API.APIKey)
	}
	if cfg.Ingestion.ChunkSize != 250 {
		t.Errorf("Ingestion.ChunkSize = %d, want 250", cfg.Ingestion.ChunkSize)
	}
	if cfg.Storage.MaxUploadSizeBytes() != 1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 1048576", cfg.Storage.MaxUploadSizeBytes())
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"missing database name", `
[database]
user = "docs"
`},
		{"bad shutdown timeout", `
shutdown_timeout = "forever"
[database]
name = "docs"
user = "docs"
`},
		{"s3 without bucket", `
[database]
name = "docs"
user = "docs"
[storage]
backend = "s3"
`},
		{"negative chunk size", `
[database]
name = "docs"
user = "docs"
[ingestion]
chunk_size = -5
`},
		{"pool smaller than workers", `
[database]
name = "docs"
user = "docs"
max_open_conns = 4
max_idle_conns = 2
[ingestion]
workers = 4
`},
		{"bad ssl mode", `
[database]
name = "docs"
user = "docs"
ssl_mode = "maybe"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parse(t, tt.toml)
			if err := cfg.Finalize(); err == nil {
				t.Error("Finalize() should fail")
			}
		})
	}
}
