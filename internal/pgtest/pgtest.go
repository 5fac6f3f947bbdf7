// Package pgtest opens a migrated PostgreSQL connection for tests that
// exercise real SQL. Tests using it are skipped unless DATABASE_HOST is set.
package pgtest

import (
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/JaimeStill/doc-library/internal/migrations"
	"github.com/JaimeStill/doc-library/pkg/database"
)

// EnvHost enables PostgreSQL-backed tests when set.
const EnvHost = "DATABASE_HOST"

var env = &database.Env{
	Host:     EnvHost,
	Port:     "DATABASE_PORT",
	Name:     "DATABASE_NAME",
	User:     "DATABASE_USER",
	Password: "DATABASE_PASSWORD",
	SSLMode:  "DATABASE_SSL_MODE",
}

// Open applies migrations and returns a connection closed at test cleanup.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	if os.Getenv(EnvHost) == "" {
		t.Skipf("%s not set, skipping PostgreSQL test", EnvHost)
	}

	cfg := &database.Config{Name: "doc_library", User: "doc_library"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("database config: %v", err)
	}

	if err := database.Migrate(cfg, migrations.FS, ".", Logger()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.Ping(); err != nil {
		t.Fatalf("ping database: %v", err)
	}
	return db
}

// Logger discards output.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
