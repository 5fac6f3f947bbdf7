// Package database manages the PostgreSQL connection pool and schema migrations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/JaimeStill/doc-library/pkg/lifecycle"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotReady is returned by Ping before Start has verified connectivity.
var ErrNotReady = errors.New("database not ready")

// System owns the connection pool.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
	Ping(ctx context.Context) error

	// CloseAfter delays closing the pool at shutdown until done is closed.
	// Background workers that write during shutdown register here.
	CloseAfter(done <-chan struct{})
}

type database struct {
	conn        *sql.DB
	logger      *slog.Logger
	connTimeout time.Duration
	ready       atomic.Bool

	mu    sync.Mutex
	holds []<-chan struct{}
}

// New opens a pool for cfg. The connection is verified in Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:        conn,
		logger:      logger.With("system", "database"),
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

// Start verifies connectivity and registers pool shutdown.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.connTimeout)
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	d.ready.Store(true)
	d.logger.Info("database connection established")

	d.closeOnShutdown(lc)
	return nil
}

func (d *database) CloseAfter(done <-chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.holds = append(d.holds, done)
}

func (d *database) closeOnShutdown(lc *lifecycle.Coordinator) {
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.ready.Store(false)

		d.mu.Lock()
		holds := d.holds
		d.mu.Unlock()

		for _, done := range holds {
			<-done
		}

		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})
}

// Ping checks connectivity within the configured connection timeout.
func (d *database) Ping(ctx context.Context) error {
	if !d.ready.Load() {
		return ErrNotReady
	}
	ctx, cancel := context.WithTimeout(ctx, d.connTimeout)
	defer cancel()
	return d.conn.PingContext(ctx)
}
