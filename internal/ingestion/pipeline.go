package ingestion

import (
	"context"
	"log/slog"
	"sync"

	"github.com/JaimeStill/doc-library/pkg/lifecycle"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type task struct {
	id  uuid.UUID
	key string
}

// Pipeline schedules ingestion jobs onto a bounded worker pool.
// At most one job per document is queued or running at a time.
type Pipeline struct {
	job     *Job
	workers int
	tasks   chan task
	logger  *slog.Logger

	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
	stopped  bool

	drained chan struct{}
}

// New creates a pipeline. Workers begin consuming after Start.
func New(store Store, blobs Blobs, extractor Extractor, cfg *Config, logger *slog.Logger) *Pipeline {
	logger = logger.With("system", "ingestion")
	return &Pipeline{
		job:      NewJob(store, blobs, extractor, cfg, logger),
		workers:  cfg.Workers,
		tasks:    make(chan task, cfg.QueueSize),
		logger:   logger,
		inflight: make(map[uuid.UUID]struct{}),
		drained:  make(chan struct{}),
	}
}

// Drained is closed once every worker has returned after shutdown.
// Resources that running jobs write through, such as the database pool,
// should stay open until then.
func (p *Pipeline) Drained() <-chan struct{} {
	return p.drained
}

// Ingest queues a document without blocking.
// Returns ErrAlreadyScheduled, ErrQueueFull, or ErrStopped when the job
// cannot be accepted.
func (p *Pipeline) Ingest(id uuid.UUID, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrStopped
	}
	if _, ok := p.inflight[id]; ok {
		return ErrAlreadyScheduled
	}

	select {
	case p.tasks <- task{id: id, key: key}:
		p.inflight[id] = struct{}{}
		return nil
	default:
		return ErrQueueFull
	}
}

// Start launches the workers and registers the shutdown hook.
// On shutdown, running jobs finish and queued jobs are abandoned.
func (p *Pipeline) Start(lc *lifecycle.Coordinator) error {
	ctx := lc.Context()
	g, gctx := errgroup.WithContext(ctx)

	for w := range p.workers {
		g.Go(func() error {
			p.work(gctx, w)
			return nil
		})
	}

	p.logger.Info("ingestion workers started", "workers", p.workers, "queue_size", cap(p.tasks))

	lc.OnShutdown(func() {
		<-ctx.Done()

		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()

		g.Wait()
		p.logger.Info("ingestion workers stopped", "abandoned", len(p.tasks))
		close(p.drained)
	})

	return nil
}

func (p *Pipeline) work(ctx context.Context, worker int) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-p.tasks:
			if ctx.Err() != nil {
				return
			}
			p.run(ctx, worker, t)
		}
	}
}

func (p *Pipeline) run(ctx context.Context, worker int, t task) {
	defer p.release(t.id)
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("job panicked", "document_id", t.id, "worker", worker, "panic", r)
		}
	}()

	outcome := p.job.Run(context.WithoutCancel(ctx), t.id, t.key)
	p.logger.Info("job finished", "document_id", t.id, "worker", worker, "outcome", outcome)
}

func (p *Pipeline) release(id uuid.UUID) {
	p.mu.Lock()
	delete(p.inflight, id)
	p.mu.Unlock()
}
