package pinger

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	metav1 "pingerd/pkg/meta/v1"
	"pingerd/pkg/util"
)

const (
	DefaultWorkers = 10

	DefaultPerHostLimit = 2

	DefaultQueueLength = 10000
)

// Sink receives dispatch notifications for a submitted job. Started fires
// when a worker picks the job up; Resolved fires exactly once with the final
// result; Skipped fires instead when the job's context was cancelled before a
// worker started it.
type Sink interface {
	Started(job *metav1.Job)
	Resolved(result *metav1.PingResult)
	Skipped(job *metav1.Job)
}

type task struct {
	ctx  context.Context
	job  *metav1.Job
	sink Sink
}

// Pool is the bounded concurrency layer in front of the Pinger: a fixed set
// of workers plus a per-host cap so no single remote service gets hammered.
type Pool struct {
	pinger *Pinger

	tasks chan task
	hosts *hostLimiter

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopped  chan struct{}

	log *log.Entry
}

type PoolOption func(*poolConfig)

type poolConfig struct {
	workers      int
	perHostLimit int
	queueLength  int
}

func WithWorkers(n int) PoolOption {
	return func(c *poolConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithPerHostLimit(n int) PoolOption {
	return func(c *poolConfig) {
		if n > 0 {
			c.perHostLimit = n
		}
	}
}

func WithQueueLength(n int) PoolOption {
	return func(c *poolConfig) {
		if n > 0 {
			c.queueLength = n
		}
	}
}

func NewPool(pinger *Pinger, opts ...PoolOption) *Pool {
	cfg := &poolConfig{
		workers:      DefaultWorkers,
		perHostLimit: DefaultPerHostLimit,
		queueLength:  DefaultQueueLength,
	}

	for _, o := range opts {
		o(cfg)
	}

	p := &Pool{
		pinger:  pinger,
		tasks:   make(chan task, cfg.queueLength),
		hosts:   newHostLimiter(cfg.perHostLimit),
		stopped: make(chan struct{}),
		log: log.WithFields(map[string]interface{}{
			"service": "pool",
		}),
	}

	p.wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go p.worker()
	}

	return p
}

// Submit enqueues a job. It blocks only while the queue is full and returns
// early when ctx is cancelled or the pool is stopped.
func (p *Pool) Submit(ctx context.Context, job *metav1.Job, sink Sink) error {
	select {
	case <-p.stopped:
		return ErrPoolStopped
	default:
	}

	select {
	case p.tasks <- task{ctx: ctx, job: job, sink: sink}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stopped:
		return ErrPoolStopped
	}
}

// Stop drains queued tasks and waits for workers to finish. Callers must not
// Submit concurrently with Stop.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopped)
		close(p.tasks)
		p.wg.Wait()
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for t := range p.tasks {
		p.run(t)
	}
}

func (p *Pool) run(t task) {
	if t.ctx.Err() != nil {
		t.sink.Skipped(t.job)
		return
	}

	host := util.Host(t.job.Endpoint.URLTemplate)

	p.hosts.acquire(host)
	defer p.hosts.release(host)

	t.sink.Started(t.job)

	result := p.pinger.Do(t.ctx, t.job)

	t.sink.Resolved(result)
}
