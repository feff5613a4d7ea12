package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/osse101/SentimentService_Go/internal/domain"
	"github.com/osse101/SentimentService_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts an ordinary function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

type queuedJob struct {
	ctx context.Context
	job Job
}

// Pool runs submitted jobs on a fixed number of goroutines.
// The queue is bounded: Submit blocks while it is full.
type Pool struct {
	workers   int
	jobQueue  chan queuedJob
	wg        sync.WaitGroup
	startOnce sync.Once

	mu      sync.RWMutex
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan queuedJob, queueSize),
	}
}

// Start starts the workers. Calling it more than once has no effect.
func (p *Pool) Start() {
	p.startOnce.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go p.worker()
		}
		slog.Info(LogMsgPoolStarted, "workers", p.workers, "queue_size", cap(p.jobQueue))
	})
}

// worker is the worker loop. It exits once the queue is closed and drained.
func (p *Pool) worker() {
	defer p.wg.Done()
	for qj := range p.jobQueue {
		p.run(qj)
	}
}

func (p *Pool) run(qj queuedJob) {
	log := logger.FromContext(qj.ctx)
	defer func() {
		if rec := recover(); rec != nil {
			log.Error(LogMsgWorkerJobPanicked, "panic", fmt.Sprint(rec))
		}
	}()

	if err := qj.job.Process(qj.ctx); err != nil {
		// Log error but don't crash worker
		log.Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Submit enqueues a job, blocking while the queue is full.
// It returns ctx.Err() if ctx ends before the job is queued and
// domain.ErrPoolStopped once the pool has been stopped.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return domain.ErrPoolStopped
	}

	select {
	case p.jobQueue <- queuedJob{ctx: ctx, job: job}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Size returns the number of workers
func (p *Pool) Size() int {
	return p.workers
}

// QueueLen returns the number of jobs waiting for a worker
func (p *Pool) QueueLen() int {
	return len(p.jobQueue)
}

// CheckHealth reports domain.ErrPoolStopped once the pool no longer accepts jobs
func (p *Pool) CheckHealth(ctx context.Context) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return domain.ErrPoolStopped
	}
	return ctx.Err()
}

// Stop stops accepting jobs, lets the workers drain the queue, and waits for them to exit
func (p *Pool) Stop() {
	p.closeQueue()
	p.wg.Wait()
}

// Shutdown is Stop bounded by ctx. Workers keep draining in the background if ctx ends first.
func (p *Pool) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPoolShuttingDown)

	p.closeQueue()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgPoolShutdownDone)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgPoolShutdownTimeout)
		return ctx.Err()
	}
}

// closeQueue waits for in-progress Submit calls, so no send can hit the closed channel
func (p *Pool) closeQueue() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.stopped = true
	close(p.jobQueue)
}
