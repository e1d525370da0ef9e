// Package worker runs background jobs on a fixed pool of goroutines.
package worker

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/osse101/RaidBot_Go/internal/logger"
	"github.com/osse101/RaidBot_Go/internal/metrics"
)

// Job is a unit of background work. Jobs that also implement fmt.Stringer
// are logged under that name.
type Job interface {
	Process(ctx context.Context) error
}

// FuncJob adapts a function into a named Job with an optional timeout.
// Every run is counted in the background job metrics.
type FuncJob struct {
	Name    string
	Timeout time.Duration
	Fn      func(ctx context.Context) error
}

func (j FuncJob) String() string { return j.Name }

// Process runs Fn under the job timeout.
func (j FuncJob) Process(ctx context.Context) error {
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}
	err := j.Fn(ctx)
	metrics.RecordJobRun(j.Name, err)
	return err
}

// Pool runs queued jobs on a fixed number of goroutines. Jobs receive a
// context that is cancelled by Stop.
type Pool struct {
	workers int
	queue   chan Job
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewPool creates a pool; nothing runs until Start.
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		queue:   make(chan Job, queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.loop()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job := <-p.queue:
			p.run(job)
		}
	}
}

// run executes one job. A panicking job is logged and counted as failed so
// the worker survives it.
func (p *Pool) run(job Job) {
	name := jobName(job)
	log := logger.FromContext(p.ctx).With("job", name)
	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerPanic, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			metrics.RecordJobRun(name, fmt.Errorf("panic: %v", r))
		}
	}()
	if err := job.Process(p.ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "error", err)
	}
}

func jobName(job Job) string {
	if s, ok := job.(fmt.Stringer); ok && s.String() != "" {
		return s.String()
	}
	return jobNameUnknown
}

// Enqueue queues a job, blocking while the queue is full. It returns false
// if the pool stopped first.
func (p *Pool) Enqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case <-p.ctx.Done():
		return false
	case p.queue <- job:
		return true
	}
}

// TryEnqueue queues a job without blocking and reports whether it was
// accepted. A stopped pool accepts nothing.
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.queue <- job:
		return true
	default:
		logger.FromContext(p.ctx).Warn(LogMsgQueueFull, "job", jobName(job))
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit. Jobs still
// queued are discarded.
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}
