// Package scheduler enqueues jobs on the worker pool at fixed intervals.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/RaidBot_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking. *worker.Pool satisfies it.
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler feeds periodic jobs into an Enqueuer until Stop.
type Scheduler struct {
	queue  Enqueuer
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(queue Enqueuer) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{queue: queue, ctx: ctx, cancel: cancel}
}

// Schedule enqueues job every interval, first one interval from now. A tick
// is dropped when the queue is full so a slow job never piles up.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.every(interval, job, false)
}

// ScheduleNow is Schedule with an extra run right away.
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.every(interval, job, true)
}

func (s *Scheduler) every(interval time.Duration, job worker.Job, immediate bool) {
	if interval <= 0 {
		slog.Warn("Ignoring job with non-positive interval", "job", job, "interval", interval)
		return
	}
	if s.ctx.Err() != nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if immediate {
			s.queue.TryEnqueue(job)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.queue.TryEnqueue(job)
			}
		}
	}()
}

// Stop ends every schedule and waits for the tickers to exit. Jobs already
// queued are left to the pool. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
