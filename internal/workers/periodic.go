// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
)

// DefaultInterval is used when a non-positive interval is configured.
const DefaultInterval = 5 * time.Second

// Task is one unit of periodic work. A returned error is logged and never
// stops the schedule.
type Task func(ctx context.Context) error

// Periodic runs a Task on every tick of a fixed interval. Each run is
// dispatched on its own goroutine, so a slow run never delays the next tick.
// The first run happens one interval after Start.
type Periodic struct {
	name     string
	interval time.Duration
	task     Task
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPeriodic creates an idle Periodic. If interval is zero or negative it
// defaults to [DefaultInterval].
func NewPeriodic(name string, interval time.Duration, task Task, log *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		logger:   log.WithOperation(name),
	}
}

// Interval returns the effective tick interval.
func (p *Periodic) Interval() time.Duration {
	return p.interval
}

// Start implements [Worker]. It stops any previous schedule and launches a
// new one bound to ctx. The schedule ends when ctx is cancelled or Stop is
// called.
func (p *Periodic) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.wg.Add(1)
				go p.run(jobCtx)
			}
		}
	}()

	p.logger.Debug().Dur("interval", p.interval).Msg("periodic task started")
}

func (p *Periodic) run(ctx context.Context) {
	defer p.wg.Done()

	if err := p.task(ctx); err != nil {
		p.logger.Debug().Err(err).Msg("periodic run failed")
	}
}

// Stop implements [Worker]. It cancels the schedule and any in-flight run
// and blocks until all of them have exited. Safe to call when the task is
// not running (no-op in that case).
func (p *Periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	p.wg.Wait()
	p.logger.Debug().Msg("periodic task stopped")
}
