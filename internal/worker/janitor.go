package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// KeyPurger deletes expired idempotency keys.
type KeyPurger interface {
	DeleteExpired(ctx context.Context) error
}

// ClientSweeper forgets idle rate limiter clients and reports how many.
type ClientSweeper interface {
	Cleanup() int
}

// Janitor periodically purges expired idempotency keys and idle rate
// limiter entries.
type Janitor struct {
	keys     KeyPurger
	clients  ClientSweeper
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewJanitor constructs the maintenance worker. A non-positive interval
// defaults to one hour.
func NewJanitor(keys KeyPurger, clients ClientSweeper, interval time.Duration, logger *slog.Logger) *Janitor {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Janitor{
		keys:     keys,
		clients:  clients,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the sweep loop. Calling Start twice is a no-op.
func (j *Janitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	j.cancel = cancel

	j.wg.Add(1)
	go j.loop(runCtx)
}

// Stop ends the loop and waits for an in-flight sweep.
func (j *Janitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *Janitor) loop(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep runs one maintenance pass.
func (j *Janitor) Sweep(ctx context.Context) {
	if j.keys != nil {
		if err := j.keys.DeleteExpired(ctx); err != nil {
			j.logger.Error("purge idempotency keys failed", slog.String("error", err.Error()))
		}
	}
	if j.clients != nil {
		if n := j.clients.Cleanup(); n > 0 {
			j.logger.Debug("rate limiter clients swept", slog.Int("removed", n))
		}
	}
}
