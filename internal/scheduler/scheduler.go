package scheduler

import (
	"context"
	"sync"
	"time"

	"lunchbox/backend/internal/logger"
	"lunchbox/backend/internal/service"
)

// Scheduler runs duplicate cleanup in the background at a fixed interval.
type Scheduler struct {
	maintenance service.MaintenanceService
	interval    time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup
	cancelFunc  context.CancelFunc // cancels the current cleanup
	mu          sync.Mutex         // protects cancelFunc
}

func New(maintenance service.MaintenanceService, interval time.Duration) *Scheduler {
	return &Scheduler{
		maintenance: maintenance,
		interval:    interval,
		stopCh:      make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "cleanup", "resource", "order", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

// Stop cancels a running cleanup and waits for the loop to exit. Safe to call twice.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
		s.mu.Unlock()

		close(s.stopCh)
		s.wg.Wait()
		logger.Info("scheduler stopped", "module", "scheduler", "action", "cleanup", "resource", "order", "result", "ok")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.cleanup()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	deleted, err := s.maintenance.Cleanup(ctx)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("scheduled cleanup cancelled", "module", "scheduler", "action", "cleanup", "resource", "order", "result", "cancelled")
			return
		}
		logger.Error("scheduled cleanup failed", "module", "scheduler", "action", "cleanup", "resource", "order", "result", "failed", "error", err)
		return
	}
	logger.Info("scheduled cleanup completed", "module", "scheduler", "action", "cleanup", "resource", "order", "result", "ok", "deleted", deleted)
}
