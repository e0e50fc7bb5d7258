package scheduler

import (
	"context"
	"sync"
	"time"

	appfinance "github.com/warungin/backend/internal/application/finance"
	"github.com/warungin/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// OverdueSweeper runs one overdue sweep pass
type OverdueSweeper interface {
	RefreshOverdue(ctx context.Context, now time.Time) (*appfinance.SweepResultResponse, error)
}

// SweepScheduler drives the overdue sweep on a fixed interval. The sweep is
// idempotent, so a pass that overlaps a manual trigger or a restart does no
// extra work.
type SweepScheduler struct {
	sweeper  OverdueSweeper
	interval time.Duration
	logger   *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewSweepScheduler creates a new sweep scheduler
func NewSweepScheduler(sweeper OverdueSweeper, interval time.Duration, logger *zap.Logger) *SweepScheduler {
	return &SweepScheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.Named("sweep"),
	}
}

// Start launches the sweep loop. The first pass runs immediately so a
// restart never leaves overdue state stale for a full interval.
func (s *SweepScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx)

	s.logger.Info("overdue sweep scheduler started",
		zap.Duration("interval", s.interval),
	)
	return nil
}

// Stop gracefully stops the scheduler
func (s *SweepScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("overdue sweep scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("overdue sweep scheduler stop timed out")
		return ctx.Err()
	}
}

func (s *SweepScheduler) run(ctx context.Context) {
	defer s.wg.Done()

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SweepScheduler) sweep(ctx context.Context) {
	ctx, span := telemetry.StartSpan(ctx, "receivable.sweep_overdue")
	defer span.End()

	start := time.Now()
	result, err := s.sweeper.RefreshOverdue(ctx, start)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("overdue sweep failed", zap.Error(err))
		return
	}

	telemetry.SetAttributes(span,
		"marked_overdue", result.MarkedOverdue,
		"blocked_warungs", result.BlockedWarungs,
		"unblocked_warungs", result.UnblockedWarungs,
	)
	telemetry.SetOK(span)

	s.logger.Info("overdue sweep completed",
		zap.Int64("marked_overdue", result.MarkedOverdue),
		zap.Int("blocked_warungs", result.BlockedWarungs),
		zap.Int("unblocked_warungs", result.UnblockedWarungs),
		zap.Duration("elapsed", time.Since(start)),
	)
}
