package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appfinance "github.com/warungin/backend/internal/application/finance"
	"go.uber.org/zap"
)

type countingSweeper struct {
	runs atomic.Int64
	fail bool
}

func (s *countingSweeper) RefreshOverdue(_ context.Context, _ time.Time) (*appfinance.SweepResultResponse, error) {
	s.runs.Add(1)
	if s.fail {
		return nil, errors.New("sweep failure")
	}
	return &appfinance.SweepResultResponse{}, nil
}

func TestSchedulerRunsImmediatelyOnStart(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewSweepScheduler(sweeper, time.Hour, zap.NewNop())
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	assert.Eventually(t, func() bool {
		return sweeper.runs.Load() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSchedulerTicks(t *testing.T) {
	sweeper := &countingSweeper{}
	s := NewSweepScheduler(sweeper, 20*time.Millisecond, zap.NewNop())
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	assert.Eventually(t, func() bool {
		return sweeper.runs.Load() >= 3
	}, time.Second, 10*time.Millisecond)
}

func TestSchedulerSurvivesSweepFailure(t *testing.T) {
	sweeper := &countingSweeper{fail: true}
	s := NewSweepScheduler(sweeper, 20*time.Millisecond, zap.NewNop())
	require.NoError(t, s.Start(context.Background()))
	defer func() { _ = s.Stop(context.Background()) }()

	assert.Eventually(t, func() bool {
		return sweeper.runs.Load() >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	s := NewSweepScheduler(&countingSweeper{}, time.Hour, zap.NewNop())
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	// a second start after stop spins the loop back up
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
