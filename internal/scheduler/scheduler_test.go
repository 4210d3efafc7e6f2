package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/internal/scheduler"
)

type CountingSystem struct {
	Log          *[]string
	Label        string
	ExecuteCount int
	LastDelta    float64
}

func (s *CountingSystem) Execute(frame *scheduler.Frame) {
	s.ExecuteCount++
	s.LastDelta = frame.DeltaTime
	*s.Log = append(*s.Log, s.Label)
}

type StoppingSystem struct {
	After uint64
}

func (s *StoppingSystem) Execute(frame *scheduler.Frame) {
	if frame.Number >= s.After {
		frame.Commands.Stop()
	}
}

func TestSchedulerOrder(t *testing.T) {
	var log []string
	first := &CountingSystem{Log: &log, Label: "first"}
	second := &CountingSystem{Log: &log, Label: "second"}

	s := scheduler.New()
	s.Register(first)
	s.Register(second)

	assert.False(t, s.Once(0.25))
	assert.False(t, s.Once(0.5))

	assert.Equal(t, []string{"first", "second", "first", "second"}, log)
	assert.Equal(t, 2, first.ExecuteCount)
	assert.InDelta(t, 0.5, second.LastDelta, 1e-9)
}

func TestSchedulerDeferRunsAfterFrame(t *testing.T) {
	var log []string
	s := scheduler.New()
	s.Register(&deferSystem{log: &log})
	s.Register(&CountingSystem{Log: &log, Label: "after"})

	s.Once(0)
	assert.Equal(t, []string{"after", "deferred"}, log)

	s.Once(0)
	assert.Equal(t, []string{"after", "deferred", "after", "deferred"}, log, "deferred work runs once per queue")
}

type deferSystem struct {
	log *[]string
}

func (s *deferSystem) Execute(frame *scheduler.Frame) {
	frame.Commands.Defer(func() {
		*s.log = append(*s.log, "deferred")
	})
}

func TestSchedulerStats(t *testing.T) {
	var log []string
	s := scheduler.New()
	s.Register(&CountingSystem{Log: &log})
	s.Register(&StoppingSystem{After: 100})

	for range 3 {
		s.Once(1.0 / 60)
	}

	stats := s.Stats()
	assert.Equal(t, uint64(3), stats.Frames)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "CountingSystem", stats.Systems[0].Name)
	assert.Equal(t, "StoppingSystem", stats.Systems[1].Name)
	assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
}

func TestSchedulerStatsBeforeFirstFrame(t *testing.T) {
	s := scheduler.New()
	s.Register(&StoppingSystem{})

	stats := s.Stats()
	assert.Zero(t, stats.Systems[0].MinDuration)
	assert.Zero(t, stats.Systems[0].AvgDuration)
}

func TestSchedulerRunStops(t *testing.T) {
	s := scheduler.New()
	s.Register(&StoppingSystem{After: 3})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, s.Run(ctx, time.Millisecond))
	assert.Equal(t, uint64(3), s.Stats().Frames)
}

func TestSchedulerRunCancelled(t *testing.T) {
	s := scheduler.New()
	s.Register(&StoppingSystem{After: 1 << 62})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.Run(ctx, time.Millisecond)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
