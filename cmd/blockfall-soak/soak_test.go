package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/tetris"
)

func TestBotKeepsPlaying(t *testing.T) {
	r := newRunner(tetris.DefaultConfig(), 7, nil)

	for range 20000 {
		r.scheduler.Once(1.0 / 60)

		state := r.game.State()
		for _, p := range state.Active.Cells() {
			if state.GameOver() {
				break
			}
			assert.False(t, state.Board.Contains(p.X, p.Y) && state.Board.At(p.X, p.Y).Occupied(),
				"active piece overlaps the board at %v", p)
		}
	}

	assert.GreaterOrEqual(t, r.stats.Totals.Games, 1)
	assert.Equal(t, uint64(20000), r.scheduler.Stats().Frames)
}

func TestBotIsDeterministic(t *testing.T) {
	a := newRunner(tetris.DefaultConfig(), 3, nil)
	b := newRunner(tetris.DefaultConfig(), 3, nil)

	for range 5000 {
		a.scheduler.Once(1.0 / 60)
		b.scheduler.Once(1.0 / 60)
	}

	assert.Equal(t, a.game.Snapshot(), b.game.Snapshot())
	assert.Equal(t, a.stats.Totals, b.stats.Totals)
}

func TestReportGenerate(t *testing.T) {
	runners := []*runner{
		newRunner(tetris.DefaultConfig(), 1, nil),
		newRunner(tetris.DefaultConfig(), 2, nil),
	}

	report := &Report{Sessions: len(runners)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report.TotalUpdates = soak(ctx, runners, 1.0/60, &report.UpdateTime)
	assert.Zero(t, report.TotalUpdates)

	for range 100 {
		for _, r := range runners {
			r.scheduler.Once(1.0 / 60)
		}
	}
	for _, r := range runners {
		report.add(r)
	}
	report.UpdateTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Blockfall Soak Report")
	assert.Contains(t, out, "### Seed 1")
	assert.Contains(t, out, "### Seed 2")
	assert.Contains(t, out, "SimulationSystem")
	assert.Equal(t, 2, report.Totals.Games)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
}
