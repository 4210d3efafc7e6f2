package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/internal/scheduler"
	"github.com/plus3/blockfall/internal/systems"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Sessions  int
	FrameTime time.Duration

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          []GameReport
	Totals         systems.Totals
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// GameReport is the outcome of one session.
type GameReport struct {
	Seed    uint64
	Totals  systems.Totals
	Systems []scheduler.SystemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) add(run *runner) {
	t := run.stats.Totals
	r.Games = append(r.Games, GameReport{
		Seed:    run.seed,
		Totals:  t,
		Systems: run.scheduler.Stats().Systems,
	})

	r.Totals.Games += t.Games
	r.Totals.GamesOver += t.GamesOver
	r.Totals.Lines += t.Lines
	r.Totals.Score += t.Score
	r.Totals.PlayedTime += t.PlayedTime
	r.Totals.BestScore = max(r.Totals.BestScore, t.BestScore)
	r.Totals.BestLevel = max(r.Totals.BestLevel, t.BestLevel)
}

const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Simulated Frame:** {{.FrameTime}}

## Performance Results
- **Total Frames:** {{.TotalUpdates}}
- **Total Time:** {{.TotalTime}}
- **Frame Time (all sessions):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Games
- **Games Started:** {{.Totals.Games}}
- **Games Finished:** {{.Totals.GamesOver}}
- **Lines Cleared:** {{.Totals.Lines}}
- **Points Scored:** {{.Totals.Score}}
- **Best Score:** {{.Totals.BestScore}}
- **Best Level:** {{.Totals.BestLevel}}
- **Simulated Play:** {{seconds .Totals.PlayedTime}}
{{range .Games}}
### Seed {{.Seed}}
- games {{.Totals.Games}}, lines {{.Totals.Lines}}, best score {{.Totals.BestScore}}
{{- range .Systems}}
  - {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{- end}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"seconds": func(s float64) string {
			return time.Duration(s * float64(time.Second)).Round(time.Millisecond).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
