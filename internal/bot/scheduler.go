package bot

import (
	"context"
	"log/slog"
	"time"
)

// DefaultInterval is the wait between cycles when none is configured.
const DefaultInterval = 15 * time.Minute

// cycleRunner abstracts Runner for scheduler tests.
type cycleRunner interface {
	RunCycle(ctx context.Context, prev CycleState) (CycleResult, error)
}

// Scheduler repeats cycles at a fixed interval indefinitely, carrying
// the authoritative CycleState between them.
//
// There is no backoff: a failed cycle contributes no progress and the
// next one retries naturally through the same polling mechanism. The
// one-cycle evaluation delay in the runner assumes the upstream
// listing converges within one interval, so the interval should not
// be set below a couple of minutes.
type Scheduler struct {
	runner   cycleRunner
	interval time.Duration
	tokens   TokenGenerator
	state    CycleState
}

// NewScheduler creates a Scheduler starting from an empty state.
func NewScheduler(runner cycleRunner, interval time.Duration, tokens TokenGenerator) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		runner:   runner,
		interval: interval,
		tokens:   tokens,
		state:    NewCycleState(),
	}
}

// Run executes cycles until the context is cancelled. The first cycle
// starts immediately; each later cycle starts one interval after the
// previous one finished, so cycles never overlap regardless of how
// long the external calls block.
//
// Always returns the context's error.
func (s *Scheduler) Run(ctx context.Context) error {
	slog.Info("scheduler starting", "interval", s.interval)

	for {
		if err := ctx.Err(); err != nil {
			slog.Info("scheduler stopping: context cancelled")
			return err
		}

		token := s.tokens.Generate()
		logger := slog.With("cycle", token)
		logger.Info("cycle starting",
			"seen", len(s.state.Seen),
			"rejected", len(s.state.Rejected),
		)

		result, err := s.runner.RunCycle(ctx, s.state)
		s.state = s.state.Union(result.State)

		if err != nil {
			logger.Error("cycle aborted, state preserved", "error", err)
		} else {
			logger.Info("cycle complete",
				"seen", len(s.state.Seen),
				"rejected", len(s.state.Rejected),
				"rejects_issued", len(result.Rejections),
			)
		}

		select {
		case <-ctx.Done():
			slog.Info("scheduler stopping: context cancelled")
			return ctx.Err()
		case <-time.After(s.interval):
		}
	}
}

// State returns the current authoritative state. Intended for tests
// and diagnostics; the scheduler is the only writer.
func (s *Scheduler) State() CycleState {
	return s.state
}
