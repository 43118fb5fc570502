package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/badelinebot/badeline/internal/rules"
	"github.com/badelinebot/badeline/internal/srcom"
)

// RunSource is the submission queue the bot moderates. Implemented by
// *srcom.Client in production and by test fakes.
type RunSource interface {
	// NewRuns lists a game's pending submissions.
	NewRuns(ctx context.Context, gameID string, q srcom.Query) ([]srcom.Run, error)

	// Reject sets a run's status to rejected with the given reason.
	Reject(ctx context.Context, runID, reason string) error
}

// TokenRefresher refreshes the video collaborator's access token.
// Implemented by *twitch.Client.
type TokenRefresher interface {
	RefreshToken(ctx context.Context) error
}

// Rejection records one rejected run: its id, the faults found in
// evaluation order, and the composed reason sent upstream. Produced
// per cycle and consumed immediately; nothing persists it.
type Rejection struct {
	RunID  string
	Faults []rules.Fault
	Reason string
}

// CycleResult is the outcome of one cycle.
type CycleResult struct {
	// State holds the ids observed and rejected during the cycle.
	// On an aborted cycle it covers only the games processed so far.
	State CycleState

	// Rejections lists the rejects issued this cycle, in order.
	Rejections []Rejection
}

// Runner executes one full moderation cycle over all configured games.
type Runner struct {
	source  RunSource
	videos  TokenRefresher
	checker *rules.Checker
	rotator *srcom.Rotator
	games   []rules.GameConfig
}

// NewRunner creates a Runner.
//
// The games slice is copied; its order is the per-cycle processing
// order and never changes afterwards.
func NewRunner(source RunSource, videos TokenRefresher, checker *rules.Checker, rotator *srcom.Rotator, games []rules.GameConfig) *Runner {
	gamesCopy := make([]rules.GameConfig, len(games))
	copy(gamesCopy, games)
	return &Runner{
		source:  source,
		videos:  videos,
		checker: checker,
		rotator: rotator,
		games:   gamesCopy,
	}
}

// RunCycle performs one pass over all configured games: fetch, dedupe
// against prev, evaluate, reject.
//
// A speedrun.com failure aborts the remaining games and returns the
// state accumulated so far together with the error; rejects already
// issued stand, and the skipped games become eligible again next
// cycle. A Twitch token-refresh failure does not abort anything: the
// VOD rule degrades to fail-open for this cycle.
func (r *Runner) RunCycle(ctx context.Context, prev CycleState) (CycleResult, error) {
	result := CycleResult{State: NewCycleState()}

	if err := r.videos.RefreshToken(ctx); err != nil {
		slog.Warn("twitch token refresh failed, VOD checks degrade to fail-open",
			"error", err,
		)
	}

	// One query per cycle; reusing it across games keeps the rotation
	// advancing exactly once per cycle.
	query := r.rotator.Next()

	for _, game := range r.games {
		runs, err := r.source.NewRuns(ctx, game.ID, query)
		if err != nil {
			slog.Error("listing new runs failed, aborting cycle",
				"game", game.ID,
				"error", err,
			)
			return result, fmt.Errorf("game %s: %w", game.ID, err)
		}
		slog.Debug("fetched new runs",
			"game", game.ID,
			"count", len(runs),
			"orderby", query.OrderBy,
		)

		for _, run := range runs {
			// Already rejected in an earlier cycle: the status change
			// has not propagated to the listing yet. Carry the record
			// forward and do nothing else.
			if prev.RejectedHas(run.ID) {
				result.State.AddRejected(run.ID)
				continue
			}

			result.State.AddSeen(run.ID)

			// First observation: defer evaluation one cycle. The
			// listing is eventually consistent, and holding off until
			// the run shows up again rules out racing a duplicate
			// reject against a stale listing.
			if !prev.SeenHas(run.ID) {
				continue
			}

			sub := run.Submission()
			faults := r.checker.Evaluate(ctx, sub, game)
			if len(faults) == 0 {
				continue
			}

			reason := rules.Reason(faults)
			slog.Info("found problems with run",
				"game", game.ID,
				"run", run.ID,
				"faults", faultNames(faults),
			)

			if err := r.source.Reject(ctx, run.ID, reason); err != nil {
				slog.Error("reject failed, aborting cycle",
					"game", game.ID,
					"run", run.ID,
					"error", err,
				)
				return result, fmt.Errorf("reject run %s: %w", run.ID, err)
			}

			result.State.AddRejected(run.ID)
			result.Rejections = append(result.Rejections, Rejection{
				RunID:  run.ID,
				Faults: faults,
				Reason: reason,
			})
			slog.Info("rejected run", "game", game.ID, "run", run.ID)
		}
	}

	return result, nil
}

func faultNames(faults []rules.Fault) []string {
	names := make([]string, len(faults))
	for i, f := range faults {
		names[i] = f.String()
	}
	return names
}
