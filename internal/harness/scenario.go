package harness

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/badelinebot/badeline/internal/bot"
	"github.com/badelinebot/badeline/internal/rules"
	"github.com/badelinebot/badeline/internal/srcom"
	"github.com/badelinebot/badeline/internal/testutil"
	"github.com/badelinebot/badeline/internal/twitch"
)

// Scenario defines one moderation test scenario.
type Scenario struct {
	// Name uniquely identifies this scenario; the golden file shares it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Game is the single game configuration under moderation.
	Game GameSpec `yaml:"game"`

	// PriorSeen and PriorRejected seed the carried-over cycle state.
	// A submission must be in PriorSeen to be evaluated this cycle.
	PriorSeen     []string `yaml:"prior_seen,omitempty"`
	PriorRejected []string `yaml:"prior_rejected,omitempty"`

	// Submissions are the runs the fake queue lists this cycle.
	Submissions []SubmissionSpec `yaml:"submissions"`

	// TwitchVideos is the fake video metadata table.
	TwitchVideos []VideoSpec `yaml:"twitch_videos,omitempty"`
}

// GameSpec mirrors the roster entry for the scenario's game.
type GameSpec struct {
	ID                string              `yaml:"id"`
	VersionVariable   string              `yaml:"version_variable"`
	DefaultOption     string              `yaml:"default_option"`
	InvalidByPlatform map[string][]string `yaml:"invalid_by_platform,omitempty"`
}

// SubmissionSpec describes one pending run, in the units the API
// serves (seconds).
type SubmissionSpec struct {
	ID              string   `yaml:"id"`
	RealtimeSeconds float64  `yaml:"realtime_seconds"`
	IngameSeconds   float64  `yaml:"ingame_seconds"`
	Version         string   `yaml:"version,omitempty"`
	Platform        string   `yaml:"platform"`
	Videos          []string `yaml:"videos,omitempty"`
}

// VideoSpec is one entry of the fake Twitch video table.
type VideoSpec struct {
	ID   string `yaml:"id"`
	Type string `yaml:"type"`
}

// Result captures the deterministic outcome of running a scenario.
type Result struct {
	// Rejections lists the rejects issued, in processing order.
	Rejections []TraceRejection

	// Seen and Rejected are the cycle's resulting state, sorted.
	Seen     []string
	Rejected []string
}

// TraceRejection is one rejected run in the trace.
type TraceRejection struct {
	RunID  string   `json:"run_id"`
	Faults []string `json:"faults"`
	Reason string   `json:"reason"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s has no name", path)
	}
	return &s, nil
}

// Run executes the scenario as one real moderation cycle over fakes.
func Run(scenario *Scenario) (*Result, error) {
	game := rules.GameConfig{
		ID: scenario.Game.ID,
		Version: rules.VersionRule{
			VariableID:        scenario.Game.VersionVariable,
			DefaultOptionID:   scenario.Game.DefaultOption,
			InvalidByPlatform: scenario.Game.InvalidByPlatform,
		},
	}

	source := &testutil.FakeSource{
		Runs: map[string][]srcom.Run{
			game.ID: wireRuns(scenario),
		},
	}
	ttv := &testutil.FakeTwitch{Videos: make(map[string]twitch.Video)}
	for _, v := range scenario.TwitchVideos {
		ttv.Videos[v.ID] = twitch.Video{ID: v.ID, Type: v.Type}
	}

	prev := bot.NewCycleState()
	for _, id := range scenario.PriorSeen {
		prev.AddSeen(id)
	}
	for _, id := range scenario.PriorRejected {
		prev.AddRejected(id)
	}

	runner := bot.NewRunner(source, ttv, rules.NewChecker(ttv), srcom.NewRotator(), []rules.GameConfig{game})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cycle, err := runner.RunCycle(ctx, prev)
	if err != nil {
		return nil, fmt.Errorf("scenario cycle: %w", err)
	}

	result := &Result{
		Rejections: []TraceRejection{},
		Seen:       sortedIDs(cycle.State.Seen),
		Rejected:   sortedIDs(cycle.State.Rejected),
	}
	for _, rej := range cycle.Rejections {
		faults := make([]string, len(rej.Faults))
		for i, f := range rej.Faults {
			faults[i] = f.String()
		}
		result.Rejections = append(result.Rejections, TraceRejection{
			RunID:  rej.RunID,
			Faults: faults,
			Reason: rej.Reason,
		})
	}
	return result, nil
}

// wireRuns converts the scenario's submissions to API wire form.
func wireRuns(scenario *Scenario) []srcom.Run {
	runs := make([]srcom.Run, 0, len(scenario.Submissions))
	for _, sub := range scenario.Submissions {
		run := srcom.Run{
			ID: sub.ID,
			Times: srcom.RunTimes{
				RealtimeT: sub.RealtimeSeconds,
				IngameT:   sub.IngameSeconds,
			},
			Values: map[string]string{},
			System: srcom.RunSystem{Platform: sub.Platform},
		}
		if sub.Version != "" {
			run.Values[scenario.Game.VersionVariable] = sub.Version
		}
		if len(sub.Videos) > 0 {
			videos := &srcom.RunVideos{}
			for _, uri := range sub.Videos {
				videos.Links = append(videos.Links, srcom.RunVideoLink{URI: uri})
			}
			run.Videos = videos
		}
		runs = append(runs, run)
	}
	return runs
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
