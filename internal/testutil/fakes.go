// Package testutil provides in-memory fakes for the bot's external
// collaborators, shared by package tests and the scenario harness.
package testutil

import (
	"context"

	"github.com/badelinebot/badeline/internal/srcom"
	"github.com/badelinebot/badeline/internal/twitch"
)

// FakeSource implements bot.RunSource over in-memory run lists.
//
// Not safe for concurrent use; the bot's single-loop design never
// exercises it concurrently.
type FakeSource struct {
	// Runs maps a game id to the runs its listing returns.
	Runs map[string][]srcom.Run

	// ListErr maps a game id to an error its listing returns instead.
	ListErr map[string]error

	// RejectErr maps a run id to an error its reject returns.
	RejectErr map[string]error

	// Rejected records issued rejects in call order.
	Rejected []RejectCall

	// Queries records the query passed to each listing call.
	Queries []srcom.Query

	// ListedGames records game ids in listing-call order.
	ListedGames []string
}

// RejectCall is one recorded reject.
type RejectCall struct {
	RunID  string
	Reason string
}

// NewRuns returns the configured runs or error for the game.
func (f *FakeSource) NewRuns(_ context.Context, gameID string, q srcom.Query) ([]srcom.Run, error) {
	f.Queries = append(f.Queries, q)
	f.ListedGames = append(f.ListedGames, gameID)
	if err := f.ListErr[gameID]; err != nil {
		return nil, err
	}
	return f.Runs[gameID], nil
}

// Reject records the call and returns the configured error, if any.
func (f *FakeSource) Reject(_ context.Context, runID, reason string) error {
	if err := f.RejectErr[runID]; err != nil {
		return err
	}
	f.Rejected = append(f.Rejected, RejectCall{RunID: runID, Reason: reason})
	return nil
}

// RejectedIDs returns the ids of recorded rejects, in call order.
func (f *FakeSource) RejectedIDs() []string {
	ids := make([]string, len(f.Rejected))
	for i, r := range f.Rejected {
		ids[i] = r.RunID
	}
	return ids
}

// FakeTwitch implements rules.VideoLookup and bot.TokenRefresher over
// an in-memory video table.
type FakeTwitch struct {
	// Videos maps a video id to its metadata.
	Videos map[string]twitch.Video

	// LookupErr, when set, fails every Video call.
	LookupErr error

	// RefreshErr, when set, fails every RefreshToken call.
	RefreshErr error

	// Refreshes counts RefreshToken calls.
	Refreshes int
}

// Video returns the configured metadata for the id.
func (f *FakeTwitch) Video(_ context.Context, id string) (twitch.Video, bool, error) {
	if f.LookupErr != nil {
		return twitch.Video{}, false, f.LookupErr
	}
	v, ok := f.Videos[id]
	return v, ok, nil
}

// RefreshToken counts the call and returns the configured error.
func (f *FakeTwitch) RefreshToken(_ context.Context) error {
	f.Refreshes++
	return f.RefreshErr
}
