package rules

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/badelinebot/badeline/internal/twitch"
)

// videoHost marks a link as belonging to the video collaborator. Only
// Twitch links are inspected; other hosts are out of scope.
const videoHost = "twitch.tv"

// archiveVideoType is the Helix type of a past broadcast, which Twitch
// deletes after a retention window. Highlights and uploads persist.
const archiveVideoType = "archive"

// VideoLookup resolves a video id to its metadata. Implemented by
// *twitch.Client in production and by test fakes.
//
// The boolean is false when the id has no video entry. Errors are
// transport or auth failures from the lookup layer; callers inside the
// rule set must treat them as inconclusive, never as faults.
type VideoLookup interface {
	Video(ctx context.Context, id string) (twitch.Video, bool, error)
}

// Checker evaluates submissions against the full rule set.
type Checker struct {
	videos VideoLookup
}

// NewChecker creates a Checker backed by the given video lookup.
func NewChecker(videos VideoLookup) *Checker {
	return &Checker{videos: videos}
}

// Evaluate runs every rule against the submission and returns the
// faults found, in rule evaluation order. An empty slice means the
// submission is valid.
//
// The version rules need the game's version variable; if the
// submission does not carry it at all, both are skipped with a logged
// warning rather than failing the submission (the roster config and
// the leaderboard schema have drifted, which is an operator problem,
// not a runner problem).
func (c *Checker) Evaluate(ctx context.Context, sub Submission, game GameConfig) []Fault {
	var faults []Fault

	if !ValidRealTime(sub) {
		faults = append(faults, FaultSubmittedRealTime)
	}

	_, hasVersion := sub.Values[game.Version.VariableID]
	if !hasVersion {
		slog.Warn("submission has no version variable, skipping version rules",
			"run", sub.ID,
			"variable", game.Version.VariableID,
		)
	}

	if hasVersion && !ValidVersionSelected(sub, game.Version) {
		faults = append(faults, FaultNoVersionSelected)
	}
	if !ValidInGameTime(sub) {
		faults = append(faults, FaultInvalidInGameTime)
	}
	if hasVersion && !ValidVersionOnPlatform(sub, game.Version) {
		faults = append(faults, FaultInvalidVersionForPlatform)
	}
	if !c.validPersistentVOD(ctx, sub) {
		faults = append(faults, FaultPersistentBroadcastVOD)
	}

	return faults
}

// ValidRealTime reports whether the submission left the real-time
// column empty. This leaderboard times runs by in-game time only.
func ValidRealTime(sub Submission) bool {
	return sub.RealTime == 0
}

// ValidVersionSelected reports whether the runner picked an actual
// game version instead of leaving the form default selected.
func ValidVersionSelected(sub Submission, rule VersionRule) bool {
	return sub.Values[rule.VariableID] != rule.DefaultOptionID
}

// ValidInGameTime reports whether the in-game time could have been
// produced by the game's timer.
//
// The timer advances in ticks of 17ms, so any genuine final time is a
// multiple of 17 milliseconds. Anything else was typed in by hand.
func ValidInGameTime(sub Submission) bool {
	return sub.InGameTime.Milliseconds()%17 == 0
}

// ValidVersionOnPlatform reports whether the selected version exists
// on the submission's platform.
//
// An unknown platform id is treated as valid with a logged warning so
// that newly added platforms never cause false rejections before the
// roster config catches up.
func ValidVersionOnPlatform(sub Submission, rule VersionRule) bool {
	invalid, known := rule.InvalidByPlatform[sub.PlatformID]
	if !known {
		slog.Warn("unknown platform id, skipping version-platform rule",
			"run", sub.ID,
			"platform", sub.PlatformID,
		)
		return true
	}
	selected := sub.Values[rule.VariableID]
	for _, opt := range invalid {
		if selected == opt {
			return false
		}
	}
	return true
}

// validPersistentVOD reports whether the submitted proof video will
// persist. A Twitch past broadcast ("archive") is scheduled for
// deletion, so runs backed by one must be highlighted first.
//
// This is the one rule with an external lookup. All lookup failures
// are inconclusive and therefore valid; the only fail-closed branch is
// a submission with no video links at all, because a VOD is mandatory.
func (c *Checker) validPersistentVOD(ctx context.Context, sub Submission) bool {
	if len(sub.VideoLinks) == 0 {
		return false
	}

	videoID := ""
	for _, link := range sub.VideoLinks {
		u, err := url.Parse(link)
		if err != nil || !strings.Contains(u.Host, videoHost) {
			continue
		}
		videoID = twitchVideoID(u)
		break
	}
	// Non-Twitch videos are out of scope, and a Twitch link we cannot
	// extract an id from is inconclusive.
	if videoID == "" {
		return true
	}

	video, found, err := c.videos.Video(ctx, videoID)
	if err != nil {
		slog.Warn("video lookup failed, treating VOD as valid",
			"run", sub.ID,
			"video", videoID,
			"error", err,
		)
		return true
	}
	if !found {
		return true
	}
	return video.Type != archiveVideoType
}

// twitchVideoID extracts the numeric video id from a Twitch VOD URI
// path such as /videos/1234567. Returns "" when the path does not
// carry a numeric id in that position.
func twitchVideoID(u *url.URL) string {
	parts := strings.Split(u.Path, "/")
	if len(parts) < 3 {
		return ""
	}
	id := parts[2]
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return ""
	}
	return id
}
