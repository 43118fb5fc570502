package rules

import (
	"fmt"
	"time"
)

// Submission is one pending leaderboard run, immutable once fetched
// within a cycle.
type Submission struct {
	// ID is the opaque run identifier assigned by the leaderboard.
	ID string

	// RealTime is the submitted real-time duration. Zero means no
	// real time was submitted, which is the only valid state here.
	RealTime time.Duration

	// InGameTime is the submitted in-game time. The leaderboard
	// stores it with millisecond precision.
	InGameTime time.Duration

	// Values maps rule-variable ids to the selected option ids.
	Values map[string]string

	// PlatformID identifies the platform the run was performed on.
	PlatformID string

	// VideoLinks holds the submitted proof video URIs in submission
	// order. May be empty.
	VideoLinks []string
}

// VersionRule describes how the game-version variable is validated
// for one game.
type VersionRule struct {
	// VariableID is the leaderboard variable holding the game version.
	VariableID string

	// DefaultOptionID is the option preselected by the submission
	// form. A submission still carrying it means the runner never
	// picked a version.
	DefaultOptionID string

	// InvalidByPlatform maps a platform id to the version option ids
	// that do not exist on that platform.
	InvalidByPlatform map[string][]string
}

// GameConfig is the per-game moderation configuration, supplied at
// startup and immutable for the process lifetime.
type GameConfig struct {
	// ID is the leaderboard game id.
	ID string

	// Version is the game's version-rule descriptor.
	Version VersionRule
}

// Fault identifies one detected reason a submission is invalid.
//
// The numeric order is the rule evaluation order; fault lists are
// always sorted by it because rules run in that order.
type Fault int

const (
	// FaultSubmittedRealTime: the submission carries a real-time value.
	FaultSubmittedRealTime Fault = iota
	// FaultNoVersionSelected: the default version option was left selected.
	FaultNoVersionSelected
	// FaultInvalidInGameTime: the in-game time fails the timer checksum.
	FaultInvalidInGameTime
	// FaultInvalidVersionForPlatform: the selected version does not
	// exist on the submission's platform.
	FaultInvalidVersionForPlatform
	// FaultPersistentBroadcastVOD: the proof video is an expiring
	// Twitch past broadcast, or missing entirely.
	FaultPersistentBroadcastVOD
)

// String returns a short stable name for the fault, used in logs and
// scenario traces.
func (f Fault) String() string {
	switch f {
	case FaultSubmittedRealTime:
		return "submitted_real_time"
	case FaultNoVersionSelected:
		return "no_version_selected"
	case FaultInvalidInGameTime:
		return "invalid_in_game_time"
	case FaultInvalidVersionForPlatform:
		return "invalid_version_for_platform"
	case FaultPersistentBroadcastVOD:
		return "persistent_broadcast_vod"
	default:
		return fmt.Sprintf("fault(%d)", int(f))
	}
}
