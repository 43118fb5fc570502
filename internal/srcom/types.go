package srcom

import (
	"math"
	"time"

	"github.com/badelinebot/badeline/internal/rules"
)

// Run mirrors the speedrun.com run resource, limited to the fields
// the rule set needs.
type Run struct {
	ID     string            `json:"id"`
	Times  RunTimes          `json:"times"`
	Values map[string]string `json:"values"`
	System RunSystem         `json:"system"`

	// Videos is nil when the submission has no videos section at all.
	Videos *RunVideos `json:"videos"`
}

// RunTimes holds the submitted times in seconds, as the API serves
// them.
type RunTimes struct {
	RealtimeT float64 `json:"realtime_t"`
	IngameT   float64 `json:"ingame_t"`
}

// RunSystem identifies the platform the run was performed on.
type RunSystem struct {
	Platform string `json:"platform"`
}

// RunVideos is the submission's video section.
type RunVideos struct {
	Links []RunVideoLink `json:"links"`
}

// RunVideoLink is a single proof video URI.
type RunVideoLink struct {
	URI string `json:"uri"`
}

// Submission converts the wire representation into the domain type
// the rule set evaluates. The API serves times as float seconds; the
// leaderboard's canonical precision is milliseconds, so both are
// rounded to whole milliseconds here.
func (r Run) Submission() rules.Submission {
	sub := rules.Submission{
		ID:         r.ID,
		RealTime:   secondsToDuration(r.Times.RealtimeT),
		InGameTime: secondsToDuration(r.Times.IngameT),
		Values:     r.Values,
		PlatformID: r.System.Platform,
	}
	if r.Videos != nil {
		for _, link := range r.Videos.Links {
			sub.VideoLinks = append(sub.VideoLinks, link.URI)
		}
	}
	return sub
}

func secondsToDuration(seconds float64) time.Duration {
	ms := int64(math.Round(seconds * 1000))
	return time.Duration(ms) * time.Millisecond
}
