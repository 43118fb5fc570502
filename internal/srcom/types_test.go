package srcom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunSubmission(t *testing.T) {
	run := Run{
		ID: "y8dw97ny",
		Times: RunTimes{
			RealtimeT: 95.5,
			IngameT:   0.017,
		},
		Values: map[string]string{"ver-var": "opt1"},
		System: RunSystem{Platform: "pc"},
		Videos: &RunVideos{Links: []RunVideoLink{
			{URI: "https://www.twitch.tv/videos/123"},
			{URI: "https://youtu.be/abc"},
		}},
	}

	sub := run.Submission()
	assert.Equal(t, "y8dw97ny", sub.ID)
	assert.Equal(t, 95500*time.Millisecond, sub.RealTime)
	assert.Equal(t, 17*time.Millisecond, sub.InGameTime, "float seconds round to whole milliseconds")
	assert.Equal(t, "opt1", sub.Values["ver-var"])
	assert.Equal(t, "pc", sub.PlatformID)
	assert.Equal(t, []string{
		"https://www.twitch.tv/videos/123",
		"https://youtu.be/abc",
	}, sub.VideoLinks)
}

func TestRunSubmissionWithoutVideos(t *testing.T) {
	run := Run{ID: "r1"}

	sub := run.Submission()
	assert.Empty(t, sub.VideoLinks)
	assert.Zero(t, sub.RealTime)
	assert.Zero(t, sub.InGameTime)
}

func TestSecondsToDurationRounding(t *testing.T) {
	// 0.0169999... seconds of float error must still land on 17ms.
	assert.Equal(t, 17*time.Millisecond, secondsToDuration(0.017))
	assert.Equal(t, 2*time.Millisecond, secondsToDuration(0.0015))
	assert.Equal(t, time.Duration(0), secondsToDuration(0))
}
