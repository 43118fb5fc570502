package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonSingleFault(t *testing.T) {
	reason := Reason([]Fault{FaultSubmittedRealTime})

	assert.Equal(t,
		"BadelineBot found the following problem with your submission, please edit it accordingly: "+
			"Your submission has real-time, leave the real-time column empty",
		reason)
	assert.NotContains(t, reason, "problems", "single fault uses singular phrasing")
}

func TestReasonTwoFaults(t *testing.T) {
	reason := Reason([]Fault{FaultNoVersionSelected, FaultInvalidInGameTime})

	assert.Contains(t, reason, "problems with your submission", "two faults use plural phrasing")
	assert.Contains(t, reason, "You did not select a version")
	assert.Contains(t, reason, "Your submission has an invalid IGT")
	assert.Equal(t, 1, strings.Count(reason, " || "), "two explanations, one separator")

	// Explanations appear in fault-evaluation order.
	assert.Less(t,
		strings.Index(reason, "You did not select a version"),
		strings.Index(reason, "Your submission has an invalid IGT"))
}

func TestReasonManyFaultsGeneric(t *testing.T) {
	lists := [][]Fault{
		{FaultNoVersionSelected, FaultInvalidInGameTime, FaultPersistentBroadcastVOD},
		{FaultSubmittedRealTime, FaultNoVersionSelected, FaultInvalidInGameTime, FaultInvalidVersionForPlatform, FaultPersistentBroadcastVOD},
	}

	for _, faults := range lists {
		reason := Reason(faults)
		assert.Equal(t,
			"BadelineBot found various issues with your submission, please read the rules or contact a moderator/verifier.",
			reason, "3+ faults always produce the fixed generic message")
	}
}

func TestReasonEmpty(t *testing.T) {
	assert.Empty(t, Reason(nil))
	assert.Empty(t, Reason([]Fault{}))
}

func TestReasonCoversEveryFault(t *testing.T) {
	for _, f := range []Fault{
		FaultSubmittedRealTime,
		FaultNoVersionSelected,
		FaultInvalidInGameTime,
		FaultInvalidVersionForPlatform,
		FaultPersistentBroadcastVOD,
	} {
		assert.NotEmpty(t, faultExplanations[f], "fault %s has no explanation", f)
	}
}
