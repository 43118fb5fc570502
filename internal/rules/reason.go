package rules

import (
	"fmt"
	"strings"
)

// AccountName is the moderation account the bot acts as. Rejection
// reasons name it so runners know who to contact.
const AccountName = "BadelineBot"

// reasonSeparator joins individual fault explanations in a composed
// rejection reason.
const reasonSeparator = " || "

// manyFaultsThreshold is the fault count at which the bot stops
// enumerating problems and points the runner at the rules instead.
// Three or more explanations read like a wall of text, and the more
// rules fire at once the more likely the submission is broken in some
// way the runner should sort out with a human.
const manyFaultsThreshold = 3

// faultExplanations holds the runner-facing text for each fault.
// Keyed strictly off the Fault enum, never derived from submission
// contents.
var faultExplanations = map[Fault]string{
	FaultSubmittedRealTime:         "Your submission has real-time, leave the real-time column empty",
	FaultNoVersionSelected:         "You did not select a version, make sure to select the correct game version",
	FaultInvalidInGameTime:         "Your submission has an invalid IGT, check the final time of your run and adjust the submission",
	FaultInvalidVersionForPlatform: "The version you selected does not exist on your platform, please select the correct game version",
	FaultPersistentBroadcastVOD:    "The video you submitted is a Twitch past broadcast that will be deleted after a while, please highlight your run",
}

// Reason composes the rejection reason for a submission's fault list.
//
// One or two faults produce the prefix naming the moderation account
// (pluralized for two) followed by the per-fault explanations in fault
// order. Three or more faults produce a fixed generic message.
// An empty fault list returns "".
func Reason(faults []Fault) string {
	if len(faults) == 0 {
		return ""
	}
	if len(faults) >= manyFaultsThreshold {
		return fmt.Sprintf("%s found various issues with your submission, please read the rules or contact a moderator/verifier.", AccountName)
	}

	plural := ""
	if len(faults) > 1 {
		plural = "s"
	}
	explanations := make([]string, len(faults))
	for i, f := range faults {
		explanations[i] = faultExplanations[f]
	}
	return fmt.Sprintf("%s found the following problem%s with your submission, please edit it accordingly: %s",
		AccountName, plural, strings.Join(explanations, reasonSeparator))
}
