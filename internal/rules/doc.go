// Package rules implements the submission validity rules for the
// leaderboard moderation bot.
//
// A submission is checked against five independent predicates, each
// returning true for a valid submission. Predicates run in a fixed
// order and each failure contributes one Fault to the submission's
// fault list; that order is preserved all the way into the composed
// rejection reason.
//
// FAIL-OPEN POLICY:
//
// Several rules depend on data that may be missing or unreachable
// (unknown platform ids, malformed video links, Twitch API errors).
// Whenever a rule cannot reach a conclusive verdict, it treats the
// submission as valid and logs a warning. A moderator can always
// reject a run manually; the bot must never reject one on ambiguous
// data. The single deliberate exception is the VOD rule: a submission
// with no video links at all is invalid, because a proof video is
// mandatory on this leaderboard. An empty links list counts the same
// as a missing videos section, even though the API distinguishes the
// two shapes.
package rules
