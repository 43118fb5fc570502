// Package harness runs moderation scenarios end to end.
//
// A scenario is a YAML file describing one game, a set of pending
// submissions, the carried-over seen/rejected state, and the Twitch
// video table. The harness executes a real cycle (the production
// Runner over in-memory fakes) and captures a deterministic trace:
// which runs were rejected, with which faults, and the resulting
// state. Traces are compared against golden files, so a behavior
// change in the rules or the dedup logic shows up as a readable diff.
package harness
