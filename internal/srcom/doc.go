// Package srcom is the speedrun.com REST API client used by the bot.
//
// Two operations are in scope: listing a game's pending ("new") runs
// and rejecting a run with a reason. The listing side carries the
// query rotation that keeps the edge cache from serving stale run
// lists; see Rotator.
package srcom
