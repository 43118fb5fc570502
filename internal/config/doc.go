// Package config loads the bot's configuration: API credentials from
// the environment and the game roster from a CUE file.
//
// The roster file lists the games to moderate, in processing order,
// each with its version-rule descriptor. It is unified against an
// embedded CUE schema before decoding, so malformed rosters fail at
// startup with a position-carrying error instead of surfacing as odd
// rule behavior later.
package config
