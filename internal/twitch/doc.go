// Package twitch is a minimal Twitch Helix client for the VOD
// persistence rule.
//
// The bot needs exactly two operations: an app-token refresh (client
// credentials grant, once per moderation cycle) and a video metadata
// lookup by id. Everything else Helix offers is out of scope.
package twitch
