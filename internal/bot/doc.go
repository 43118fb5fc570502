// Package bot contains the moderation loop: the cross-cycle state,
// the cycle runner, and the scheduler.
//
// ARCHITECTURE:
//
// Single-loop design. The Scheduler owns the authoritative CycleState
// and runs cycles strictly one after another; a cycle is one full
// pass of fetch, dedupe, validate, and reject across every configured
// game. All external calls block the loop, so cycles never overlap
// and no locking is needed around state.
//
// Cross-cycle state is two sets of run ids:
//
//   - Seen: runs fetched in a cycle. A run is only evaluated once it
//     has been seen in an earlier cycle, a one-cycle grace window that
//     tolerates the upstream listing being eventually consistent.
//   - Rejected: runs the bot rejected. The upstream queue can keep
//     listing a run briefly after its status changed; the carried set
//     guarantees a run is never rejected twice.
//
// Error handling is abort-and-continue: any speedrun.com failure ends
// the current cycle, the partial state is merged forward, and the
// next cycle retries naturally. No error is fatal to the loop.
package bot
