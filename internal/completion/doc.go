// Package completion implements viewport word-mining completion.
//
// Given a trigger inside an edited buffer, the engine locates the word
// fragment already typed, scans the currently visible regions of every open
// buffer across all views, extracts distinct candidate words meeting a
// minimum grapheme-cluster length, and packages each as a suggestion
// carrying the exact multi-cursor edit needed to apply it.
//
// Execution splits into two phases. Complete runs the cheap phase
// synchronously on the interactive path: trigger policy, prefix location and
// visible-range collection, ending with a single cancellation poll. It
// returns a Task — the deferred, side-effect-free heavy phase closing over
// immutable snapshots — or nil when the request yields nothing. The host
// hands the task to its own scheduler; running it produces the Response.
//
// Per-document visible ranges are merged on insert under a deliberate
// overlap predicate: ranges sharing a start always merge, strictly
// interpenetrating ranges merge, but ranges that merely touch at an endpoint
// stay separate.
//
// There is no error type anywhere in this package: every failure mode is an
// empty result. A nil task means no suggestions; an empty candidate set
// still produces a response with zero items.
//
// RetainValid is the independent staleness filter applied to
// already-produced suggestions as the surrounding context changes.
package completion
