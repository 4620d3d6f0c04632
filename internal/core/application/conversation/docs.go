// Package conversation drives the multi-step chat dialogs as per-user
// finite-state machines: registration, checkout, profile edits, order
// rating, history and courier delivery reports.
//
// Sessions live in memory only. Events for one user are processed strictly
// in order while different users advance concurrently. Malformed input
// never changes state; it re-prompts. A reserved back token cancels the
// current flow and discards its scratch data without touching anything
// durable.
package conversation
