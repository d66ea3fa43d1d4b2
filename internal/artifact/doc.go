// Package artifact provides session-scoped artifact management.
//
// An artifact is a named binary blob (an uploaded document, a converted
// image) that belongs to exactly one conversation session. Saving under an
// existing key appends a new version rather than replacing the previous
// one, so earlier uploads remain addressable; reads default to the latest
// version.
//
// Design follows Google ADK's artifact service pattern where artifacts are
// managed separately from conversation state. The Store interface matches
// the external artifact service contract; Memory is the in-process
// implementation used when no external service is attached.
//
// Thread Safety: Store implementations must be safe for concurrent access.
//
// Lifecycle: artifacts live as long as their session. Nothing in this
// package deletes them.
package artifact
