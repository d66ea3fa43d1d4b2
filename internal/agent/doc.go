// Package agent defines the contracts between agent definitions and the
// orchestration runtime that hosts them.
//
// An agent here is declarative configuration: a model, an instruction, and
// a set of callbacks and tools registered by name. The runtime drives the
// conversation loop; this package only fixes the shapes it calls through:
//
//   - BeforeAgent callbacks run once per turn before the agent executes,
//     typically to capture uploaded content.
//   - BeforeModel callbacks run immediately before each model invocation.
//     They may mutate the outbound request in place (appending context to
//     its trailing message) or short-circuit the model call entirely by
//     returning a Reply.
//
// Callbacks within one turn run sequentially, in registration order, over
// the same request. There is no concurrency inside a turn.
package agent
