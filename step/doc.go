// Package step is the animation engine: it turns an algorithm into a
// resumable, pausable, steppable sequence of visible mutations.
//
// An algorithm is written as a Procedure, an explicit state machine whose
// Step method advances to exactly one yield point per call. A yield point
// follows every mutation that changes an entity's display state or a shared
// table, and every comparison a viewer should see highlighted. The same
// input always produces the same sequence of mutations.
//
// A Handler owns at most one Procedure and a run state:
//
//	NotBegun ──Play/Next──▶ Running ◀──Play── Paused
//	    ▲                      │  ╲──Pause──▶   │
//	  Reset                    ▼                 ▼
//	    └──────────────── Stopped ◀──ForceStop / completion
//
// Play drives the procedure on a timer: wait Delay, call Next, repeat while
// Running. There is never more than one play loop per handler: a second
// Play on a running handler returns ErrAlreadyRunning, and a loop left over
// from an earlier Play exits at its next tick. Steps execute under the
// handler mutex, so Pause and ForceStop take effect at tick boundaries and
// never split a mutation.
//
// Outcomes:
//
//   - Notice errors are user-facing messages (precondition violated, target
//     unreachable, negative cycle). The handler posts them to its Notifier
//     and stops cleanly; Play and Next return nil.
//   - Any other error is an internal contract violation. The handler stops,
//     runs cleanup, and returns it.
//
// Transition to Stopped always runs Algorithm.Cleanup exactly once and then
// asks the target to repaint.
package step
