// Package engine drives simulations: it owns the stepping loop around
// core.World.Tick, streams per-step events, enforces stop conditions and
// records run reports.
//
// Architecture:
//
//	┌─────────────────────────────────────────────┐
//	│                   Runner                    │
//	│                                             │
//	│  Run(ctx, world)                            │
//	│    ├── runID (uuid)                         │
//	│    ├── goroutine: step loop                 │
//	│    │     before_step hooks                  │
//	│    │     world.Tick()                       │
//	│    │     StepEvent ──► events channel       │
//	│    │     after_step hooks                   │
//	│    │     stop condition / ctx / max steps   │
//	│    │     on_stop hooks                      │
//	│    └── Report ──► ReportStore               │
//	└─────────────────────────────────────────────┘
//
// Responsibilities:
//
//   - Stepping: exactly one world.Tick per step, up to MaxSteps, honoring
//     context cancellation and an optional StopCondition between steps
//   - Streaming: one StepEvent per step on a buffered channel; RunSync
//     drains the stream for callers that just want the final Report
//   - Hooks: synchronous lifecycle extension points (before_step,
//     after_step, on_stop); a hook error terminates the run
//   - Reports: a run summary (steps, duration, population, outcome) saved
//     to a ReportStore for later inspection
//
// Concurrency model: the core is single-threaded per world, and the engine
// preserves that — each run confines its world to one goroutine. The runner's
// own bookkeeping (active runs) is the only shared state and is guarded by a
// mutex, so independent worlds may run concurrently through one Runner.
package engine
