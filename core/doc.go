// Package core provides the foundational domain types and contracts of
// agentscape. It defines the abstractions every model builds on:
//
//   - Agents (identity-bearing entities stepped once per tick)
//   - Positions and Subjects (tagged location values and query centers)
//   - Identity (the explicit, injectable id allocator)
//   - The Space capability contract plus the final lifecycle operations
//     (AddAgent, RemoveAgent, MoveAgent, KillAgent)
//   - The World (authoritative agent registry and global clock)
//
// Concrete topologies live in the space package; reusable behaviors in the
// agent package. The core stays free of I/O, timers and logging, and it
// carries no internal locking: a world and everything reachable from it is
// confined to one goroutine, and hosts that want parallelism run independent
// worlds side by side.
package core
