// Package agent provides reusable agent behaviors built on core.BaseAgent.
//
// A behavior embeds the base agent, shadows Tick with its domain rule and
// calls the promoted base Tick first so the local clock always advances
// exactly once per step:
//
//	func (a *RandomWalker) Tick() int64 {
//		t := a.BaseAgent.Tick()
//		// domain rule here
//		return t
//	}
//
// Bundled behaviors:
//
//   - RandomWalker: unit-step random walk on a grid, clamped to the extent
//   - Drifter: re-homes to a uniformly drawn existing graph node each step
//   - Lifespan: self-terminates once its local time reaches a TTL
//
// All behaviors go quiet once dead: they keep advancing their clock (the
// world ticks every registered agent, dead or alive) but stop mutating the
// topology. Concrete models follow the same pattern for their own rules.
package agent
