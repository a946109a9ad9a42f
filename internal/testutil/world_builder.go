package testutil

import (
	"github.com/hupe1980/agentscape/core"
)

// WorldBuilder constructs a world over a space and seeds it with base agents
// through fluent chaining. The first error sticks and surfaces from Build.
// Example:
//
//	w, agents, err := NewWorldBuilder(grid).
//		Agent(core.VectorPosition(0, 0)).
//		Agent(core.VectorPosition(1, 0)).
//		Build()
type WorldBuilder struct {
	space  core.Space
	world  *core.World
	seq    *core.Identity
	agents []*core.BaseAgent
	err    error
}

// NewWorldBuilder binds s to a fresh world. Use chainable methods (Identity,
// Agent, AgentN) then call Build.
func NewWorldBuilder(s core.Space) *WorldBuilder {
	b := &WorldBuilder{space: s, seq: core.NewIdentity()}
	b.world, b.err = core.NewWorld(s)
	return b
}

// Identity swaps the id allocator. Call before adding any agents (chainable).
func (b *WorldBuilder) Identity(seq *core.Identity) *WorldBuilder {
	b.seq = seq
	return b
}

// Agent adds one base agent, optionally at a fixed position; an omitted
// position lets the topology choose (chainable).
func (b *WorldBuilder) Agent(at ...core.Position) *WorldBuilder {
	if b.err != nil {
		return b
	}

	a, err := core.NewBaseAgent(b.seq)
	if err != nil {
		b.err = err
		return b
	}
	if err := core.AddAgent(b.space, &a, at...); err != nil {
		b.err = err
		return b
	}

	b.agents = append(b.agents, &a)
	return b
}

// AgentN adds n base agents at topology-chosen positions (chainable).
func (b *WorldBuilder) AgentN(n int) *WorldBuilder {
	for i := 0; i < n; i++ {
		b.Agent()
	}
	return b
}

// Build returns the world, the added agents in insertion order, and the
// first error encountered while building.
func (b *WorldBuilder) Build() (*core.World, []*core.BaseAgent, error) {
	return b.world, b.agents, b.err
}
