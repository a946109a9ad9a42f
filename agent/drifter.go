package agent

import (
	"github.com/hupe1980/agentscape/core"
	"github.com/hupe1980/agentscape/logging"
	"github.com/hupe1980/agentscape/space"
)

// DrifterOptions holds overrides passed to NewDrifter.
type DrifterOptions struct {
	// Logger receives move failures. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Drifter re-homes to a uniformly drawn existing graph node each tick. The
// draw comes from the graph's own RandomPosition, so injecting a seeded
// source into the graph makes a drifting population reproducible. Drawing
// the drifter's own node seats it as a singleton again. Dead drifters only
// advance their clock.
type Drifter struct {
	core.BaseAgent
	graph  *space.Graph
	logger logging.Logger
}

// NewDrifter allocates an id from seq and returns a drifter on graph.
func NewDrifter(seq *core.Identity, graph *space.Graph, optFns ...func(o *DrifterOptions)) (*Drifter, error) {
	opts := DrifterOptions{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	base, err := core.NewBaseAgent(seq)
	if err != nil {
		return nil, err
	}

	return &Drifter{BaseAgent: base, graph: graph, logger: opts.Logger}, nil
}

// Tick advances the clock, then drifts to a random existing node. An empty
// topology leaves the drifter where it is.
func (a *Drifter) Tick() int64 {
	t := a.BaseAgent.Tick()
	if !a.Live() {
		return t
	}

	target := a.graph.RandomPosition()
	if target.IsEmpty() {
		return t
	}

	if err := core.MoveAgent(a.graph, a, target); err != nil {
		a.logger.Warn("drifter move failed", "agent_id", a.ID(), "error", err)
	}

	return t
}
