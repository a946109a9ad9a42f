package core

import "sort"

// World owns the authoritative agent registry and the global clock for one
// model instance. A world binds exactly one space at construction and the
// two stay back-linked for their whole life. All registry mutation flows
// through the space operations (AddAgent, RemoveAgent, MoveAgent,
// KillAgent); the world exposes read access and the step function.
type World struct {
	time   int64
	space  Space
	agents map[int64]Agent
}

// NewWorld binds space and returns the world that owns it. Fails with
// ErrNilSpace for a nil space and ErrSpaceBound when the space already
// belongs to another world.
func NewWorld(space Space) (*World, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if space.World() != nil {
		return nil, ErrSpaceBound
	}
	w := &World{
		space:  space,
		agents: make(map[int64]Agent),
	}
	space.bind(w)
	return w, nil
}

// Time returns the global step counter.
func (w *World) Time() int64 { return w.time }

// Space returns the bound space.
func (w *World) Space() Space { return w.space }

// Agent looks up a registered agent by id.
func (w *World) Agent(id int64) (Agent, bool) {
	a, ok := w.agents[id]
	return a, ok
}

// Agents returns a snapshot of the registry in ascending id order. The slice
// is the caller's to keep; the agents are shared references.
func (w *World) Agents() []Agent {
	out := make([]Agent, 0, len(w.agents))
	for _, a := range w.agents {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Size returns the number of registered agents, dead or alive.
func (w *World) Size() int { return len(w.agents) }

// LiveCount returns the number of registered agents still alive.
func (w *World) LiveCount() int {
	n := 0
	for _, a := range w.agents {
		if a.Live() {
			n++
		}
	}
	return n
}

// Tick steps the model once: every registered agent's Tick runs exactly
// once, in ascending id order so a step is deterministic, and then the
// global clock advances. Dead agents are ticked too; behaviors that should
// go quiet after death check Live themselves. Returns the new global time.
func (w *World) Tick() int64 {
	for _, a := range w.Agents() {
		a.Tick()
	}
	w.time++
	return w.time
}

func (w *World) register(a Agent) { w.agents[a.ID()] = a }

func (w *World) registered(id int64) bool {
	_, ok := w.agents[id]
	return ok
}

func (w *World) unregister(id int64) { delete(w.agents, id) }
