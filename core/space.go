package core

import "fmt"

// Space is the capability contract a topology implements. Two primitives are
// genuinely topology-specific and overridable: RandomPosition and Neighbors.
// Place is the placement hook MoveAgent calls for topology bookkeeping; the
// BaseSpace default passes the target location through unchanged, so simple
// topologies implement only the two primitives.
//
// The lifecycle operations themselves (AddAgent, RemoveAgent, MoveAgent,
// KillAgent) are free functions in this package, not interface methods, so a
// topology cannot accidentally override registry or liveness handling.
//
// The interface carries an unexported method: a topology satisfies Space by
// embedding BaseSpace, which supplies the world binding plumbing. That keeps
// the back-reference writable only from this package.
type Space interface {
	// RandomPosition returns a uniformly selected valid position for this
	// topology, or the empty position when the topology has nowhere to offer
	// (an empty graph, for example).
	RandomPosition() Position

	// Neighbors returns the live agents within radius of the subject,
	// excluding an agent subject from its own result. Omitting the radius
	// selects a topology-specific default. The subject must resolve to a
	// position of the topology's kind; otherwise the call fails with
	// ErrInvalidSubjectType. The candidate set is the world registry, so an
	// unbound space fails with ErrSpaceNotBound.
	Neighbors(subject Subject, radius ...float64) ([]Agent, error)

	// Place resolves the effective position for a move: it substitutes the
	// topology's choice when at is empty and performs any bookkeeping tied
	// to the new location. MoveAgent assigns the returned position to the
	// agent; Place itself must not.
	Place(a Agent, at Position) (Position, error)

	// World returns the owning world, or nil while unbound.
	World() *World

	bind(w *World)
}

// BaseSpace supplies the world-binding plumbing every topology embeds. The
// zero value is ready to use. It deliberately implements neither
// RandomPosition nor Neighbors; those are the contract a topology brings.
type BaseSpace struct {
	w *World
}

// World returns the owning world, or nil while unbound.
func (b *BaseSpace) World() *World { return b.w }

// Place is the pass-through default: the target location, empty or not, is
// used as-is.
func (b *BaseSpace) Place(_ Agent, at Position) (Position, error) {
	return at, nil
}

func (b *BaseSpace) bind(w *World) { b.w = w }

// AddAgent registers a with the world bound to s and places it. A target
// position may be supplied; when omitted the topology resolves one (the grid
// draws a random position, the graph seats the agent on its own node).
// Fails with ErrSpaceNotBound when s has no world. A placement failure
// unwinds the registration, so a rejected agent never lingers in the
// registry.
func AddAgent(s Space, a Agent, at ...Position) error {
	w := s.World()
	if w == nil {
		return ErrSpaceNotBound
	}
	w.register(a)
	if err := MoveAgent(s, a, at...); err != nil {
		w.unregister(a.ID())
		return err
	}
	return nil
}

// RemoveAgent excises a from the world registry; its identity is orphaned
// and the agent no longer participates in ticks or neighbor queries. The
// live flag is not touched. Fails with ErrSpaceNotBound when s has no world
// and ErrUnknownAgent when a is not registered.
func RemoveAgent(s Space, a Agent) error {
	w := s.World()
	if w == nil {
		return ErrSpaceNotBound
	}
	if !w.registered(a.ID()) {
		return fmt.Errorf("%w: id %d", ErrUnknownAgent, a.ID())
	}
	w.unregister(a.ID())
	return nil
}

// MoveAgent relocates a. The topology's Place hook resolves the effective
// position (including the omitted-location case) and performs bookkeeping;
// the resulting position is then assigned to the agent here, the only
// location write in the library. Fails with ErrSpaceNotBound when s has no
// world. Registration is not required to move.
func MoveAgent(s Space, a Agent, to ...Position) error {
	if s.World() == nil {
		return ErrSpaceNotBound
	}
	var target Position
	if len(to) > 0 {
		target = to[0]
	}
	placed, err := s.Place(a, target)
	if err != nil {
		return err
	}
	a.setLocation(placed)
	return nil
}

// KillAgent marks a dead. The agent stays registered and keeps its location;
// it remains queryable by id but stops appearing in neighbor results, and
// behaviors are expected to check Live in their Tick overrides. Fails with
// ErrSpaceNotBound when s has no world and ErrUnknownAgent when a is not
// registered.
func KillAgent(s Space, a Agent) error {
	w := s.World()
	if w == nil {
		return ErrSpaceNotBound
	}
	if !w.registered(a.ID()) {
		return fmt.Errorf("%w: id %d", ErrUnknownAgent, a.ID())
	}
	a.setLive(false)
	return nil
}
