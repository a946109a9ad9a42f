package core

import "fmt"

// Agent defines the interface every simulated entity must implement.
//
// Agents are the units a world steps: each carries an immutable id, a live
// flag, a location inside the bound topology and a local clock. Concrete
// models embed BaseAgent and shadow Tick with their domain rules.
//
// Implementations must:
//   - Embed BaseAgent (the interface carries unexported mutators so the
//     space operations stay the only writers of live and location)
//   - Advance the local clock exactly once per Tick, normally by calling the
//     promoted base Tick first
//   - Keep Tick synchronous and free of I/O; a step either completes or
//     fails, it never suspends
type Agent interface {
	// ID returns the unique, monotonically assigned identity.
	ID() int64

	// Live reports whether the agent is alive. True from construction until
	// KillAgent flips it.
	Live() bool

	// Location returns the agent's current position, possibly empty.
	Location() Position

	// Time returns the agent-local step counter.
	Time() int64

	// Tick advances the agent one step and returns the new local time.
	Tick() int64

	setLive(live bool)
	setLocation(at Position)
}

// BaseAgent is the embeddable Agent implementation. It owns the identity,
// liveness, location and local clock; everything else is up to the
// embedding behavior. The zero value is not usable, construct with
// NewBaseAgent.
type BaseAgent struct {
	id       int64
	live     bool
	location Position
	time     int64
}

// NewBaseAgent allocates an id from seq and returns a base ready to embed.
// The agent starts live, nowhere, at local time 0, and belongs to no world
// until a space operation places it.
func NewBaseAgent(seq *Identity) (BaseAgent, error) {
	id, err := seq.Next()
	if err != nil {
		return BaseAgent{}, fmt.Errorf("allocate agent id: %w", err)
	}
	return BaseAgent{id: id, live: true}, nil
}

// ID returns the agent id.
func (a *BaseAgent) ID() int64 { return a.id }

// Live reports whether the agent is alive.
func (a *BaseAgent) Live() bool { return a.live }

// Location returns the current position, possibly empty.
func (a *BaseAgent) Location() Position { return a.location }

// Time returns the local step counter.
func (a *BaseAgent) Time() int64 { return a.time }

// Tick advances the local clock by one and returns the new value. Behaviors
// shadowing Tick call this first, then apply their domain rules.
func (a *BaseAgent) Tick() int64 {
	a.time++
	return a.time
}

// String renders the agent for logs and test failures.
func (a *BaseAgent) String() string { return fmt.Sprintf("agent(%d)", a.id) }

func (a *BaseAgent) setLive(live bool) { a.live = live }

func (a *BaseAgent) setLocation(at Position) { a.location = at }
