package agent

import (
	"math/rand"
	"time"

	"github.com/hupe1980/agentscape/core"
	"github.com/hupe1980/agentscape/logging"
	"github.com/hupe1980/agentscape/space"
)

// RandomWalkerOptions holds overrides passed to NewRandomWalker.
type RandomWalkerOptions struct {
	// Rand supplies the step draws. Defaults to a time-seeded source.
	Rand core.Rand

	// Logger receives move failures. Defaults to NoOpLogger.
	Logger logging.Logger
}

// RandomWalker walks one lattice step in a uniformly drawn direction per
// tick, staying inside the grid extent. Each axis moves by -1, 0 or +1
// independently, so diagonal steps and staying put are both possible. Dead
// walkers only advance their clock.
type RandomWalker struct {
	core.BaseAgent
	grid   *space.Grid
	rng    core.Rand
	logger logging.Logger
}

// NewRandomWalker allocates an id from seq and returns a walker on grid.
func NewRandomWalker(seq *core.Identity, grid *space.Grid, optFns ...func(o *RandomWalkerOptions)) (*RandomWalker, error) {
	opts := RandomWalkerOptions{
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	base, err := core.NewBaseAgent(seq)
	if err != nil {
		return nil, err
	}

	return &RandomWalker{BaseAgent: base, grid: grid, rng: opts.Rand, logger: opts.Logger}, nil
}

// Tick advances the clock, then takes one clamped random step. Walkers not
// yet placed on the grid (empty location) stay put until a space operation
// seats them.
func (a *RandomWalker) Tick() int64 {
	t := a.BaseAgent.Tick()
	if !a.Live() {
		return t
	}

	loc := a.Location()
	if loc.Kind() != core.PositionVector {
		return t
	}

	v := loc.Vec()
	x := clamp(v.X+float64(a.rng.Intn(3)-1), 0, float64(a.grid.Width()-1))
	y := clamp(v.Y+float64(a.rng.Intn(3)-1), 0, float64(a.grid.Height()-1))

	if err := core.MoveAgent(a.grid, a, core.VectorPosition(x, y)); err != nil {
		a.logger.Warn("walker move failed", "agent_id", a.ID(), "error", err)
	}

	return t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
