package agent

import (
	"fmt"

	"github.com/hupe1980/agentscape/core"
	"github.com/hupe1980/agentscape/logging"
)

// LifespanOptions holds overrides passed to NewLifespan.
type LifespanOptions struct {
	// Logger receives kill failures. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Lifespan self-terminates once its local time reaches the TTL: on that tick
// it asks its space to kill it, so it stays registered but drops out of
// neighbor queries. Works on any topology.
type Lifespan struct {
	core.BaseAgent
	space  core.Space
	ttl    int64
	logger logging.Logger
}

// NewLifespan allocates an id from seq and returns an agent that dies after
// ttl ticks on s. The TTL must be positive.
func NewLifespan(seq *core.Identity, s core.Space, ttl int64, optFns ...func(o *LifespanOptions)) (*Lifespan, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("lifespan ttl must be positive, got %d", ttl)
	}

	opts := LifespanOptions{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	base, err := core.NewBaseAgent(seq)
	if err != nil {
		return nil, err
	}

	return &Lifespan{BaseAgent: base, space: s, ttl: ttl, logger: opts.Logger}, nil
}

// TTL returns the configured time to live.
func (a *Lifespan) TTL() int64 { return a.ttl }

// Tick advances the clock and dies once it reaches the TTL.
func (a *Lifespan) Tick() int64 {
	t := a.BaseAgent.Tick()
	if a.Live() && t >= a.ttl {
		if err := core.KillAgent(a.space, a); err != nil {
			a.logger.Warn("lifespan kill failed", "agent_id", a.ID(), "error", err)
		}
	}
	return t
}
