package space

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/hupe1980/agentscape/core"
)

// GridOptions holds overrides passed to NewGrid.
type GridOptions struct {
	// Rand supplies the uniform draws behind RandomPosition. Defaults to a
	// time-seeded source; inject a seeded one for reproducible runs.
	Rand core.Rand
}

// Grid is a bounded two-dimensional area. Positions are vectors with
// 0 <= x < width and 0 <= y < height; agents may share positions, there is
// no collision rule. Neighbor search is a linear scan by Euclidean distance,
// which is fine at the population sizes this library targets.
type Grid struct {
	core.BaseSpace
	width  int
	height int
	rng    core.Rand
}

// NewGrid returns a grid with the given extent. Both dimensions must be
// positive.
func NewGrid(width, height int, optFns ...func(o *GridOptions)) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid extent must be positive, got %dx%d", width, height)
	}

	opts := GridOptions{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Grid{width: width, height: height, rng: opts.Rand}, nil
}

// Width returns the horizontal extent.
func (g *Grid) Width() int { return g.width }

// Height returns the vertical extent.
func (g *Grid) Height() int { return g.height }

// RandomPosition draws each axis independently and uniformly on the integer
// lattice inside the extent.
func (g *Grid) RandomPosition() core.Position {
	return core.VectorPosition(
		float64(g.rng.Intn(g.width)),
		float64(g.rng.Intn(g.height)),
	)
}

// Neighbors returns the live agents whose Euclidean distance from the
// subject is at most radius, boundary inclusive. The radius defaults to
// max(width, height), which covers the whole grid. An agent subject is
// excluded from its own result by id.
func (g *Grid) Neighbors(subject core.Subject, radius ...float64) ([]core.Agent, error) {
	w := g.World()
	if w == nil {
		return nil, core.ErrSpaceNotBound
	}
	if subject.IsZero() {
		return nil, core.ErrInvalidSubjectType
	}
	center := subject.Position()
	if center.Kind() != core.PositionVector {
		return nil, fmt.Errorf("%w: grid subjects resolve to vector positions, got %s", core.ErrInvalidSubjectType, center.Kind())
	}

	r := float64(max(g.width, g.height))
	if len(radius) > 0 {
		r = radius[0]
	}

	subAgent, isAgent := subject.Agent()
	var out []core.Agent
	for _, cand := range w.Agents() {
		if isAgent && cand.ID() == subAgent.ID() {
			continue
		}
		if !cand.Live() {
			continue
		}
		loc := cand.Location()
		if loc.Kind() != core.PositionVector {
			continue
		}
		if r2.Norm(r2.Sub(loc.Vec(), center.Vec())) <= r {
			out = append(out, cand)
		}
	}
	return out, nil
}

// Place substitutes a fresh random position when the location is omitted and
// rejects non-vector locations. Out-of-extent vectors are accepted, matching
// the permissive base behavior; RandomPosition is the only in-bounds
// guarantee the grid gives.
func (g *Grid) Place(_ core.Agent, at core.Position) (core.Position, error) {
	if at.IsEmpty() {
		at = g.RandomPosition()
	}
	if at.Kind() != core.PositionVector {
		return core.Position{}, fmt.Errorf("%w: grid positions are vectors, got %s", core.ErrInvalidPositionType, at.Kind())
	}
	return at, nil
}
