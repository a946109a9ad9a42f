package space

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/hupe1980/agentscape/core"
)

// GraphOptions holds overrides passed to NewGraph.
type GraphOptions struct {
	// Rand supplies the draw behind RandomPosition. Defaults to a
	// time-seeded source; inject a seeded one for reproducible runs.
	Rand core.Rand
}

// Graph is an adjacency-list topology. A position here is the scalar id of
// the node an agent occupies; a fresh agent seats on its own id as a
// singleton node. Edges are recorded in both directions, so connections are
// effectively undirected, and the lists keep insertion order.
type Graph struct {
	core.BaseSpace
	adjacency map[int64][]int64
	rng       core.Rand
}

// NewGraph returns an empty graph.
func NewGraph(optFns ...func(o *GraphOptions)) *Graph {
	opts := GraphOptions{
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Graph{adjacency: make(map[int64][]int64), rng: opts.Rand}
}

// Nodes returns the ids currently present in the adjacency mapping,
// ascending.
func (g *Graph) Nodes() []int64 {
	ids := make([]int64, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Adjacent returns a copy of the adjacency list for id, or nil when the node
// has no entry.
func (g *Graph) Adjacent(id int64) []int64 {
	links, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	return slices.Clone(links)
}

// RandomPosition samples uniformly among the nodes present in the adjacency
// mapping; an empty topology yields the empty position. Keys are sorted
// before the draw so seeded sources reproduce.
func (g *Graph) RandomPosition() core.Position {
	if len(g.adjacency) == 0 {
		return core.Position{}
	}
	ids := g.Nodes()
	return core.ScalarPosition(ids[g.rng.Intn(len(ids))])
}

// Neighbors returns the live agents reachable from the subject's node within
// radius hops. The radius is truncated to whole hops and defaults to the
// number of nodes, an upper bound on any shortest path, so the omitted form
// is effectively unbounded. A radius of zero yields no neighbors. An agent
// subject is excluded from its own result by id.
func (g *Graph) Neighbors(subject core.Subject, radius ...float64) ([]core.Agent, error) {
	w := g.World()
	if w == nil {
		return nil, core.ErrSpaceNotBound
	}
	if subject.IsZero() {
		return nil, core.ErrInvalidSubjectType
	}
	center := subject.Position()
	if center.Kind() != core.PositionScalar {
		return nil, fmt.Errorf("%w: graph subjects resolve to scalar node ids, got %s", core.ErrInvalidSubjectType, center.Kind())
	}

	hops := len(g.adjacency)
	if len(radius) > 0 {
		hops = int(radius[0])
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
		if g.reachable(center.Scalar(), cand.ID(), hops) {
			out = append(out, cand)
		}
	}
	return out, nil
}

// reachable reports whether target shows up in the adjacency list of a node
// at most hops-1 edges away from from, i.e. whether target is within the hop
// budget. Breadth-first; nodes without an adjacency entry are dead ends.
func (g *Graph) reachable(from, target int64, hops int) bool {
	if hops <= 0 {
		return false
	}

	type visit struct {
		node  int64
		depth int
	}
	seen := map[int64]bool{from: true}
	queue := []visit{{node: from}}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		links, ok := g.adjacency[v.node]
		if !ok {
			continue
		}
		if slices.Contains(links, target) {
			return true
		}
		if v.depth+1 >= hops {
			continue
		}
		for _, next := range links {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, visit{node: next, depth: v.depth + 1})
			}
		}
	}
	return false
}

// Place seats the agent on its own id when the location is omitted and
// rejects non-scalar locations. The rewire runs in three steps: strip every
// edge still naming the agent, then either establish an empty entry (own
// id, a singleton node) or record the edge and its reciprocal, creating the
// target entry if absent. No stale edge survives a call.
func (g *Graph) Place(a core.Agent, at core.Position) (core.Position, error) {
	if at.IsEmpty() {
		at = core.ScalarPosition(a.ID())
	}
	if at.Kind() != core.PositionScalar {
		return core.Position{}, fmt.Errorf("%w: graph positions are scalar node ids, got %s", core.ErrInvalidPositionType, at.Kind())
	}

	id := a.ID()
	node := at.Scalar()

	for n, links := range g.adjacency {
		g.adjacency[n] = withoutID(links, id)
	}

	if node == id {
		g.adjacency[id] = []int64{}
		return at, nil
	}

	g.adjacency[id] = []int64{node}
	g.adjacency[node] = append(g.adjacency[node], id)
	return at, nil
}

func withoutID(links []int64, id int64) []int64 {
	out := links[:0]
	for _, l := range links {
		if l != id {
			out = append(out, l)
		}
	}
	return out
}
