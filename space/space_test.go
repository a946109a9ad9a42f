package space

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentscape/core"
)

// Interface compliance (compile-time assertions)
var (
	_ core.Space = (*Grid)(nil)
	_ core.Space = (*Graph)(nil)
)

func newGridWorld(t *testing.T, width, height int) (*core.World, *Grid) {
	t.Helper()
	g, err := NewGrid(width, height, func(o *GridOptions) {
		o.Rand = rand.New(rand.NewSource(1))
	})
	require.NoError(t, err)
	w, err := core.NewWorld(g)
	require.NoError(t, err)
	return w, g
}

func newGraphWorld(t *testing.T) (*core.World, *Graph) {
	t.Helper()
	g := NewGraph(func(o *GraphOptions) {
		o.Rand = rand.New(rand.NewSource(1))
	})
	w, err := core.NewWorld(g)
	require.NoError(t, err)
	return w, g
}

// addAgent constructs a base agent and places it; an omitted position lets
// the topology choose.
func addAgent(t *testing.T, s core.Space, seq *core.Identity, at ...core.Position) *core.BaseAgent {
	t.Helper()
	a, err := core.NewBaseAgent(seq)
	require.NoError(t, err)
	require.NoError(t, core.AddAgent(s, &a, at...))
	return &a
}

func agentIDs(agents []core.Agent) []int64 {
	ids := make([]int64, 0, len(agents))
	for _, a := range agents {
		ids = append(ids, a.ID())
	}
	return ids
}
