package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentscape/core"
	"github.com/hupe1980/agentscape/space"
)

// Interface compliance (compile-time assertions)
var (
	_ core.Agent = (*RandomWalker)(nil)
	_ core.Agent = (*Drifter)(nil)
	_ core.Agent = (*Lifespan)(nil)
)

func newGrid(t *testing.T, width, height int, seed int64) (*core.World, *space.Grid) {
	t.Helper()
	g, err := space.NewGrid(width, height, func(o *space.GridOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	})
	require.NoError(t, err)
	w, err := core.NewWorld(g)
	require.NoError(t, err)
	return w, g
}

func newGraph(t *testing.T, seed int64) (*core.World, *space.Graph) {
	t.Helper()
	g := space.NewGraph(func(o *space.GraphOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	})
	w, err := core.NewWorld(g)
	require.NoError(t, err)
	return w, g
}

func TestRandomWalker_StaysInsideExtent(t *testing.T) {
	w, g := newGrid(t, 5, 5, 1)
	seq := core.NewIdentity()

	walker, err := NewRandomWalker(seq, g, func(o *RandomWalkerOptions) {
		o.Rand = rand.New(rand.NewSource(2))
	})
	require.NoError(t, err)
	require.NoError(t, core.AddAgent(g, walker, core.VectorPosition(0, 0)))

	for i := 0; i < 200; i++ {
		w.Tick()
		v := walker.Location().Vec()
		require.GreaterOrEqual(t, v.X, 0.0)
		require.LessOrEqual(t, v.X, 4.0)
		require.GreaterOrEqual(t, v.Y, 0.0)
		require.LessOrEqual(t, v.Y, 4.0)
	}
	assert.Equal(t, int64(200), walker.Time())
}

func TestRandomWalker_StepIsAtMostOnePerAxis(t *testing.T) {
	_, g := newGrid(t, 10, 10, 1)
	seq := core.NewIdentity()

	walker, err := NewRandomWalker(seq, g, func(o *RandomWalkerOptions) {
		o.Rand = rand.New(rand.NewSource(3))
	})
	require.NoError(t, err)
	require.NoError(t, core.AddAgent(g, walker, core.VectorPosition(5, 5)))

	for i := 0; i < 100; i++ {
		before := walker.Location().Vec()
		walker.Tick()
		after := walker.Location().Vec()
		assert.LessOrEqual(t, after.X-before.X, 1.0)
		assert.GreaterOrEqual(t, after.X-before.X, -1.0)
		assert.LessOrEqual(t, after.Y-before.Y, 1.0)
		assert.GreaterOrEqual(t, after.Y-before.Y, -1.0)
	}
}

func TestRandomWalker_DeadOnlyAdvancesClock(t *testing.T) {
	_, g := newGrid(t, 10, 10, 1)
	seq := core.NewIdentity()

	walker, err := NewRandomWalker(seq, g)
	require.NoError(t, err)
	require.NoError(t, core.AddAgent(g, walker, core.VectorPosition(5, 5)))
	require.NoError(t, core.KillAgent(g, walker))

	before := walker.Location()
	assert.Equal(t, int64(1), walker.Tick())
	assert.True(t, walker.Location().Equal(before))
}

func TestDrifter_LandsOnExistingNodes(t *testing.T) {
	w, g := newGraph(t, 1)
	seq := core.NewIdentity()

	anchor, err := core.NewBaseAgent(seq)
	require.NoError(t, err)
	require.NoError(t, core.AddAgent(g, &anchor))

	drifter, err := NewDrifter(seq, g)
	require.NoError(t, err)
	require.NoError(t, core.AddAgent(g, drifter))

	for i := 0; i < 50; i++ {
		w.Tick()
		loc := drifter.Location()
		require.Equal(t, core.PositionScalar, loc.Kind())
		require.Contains(t, g.Nodes(), loc.Scalar())
	}
}

func TestDrifter_ReciprocalEdgeAfterDrift(t *testing.T) {
	_, g := newGraph(t, 1)
	seq := core.NewIdentity()

	anchor, err := core.NewBaseAgent(seq)
	require.NoError(t, err)
	require.NoError(t, core.AddAgent(g, &anchor))

	drifter, err := NewDrifter(seq, g)
	require.NoError(t, err)
	require.NoError(t, core.AddAgent(g, drifter))

	require.NoError(t, core.MoveAgent(g, drifter, core.ScalarPosition(anchor.ID())))

	got, err := g.Neighbors(core.AgentSubject(&anchor), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, drifter.ID(), got[0].ID())
}

func TestLifespan_DiesAtTTL(t *testing.T) {
	w, g := newGrid(t, 10, 10, 1)
	seq := core.NewIdentity()

	a, err := NewLifespan(seq, g, 3)
	require.NoError(t, err)
	require.NoError(t, core.AddAgent(g, a))

	w.Tick()
	w.Tick()
	assert.True(t, a.Live())

	w.Tick()
	assert.False(t, a.Live())

	// Dead but still registered and still ticking.
	w.Tick()
	_, ok := w.Agent(a.ID())
	assert.True(t, ok)
	assert.Equal(t, int64(4), a.Time())
}

func TestNewLifespan_RejectsNonPositiveTTL(t *testing.T) {
	seq := core.NewIdentity()
	_, g := newGrid(t, 5, 5, 1)

	_, err := NewLifespan(seq, g, 0)
	assert.Error(t, err)
}
