// Package dijkstra_test contains unit tests for distances and path queries.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netomics/dijkstra"
	"github.com/katalvlaran/netomics/network"
)

type wedge struct {
	u, v string
	w    float64
}

// build returns a protein-only graph with the given edges.
func build(t *testing.T, edges ...wedge) *network.Graph {
	t.Helper()
	g := network.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddNode(e.u, network.RoleProtein))
		require.NoError(t, g.AddNode(e.v, network.RoleProtein))
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := build(t, wedge{"A", "B", 0.5})

	_, _, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource, "empty source has priority")

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeCost(t *testing.T) {
	g := build(t, wedge{"A", "B", -0.5})
	raw := func(e network.Edge) float64 { return e.Weight }

	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithCost(raw))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	// the built-in costs never go negative on signed weights
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithCost(dijkstra.StrengthCost))
	require.NoError(t, err)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN())(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithCost(nil)(&dijkstra.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestDijkstra_HopCost(t *testing.T) {
	// A-B-C-D chain plus an A-D shortcut.
	g := build(t,
		wedge{"A", "B", 0.9}, wedge{"B", "C", 0.9}, wedge{"C", "D", 0.9},
		wedge{"A", "D", -0.1},
	)
	require.NoError(t, g.AddNode("Z", network.RolePhenotype))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, 0.0, dist["A"])
	assert.Equal(t, 1.0, dist["D"])
	assert.Equal(t, 2.0, dist["C"])
	assert.True(t, math.IsInf(dist["Z"], 1))
}

func TestDijkstra_StrengthCost(t *testing.T) {
	g := build(t,
		wedge{"A", "B", 0.9}, wedge{"B", "C", 0.9}, wedge{"C", "D", 0.9},
		wedge{"A", "D", -0.1},
	)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"),
		dijkstra.WithCost(dijkstra.StrengthCost), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.InDelta(t, 0.3, dist["D"], 1e-12, "three strong edges beat one weak one")
	assert.Equal(t, "C", prev["D"])
	assert.Equal(t, "", prev["A"])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := build(t, wedge{"A", "B", 1}, wedge{"B", "C", 1}, wedge{"C", "D", 1})

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["C"])
	assert.True(t, math.IsInf(dist["D"], 1))
}

func TestDijkstra_ImpassableEdge(t *testing.T) {
	g := build(t, wedge{"A", "B", 0.1}, wedge{"B", "C", 0.5})
	wall := func(e network.Edge) float64 {
		if math.Abs(e.Weight) < 0.2 {
			return math.Inf(1)
		}
		return 1
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithCost(wall))
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["B"], 1))
}

// ------------------------------------------------------------------------
// 3. ShortestPath
// ------------------------------------------------------------------------

func TestShortestPath(t *testing.T) {
	g := build(t,
		wedge{"erlotinib", "EGFR", -0.8},
		wedge{"EGFR", "ERK", 0.6},
		wedge{"ERK", "viability", 0.7},
		wedge{"erlotinib", "viability", -0.05},
	)

	p, err := dijkstra.ShortestPath(g, "erlotinib", "viability")
	require.NoError(t, err)
	assert.Equal(t, []string{"erlotinib", "viability"}, p.Nodes)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 1.0, p.Cost)

	p, err = dijkstra.ShortestPath(g, "erlotinib", "viability", dijkstra.WithCost(dijkstra.StrengthCost))
	require.NoError(t, err)
	assert.Equal(t, []string{"erlotinib", "EGFR", "ERK", "viability"}, p.Nodes)
	require.Len(t, p.Edges, 3)
	assert.Equal(t, network.Inhibitory, p.Edges[0].Sign())
	assert.InDelta(t, 0.2+0.4+0.3, p.Cost, 1e-12)

	self, err := dijkstra.ShortestPath(g, "EGFR", "EGFR")
	require.NoError(t, err)
	assert.Equal(t, []string{"EGFR"}, self.Nodes)
	assert.Zero(t, self.Cost)
}

func TestShortestPath_Errors(t *testing.T) {
	g := build(t, wedge{"A", "B", 0.5}, wedge{"C", "D", 0.5})

	_, err := dijkstra.ShortestPath(g, "A", "D")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, err = dijkstra.ShortestPath(g, "A", "Q")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.ShortestPath(g, "Q", "A")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestShortestPath_DeterministicTies(t *testing.T) {
	// Diamond: two equal-cost routes A-B-D and A-C-D.
	g := build(t, wedge{"A", "C", 1}, wedge{"C", "D", 1}, wedge{"A", "B", 1}, wedge{"B", "D", 1})

	first, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, first.Nodes, "lower ID settled first")
	for i := 0; i < 10; i++ {
		again, err := dijkstra.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		require.Equal(t, first.Nodes, again.Nodes)
	}
}
