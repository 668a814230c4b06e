package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netomics/bfs"
	"github.com/katalvlaran/netomics/network"
)

// signed builds A-B(+) B-C(-) C-D(+) A-D(+) plus an isolated pair X-Y.
func signed(t *testing.T) *network.Graph {
	t.Helper()
	g := network.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "X", "Y"} {
		require.NoError(t, g.AddNode(id, network.RoleProtein))
	}
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 0.5}, {"B", "C", -0.4}, {"C", "D", 0.3}, {"A", "D", 0.2}, {"X", "Y", 0.9}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := signed(t)
	_, err = bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestBFS_OrderAndDepth(t *testing.T) {
	res, err := bfs.BFS(signed(t), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.False(t, res.Reached("X"))

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	_, err = res.PathTo("X")
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_MaxDepthAndSign(t *testing.T) {
	g := signed(t)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, res.Order)

	res, err = bfs.BFS(g, "A", bfs.WithSign(network.Activating))
	require.NoError(t, err)
	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C"}, path, "inhibitory B-C is not followed")

	res, err = bfs.BFS(g, "B", bfs.WithSign(network.Inhibitory))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, res.Order)
}

func TestComponents(t *testing.T) {
	comps, err := bfs.Components(signed(t))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "D"}, {"X", "Y"}}, comps)

	empty, err := bfs.Components(network.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
