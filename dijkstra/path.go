package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netomics/network"
)

// Path is one shortest route through a network.
type Path struct {
	// Nodes lists the visited node IDs from source to target inclusive.
	Nodes []string

	// Edges lists the traversed edges; len(Edges) == len(Nodes)-1.
	Edges []network.Edge

	// Cost is the summed edge cost under the chosen CostFunc.
	Cost float64
}

// Len returns the number of hops.
func (p Path) Len() int { return len(p.Edges) }

// ShortestPath returns one shortest path from → to. Source and ReturnPath in
// opts are overridden; Cost and MaxDistance apply as in Dijkstra.
//
// Errors: everything Dijkstra returns, ErrVertexNotFound for a missing
// target, ErrNoPath when the target is not reached.
// Complexity: O((V + E) log V).
func ShortestPath(g *network.Graph, from, to string, opts ...Option) (Path, error) {
	all := append(append([]Option(nil), opts...), Source(from), WithReturnPath())
	dist, prev, err := Dijkstra(g, all...)
	if err != nil {
		return Path{}, err
	}
	if !g.HasNode(to) {
		return Path{}, fmt.Errorf("%q: %w", to, ErrVertexNotFound)
	}
	if math.IsInf(dist[to], 1) {
		return Path{}, fmt.Errorf("%s → %s: %w", from, to, ErrNoPath)
	}

	// Walk predecessors back to the source, then reverse.
	nodes := []string{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		nodes = append(nodes, cur)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	edges := make([]network.Edge, 0, len(nodes)-1)
	for k := 1; k < len(nodes); k++ {
		e, ok := g.EdgeBetween(nodes[k-1], nodes[k])
		if !ok {
			return Path{}, fmt.Errorf("dijkstra: edge %s-%s vanished: %w", nodes[k-1], nodes[k], network.ErrNodeNotFound)
		}
		edges = append(edges, e)
	}

	return Path{Nodes: nodes, Edges: edges, Cost: dist[to]}, nil
}
