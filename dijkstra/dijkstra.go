package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/netomics/network"
)

// Dijkstra computes shortest distances from Options.Source to every node of
// the undirected network g, using Options.Cost as the edge length.
//
// Returns:
//
//   - dist: node ID → minimum cost (+Inf if unreachable or beyond MaxDistance).
//   - prev: predecessor map if ReturnPath is set (nil otherwise).
//     prev[v] == u means one shortest path to v ends with u→v.
//     For the source and unreachable nodes prev[v] == "".
//   - err:  validation failure or a negative cost.
//
// Preconditions and validation (in order):
//  1. Source non-empty (ErrEmptySource).
//  2. g non-nil (ErrNilGraph).
//  3. g contains Source (ErrVertexNotFound).
//  4. Cost(e) ≥ 0 for every edge (ErrNegativeWeight).
//
// Equal distances are settled in ascending node ID order, so the result is
// deterministic for a fixed graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *network.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) Build options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%q: %w", cfg.Source, ErrVertexNotFound)
	}

	// 3) Pre-compute costs once and fail fast on negative values.
	edges := g.Edges()
	cost := make(map[string]float64, len(edges))
	var c float64
	for _, e := range edges {
		c = cfg.Cost(e)
		if c < 0 || math.IsNaN(c) {
			return nil, nil, fmt.Errorf("%w: edge %s-%s cost=%g", ErrNegativeWeight, e.From, e.To, c)
		}
		cost[e.ID] = c
	}

	// 4) Run.
	ids := g.NodeIDs()
	r := &runner{
		g:       g,
		options: cfg,
		cost:    cost,
		dist:    make(map[string]float64, len(ids)),
		visited: make(map[string]bool, len(ids)),
		pq:      make(nodePQ, 0, len(ids)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(ids))
	}
	r.init(ids)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *network.Graph
	options Options
	cost    map[string]float64 // edge ID → cost
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist[v] = +Inf for all v, dist[Source] = 0, and seeds the heap.
func (r *runner) init(ids []string) {
	for _, v := range ids {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process settles nodes in increasing distance until the heap is empty or
// the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of the settled node u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	var v string
	var nd float64
	for _, e := range neighbors {
		v = e.Other(u)
		if r.visited[v] {
			continue
		}
		c := r.cost[e.ID]
		if math.IsInf(c, 1) {
			continue // impassable
		}
		nd = r.dist[u] + c
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry: a node and a tentative distance.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id), used with the
// lazy decrease-key strategy: stale entries are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
