package network

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Name returns the display name of the graph.
func (g *Graph) Name() string { return g.name }

// AddNode inserts a node with the given role, or returns nil if the node
// already exists with the same role.
//
// Steps:
//  1. Reject empty IDs.
//  2. Lock for writing.
//  3. Existing node: same role is a no-op, another role is ErrRoleConflict.
//  4. Otherwise create the node and its empty adjacency bucket.
//
// Complexity: O(1).
func (g *Graph) AddNode(id string, role Role) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(&Node{ID: id, Label: id, Role: role})
}

// AddNodeWith inserts n as given (Label defaults to ID, Metadata is copied).
// Same existence rules as AddNode.
func (g *Graph) AddNodeWith(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if n.Label == "" {
		n.Label = n.ID
	}
	n.Metadata = copyMeta(n.Metadata)

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(&n)
}

func (g *Graph) addNodeLocked(n *Node) error {
	if cur, ok := g.nodes[n.ID]; ok {
		if cur.Role != n.Role {
			return fmt.Errorf("%q is %s, not %s: %w", n.ID, cur.Role, n.Role, ErrRoleConflict)
		}

		return nil
	}
	g.nodes[n.ID] = n
	g.adjacency[n.ID] = make(map[string]*Edge)

	return nil
}

// AddEdge connects from and to with weight and returns the new edge ID.
// Both endpoints must already exist.
//
// Steps:
//  1. Validate IDs, loop and weight (finite).
//  2. Lock for writing; verify both endpoints exist.
//  3. Reject a second edge for the unordered pair.
//  4. Assign "e<N>" and index the edge in both adjacency buckets.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if from == to {
		return "", fmt.Errorf("%q: %w", from, ErrLoopNotAllowed)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%s-%s: %w", from, to, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range [2]string{from, to} {
		if _, ok := g.nodes[id]; !ok {
			return "", fmt.Errorf("%q: %w", id, ErrNodeNotFound)
		}
	}
	key := keyOf(from, to)
	if _, dup := g.byPair[key]; dup {
		return "", fmt.Errorf("%s-%s: %w", from, to, ErrDuplicateEdge)
	}

	g.nextEdge++
	e := &Edge{ID: "e" + strconv.FormatUint(g.nextEdge, 10), From: from, To: to, Weight: weight}
	g.edges = append(g.edges, e)
	g.byPair[key] = e
	g.adjacency[from][to] = e
	g.adjacency[to][from] = e

	return e.ID, nil
}

// HasNode reports whether id exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether u and v are connected (in either order).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.byPair[keyOf(u, v)]

	return ok
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%q: %w", id, ErrNodeNotFound)
	}
	cp := *n
	cp.Metadata = copyMeta(n.Metadata)

	return cp, nil
}

// EdgeBetween returns the edge joining u and v.
func (g *Graph) EdgeBetween(u, v string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.byPair[keyOf(u, v)]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// Nodes returns copies of all nodes sorted by ID.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		cp := *n
		cp.Metadata = copyMeta(n.Metadata)
		out = append(out, cp)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns all node IDs sorted ascending.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// Neighbors returns the edges incident to id, sorted by neighbor ID.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	adj, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%q: %w", id, ErrNodeNotFound)
	}
	out := make([]Edge, 0, len(adj))
	for _, e := range adj {
		out = append(out, *e)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%q: %w", id, ErrNodeNotFound)
	}

	return len(adj), nil
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Stats returns a snapshot of node and edge counts by role and sign.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges), ByRole: make(map[Role]int)}
	for _, n := range g.nodes {
		s.ByRole[n.Role]++
	}
	for _, e := range g.edges {
		switch e.Sign() {
		case Activating:
			s.Activating++
		case Inhibitory:
			s.Inhibitory++
		}
	}

	return s
}

func copyMeta(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	cp := make(map[string]float64, len(m))
	for k, v := range m {
		cp[k] = v
	}

	return cp
}
