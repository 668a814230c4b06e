// Package network defines the explicit graph object every workflow renders
// and queries: an undirected, weighted, role-annotated network of named
// nodes.
//
// Edges carry a signed float64 weight. The sign is display metadata
// (negative = inhibitory, positive = activating); the graph itself is
// undirected, so AddEdge("A","B") and AddEdge("B","A") denote the same
// unordered pair. Self-loops and parallel edges are rejected.
//
// All methods are safe for concurrent use. Read methods return copies or
// deterministically ordered snapshots (nodes by ID, edges by insertion).
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrRoleConflict    - node re-added with a different role.
//	ErrLoopNotAllowed  - edge endpoints are identical.
//	ErrDuplicateEdge   - the unordered pair already has an edge.
//	ErrBadWeight       - weight is NaN or ±Inf.
//	ErrUnknownRole     - role text is not a known code or name.
//	ErrDuplicateNode   - node-role table lists a name twice.
package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrEmptyNodeID indicates that a node ID is empty.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrRoleConflict indicates a node re-added with a different role.
	ErrRoleConflict = errors.New("network: node already exists with another role")

	// ErrLoopNotAllowed indicates a self-loop.
	ErrLoopNotAllowed = errors.New("network: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge for the same unordered pair.
	ErrDuplicateEdge = errors.New("network: edge already exists for node pair")

	// ErrBadWeight indicates a NaN or infinite weight.
	ErrBadWeight = errors.New("network: weight must be finite")

	// ErrUnknownRole indicates an unrecognized role code or name.
	ErrUnknownRole = errors.New("network: unknown node role")

	// ErrDuplicateNode indicates a node listed twice in a role table.
	ErrDuplicateNode = errors.New("network: duplicate node name")
)

// Node is a named vertex with a role.
type Node struct {
	// ID uniquely identifies the node.
	ID string

	// Label is the display text; defaults to ID.
	Label string

	// Role drives rendering (shape/colour) and is reported in exports.
	Role Role

	// Metadata stores numeric annotations (e.g. "pvalue", "size" on
	// enrichment-map nodes). Copied on read.
	Metadata map[string]float64
}

// Sign is the direction-of-effect annotation of an edge.
type Sign int

const (
	// Inhibitory marks a negative weight.
	Inhibitory Sign = -1
	// Neutral marks a zero weight.
	Neutral Sign = 0
	// Activating marks a positive weight.
	Activating Sign = 1
)

// String returns "inhibitory", "neutral" or "activating".
func (s Sign) String() string {
	switch {
	case s < 0:
		return "inhibitory"
	case s > 0:
		return "activating"
	default:
		return "neutral"
	}
}

// Edge connects two nodes. From/To keep the order the edge was added in
// (row node, column node for extracted edges) but carry no direction.
type Edge struct {
	ID     string
	From   string
	To     string
	Weight float64
}

// Sign returns the sign of the weight.
func (e Edge) Sign() Sign {
	switch {
	case e.Weight < 0:
		return Inhibitory
	case e.Weight > 0:
		return Activating
	default:
		return Neutral
	}
}

// Other returns the endpoint opposite id.
func (e Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// pairKey is the unordered endpoint pair {min,max}.
type pairKey struct{ a, b string }

func keyOf(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}

	return pairKey{u, v}
}

// Graph is an undirected, weighted, role-annotated network.
type Graph struct {
	mu sync.RWMutex

	name      string
	nextEdge  uint64
	nodes     map[string]*Node
	edges     []*Edge                     // insertion order
	byPair    map[pairKey]*Edge           // unordered pair → edge
	adjacency map[string]map[string]*Edge // node → neighbor → edge
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithName sets a display name used by renderers (e.g. the DOT graph id).
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		name:      "network",
		nodes:     make(map[string]*Node),
		byPair:    make(map[pairKey]*Edge),
		adjacency: make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Nodes      int
	Edges      int
	ByRole     map[Role]int
	Activating int
	Inhibitory int
}
