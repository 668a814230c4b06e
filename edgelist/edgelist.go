// Package edgelist turns a labeled, symmetric correlation matrix into a
// bounded list of weighted edges and assembles those edges into a
// role-annotated network.
//
// Algorithm (Extract):
//
//	Stage 1 (Validate): matrix non-nil, square, symmetric within tolerance.
//	Stage 2 (Scan):     strict upper triangle (i<j) row by row; exact zeros
//	                    are "no edge" and skipped.
//	Stage 3 (Rank):     stable sort by descending |weight|; ties keep scan
//	                    order.
//	Stage 4 (Cap):      keep the first n when a cap n > 0 is set.
//
// Guarantees: no self-loops, no unordered pair twice, len(out) ≤ n, and the
// smallest retained |weight| is ≥ every dropped candidate's |weight|.
//
// Errors:
//
//	matrix.ErrNilMatrix          - nil matrix.
//	matrix.ErrShape (family)     - not symmetric within tolerance.
//	ErrBadTolerance              - tolerance is negative or NaN.
package edgelist

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/netomics/matrix"
	"github.com/katalvlaran/netomics/network"
)

// DefaultTolerance is the symmetry tolerance used when none is configured.
const DefaultTolerance = 1e-9

// ErrBadTolerance indicates a negative or NaN symmetry tolerance.
var ErrBadTolerance = errors.New("edgelist: tolerance must be a non-negative number")

// Edge is one retained matrix entry: (row node, column node, signed weight).
type Edge struct {
	Source string
	Target string
	Weight float64
}

// Options configures Extract.
type Options struct {
	// Top caps the number of edges; 0 keeps every non-zero candidate.
	Top int

	// Tolerance bounds |M[i][j] - M[j][i]| for the symmetry check.
	Tolerance float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options{Top: 0, Tolerance: DefaultTolerance}.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// WithTop caps the output at n edges. Values ≤ 0 disable the cap.
func WithTop(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Top = n
	}
}

// WithTolerance sets the symmetry tolerance. Validation happens in Extract.
func WithTolerance(eps float64) Option {
	return func(o *Options) { o.Tolerance = eps }
}

// candidate is a scanned non-zero cell with its scan position.
type candidate struct {
	i, j int
	w    float64
}

// Extract converts lm into a top-|weight| edge list.
//
// Complexity: O(n²) scan + O(k log k) sort over k non-zero candidates.
func Extract(lm *matrix.Labeled, opts ...Option) ([]Edge, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.Tolerance) || o.Tolerance < 0 {
		return nil, fmt.Errorf("edgelist: %v: %w", o.Tolerance, ErrBadTolerance)
	}
	if lm == nil {
		return nil, fmt.Errorf("edgelist: %w", matrix.ErrNilMatrix)
	}

	// Stage 1: symmetry (square and labels are guaranteed by Labeled).
	m := lm.Dense()
	if err := matrix.ValidateSymmetric(m, o.Tolerance); err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}

	// Stage 2: strict upper triangle scan.
	var cands []candidate
	m.Do(func(i, j int, v float64) bool {
		if j > i && v != 0 {
			cands = append(cands, candidate{i: i, j: j, w: v})
		}

		return true
	})

	// Stage 3: stable rank by magnitude.
	sort.SliceStable(cands, func(a, b int) bool {
		return math.Abs(cands[a].w) > math.Abs(cands[b].w)
	})

	// Stage 4: cap.
	if o.Top > 0 && o.Top < len(cands) {
		cands = cands[:o.Top]
	}

	out := make([]Edge, len(cands))
	for k, c := range cands {
		out[k] = Edge{Source: lm.Name(c.i), Target: lm.Name(c.j), Weight: c.w}
	}

	return out, nil
}

// Nodes returns every node name referenced by edges, in first-seen order.
func Nodes(edges []Edge) []string {
	seen := make(map[string]struct{}, 2*len(edges))
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	for _, e := range edges {
		add(e.Source)
		add(e.Target)
	}

	return out
}

// Roles classifies every node referenced by edges with network.Classify.
// The result depends only on the arguments.
func Roles(edges []Edge, phenotypes, activities network.NameSet) map[string]network.Role {
	names := Nodes(edges)
	out := make(map[string]network.Role, len(names))
	for _, name := range names {
		out[name] = network.Classify(name, phenotypes, activities)
	}

	return out
}

// Build assembles a graph from edges, assigning each node the role returned
// by classify. A nil classify treats every node as a protein.
func Build(edges []Edge, classify network.Classifier, gopts ...network.GraphOption) (*network.Graph, error) {
	if classify == nil {
		classify = func(string) network.Role { return network.RoleProtein }
	}

	g := network.NewGraph(gopts...)
	for _, name := range Nodes(edges) {
		if err := g.AddNode(name, classify(name)); err != nil {
			return nil, fmt.Errorf("edgelist: build: %w", err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.Source, e.Target, e.Weight); err != nil {
			return nil, fmt.Errorf("edgelist: build: %w", err)
		}
	}

	return g, nil
}
