// Package bfs provides breadth-first search over a network.Graph: hop
// distances, parent links, visit order and connected components.
//
// Neighbors are expanded in the sorted order network.Graph.Neighbors
// returns, so traversals are deterministic. WithSign restricts a search to
// activating or inhibitory edges.
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netomics/network"
)

type queueItem struct {
	id    string
	depth int
}

type walker struct {
	graph   *network.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartNotFound, ErrOptionViolation, a context error,
// or the wrapped error of an OnVisit hook.
func BFS(g *network.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%q: %w", start, ErrStartNotFound)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) expand(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, e := range edges {
		if !w.opts.Follow(item.id, e) {
			continue
		}
		if nbr := e.Other(item.id); !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}

	return nil
}

// Components returns the connected components of g, each sorted by node ID,
// ordered by descending size with ties broken by first node ID.
//
// Complexity: O(V + E log E) for the sorted neighbor scans.
func Components(g *network.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.NodeCount())
	var comps [][]string
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		for _, v := range comp {
			seen[v] = true
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}
	sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })

	return comps, nil
}
