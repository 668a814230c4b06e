// Package render writes a network.Graph in formats other tools draw or load:
// Graphviz DOT, Cytoscape JSON and a flat edge TSV.
//
// Every renderer takes the graph explicitly and writes to the given
// io.Writer; nothing is drawn to an implicit device. Output order is
// deterministic: nodes by ID, edges by insertion.
//
// Styling (DOT):
//
//	protein    ellipse, blue fill
//	phenotype  box, orange fill
//	activity   diamond, green fill
//	geneset    ellipse, red fill, size-scaled
//	edge       red when activating, blue + dashed when inhibitory,
//	           pen width 1 + 4·|w|
package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/katalvlaran/netomics/network"
)

// ErrNilGraph indicates a nil graph.
var ErrNilGraph = errors.New("render: graph is nil")

// nodeStyle is the DOT appearance of one role.
type nodeStyle struct {
	shape, fill string
}

var roleStyles = map[network.Role]nodeStyle{
	network.RoleProtein:   {"ellipse", "#9ecae1"},
	network.RolePhenotype: {"box", "#fdae6b"},
	network.RoleActivity:  {"diamond", "#a1d99b"},
	network.RoleGeneSet:   {"ellipse", "#fcbba1"},
}

const (
	colorActivating = "#d62728"
	colorInhibitory = "#1f77b4"
	colorNeutral    = "#7f7f7f"
	colorHighlight  = "#ff7f0e"
)

var (
	nodeTmpl = fasttemplate.New(
		`  {{id}} [label={{label}}, shape={{shape}}, style=filled, fillcolor="{{fill}}"{{extra}}];`+"\n", "{{", "}}")
	edgeTmpl = fasttemplate.New(
		`  {{from}} -- {{to}} [label="{{weight}}", color="{{color}}", penwidth={{pen}}, style={{style}}];`+"\n", "{{", "}}")
)

// DOTOptions configures WriteDOT.
type DOTOptions struct {
	// Highlight lists node IDs along a path; consecutive pairs mark edges.
	Highlight []string

	// EdgeLabels prints the weight on every edge.
	EdgeLabels bool
}

// DOTOption mutates DOTOptions.
type DOTOption func(*DOTOptions)

// WithHighlight emphasizes the nodes of path and the edges between
// consecutive path nodes.
func WithHighlight(path []string) DOTOption {
	return func(o *DOTOptions) { o.Highlight = append([]string(nil), path...) }
}

// WithEdgeLabels prints edge weights.
func WithEdgeLabels() DOTOption {
	return func(o *DOTOptions) { o.EdgeLabels = true }
}

// WriteDOT renders g as an undirected Graphviz graph.
// Complexity: O(V log V + E).
func WriteDOT(w io.Writer, g *network.Graph, opts ...DOTOption) error {
	if g == nil {
		return ErrNilGraph
	}
	var o DOTOptions
	for _, opt := range opts {
		opt(&o)
	}

	onPath := make(map[string]bool, len(o.Highlight))
	for _, id := range o.Highlight {
		onPath[id] = true
	}
	pathEdge := make(map[[2]string]bool, len(o.Highlight))
	for k := 1; k < len(o.Highlight); k++ {
		pathEdge[pairOf(o.Highlight[k-1], o.Highlight[k])] = true
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "graph %s {\n", quote(g.Name()))
	sb.WriteString("  graph [overlap=false, splines=true];\n")
	sb.WriteString("  node [fontname=\"Helvetica\"];\n")

	for _, n := range g.Nodes() {
		st, ok := roleStyles[n.Role]
		if !ok {
			st = nodeStyle{"ellipse", "#ffffff"}
		}
		extra := ""
		if n.Role == network.RoleGeneSet {
			if size, ok := n.Metadata["size"]; ok && size > 0 {
				extra += ", width=" + fmtFloat(0.5+math.Log10(size)/2)
			}
		}
		if onPath[n.ID] {
			extra += `, penwidth=3, color="` + colorHighlight + `"`
		}
		nodeTmpl.ExecuteFunc(&sb, func(tw io.Writer, tag string) (int, error) {
			switch tag {
			case "id":
				return io.WriteString(tw, quote(n.ID))
			case "label":
				return io.WriteString(tw, quote(n.Label))
			case "shape":
				return io.WriteString(tw, st.shape)
			case "fill":
				return io.WriteString(tw, st.fill)
			case "extra":
				return io.WriteString(tw, extra)
			}
			return 0, nil
		})
	}

	for _, e := range g.Edges() {
		color, style := colorNeutral, "solid"
		switch e.Sign() {
		case network.Activating:
			color = colorActivating
		case network.Inhibitory:
			color, style = colorInhibitory, "dashed"
		}
		pen := 1 + 4*math.Abs(e.Weight)
		if pathEdge[pairOf(e.From, e.To)] {
			color, pen = colorHighlight, pen+2
		}
		label := ""
		if o.EdgeLabels {
			label = fmtFloat(e.Weight)
		}
		edgeTmpl.ExecuteFunc(&sb, func(tw io.Writer, tag string) (int, error) {
			switch tag {
			case "from":
				return io.WriteString(tw, quote(e.From))
			case "to":
				return io.WriteString(tw, quote(e.To))
			case "weight":
				return io.WriteString(tw, label)
			case "color":
				return io.WriteString(tw, color)
			case "pen":
				return io.WriteString(tw, fmtFloat(pen))
			case "style":
				return io.WriteString(tw, style)
			}
			return 0, nil
		})
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

// quote returns s as a DOT double-quoted ID.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func pairOf(u, v string) [2]string {
	if v < u {
		u, v = v, u
	}

	return [2]string{u, v}
}
