package render

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/netomics/network"
)

// cyNodeData is the "data" object of a Cytoscape node element.
type cyNodeData struct {
	ID       string             `json:"id"`
	Label    string             `json:"label"`
	Role     string             `json:"role"`
	Metadata map[string]float64 `json:"metadata,omitempty"`
}

// cyEdgeData is the "data" object of a Cytoscape edge element.
type cyEdgeData struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
	Sign   string  `json:"sign"`
}

type cyNode struct {
	Data cyNodeData `json:"data"`
}

type cyEdge struct {
	Data cyEdgeData `json:"data"`
}

type cyDocument struct {
	Name     string `json:"name"`
	Elements struct {
		Nodes []cyNode `json:"nodes"`
		Edges []cyEdge `json:"edges"`
	} `json:"elements"`
}

// WriteJSON writes g in the Cytoscape.js "elements" JSON layout, indented.
func WriteJSON(w io.Writer, g *network.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	var doc cyDocument
	doc.Name = g.Name()
	doc.Elements.Nodes = make([]cyNode, 0, g.NodeCount())
	doc.Elements.Edges = make([]cyEdge, 0, g.EdgeCount())
	for _, n := range g.Nodes() {
		doc.Elements.Nodes = append(doc.Elements.Nodes, cyNode{Data: cyNodeData{
			ID: n.ID, Label: n.Label, Role: n.Role.String(), Metadata: n.Metadata,
		}})
	}
	for _, e := range g.Edges() {
		doc.Elements.Edges = append(doc.Elements.Edges, cyEdge{Data: cyEdgeData{
			ID: e.ID, Source: e.From, Target: e.To, Weight: e.Weight, Sign: e.Sign().String(),
		}})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
