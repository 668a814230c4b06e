package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/netomics/edgelist"
	"github.com/katalvlaran/netomics/network"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("render: unknown output format")

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
	FormatTSV  Format = "tsv"
)

// ParseFormat accepts "dot", "json" or "tsv" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDOT, FormatJSON, FormatTSV:
		return f, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// WriteEdgeTSV writes edges as a tab-separated table with header
// "source target weight sign".
func WriteEdgeTSV(w io.Writer, edges []edgelist.Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("source\ttarget\tweight\tsign\n"); err != nil {
		return err
	}
	for _, e := range edges {
		sign := network.Edge{Weight: e.Weight}.Sign()
		line := e.Source + "\t" + e.Target + "\t" + strconv.FormatFloat(e.Weight, 'g', -1, 64) + "\t" + sign.String() + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Write renders g in format f. DOT options are ignored by other formats.
func Write(w io.Writer, g *network.Graph, f Format, opts ...DOTOption) error {
	if g == nil {
		return ErrNilGraph
	}
	switch f {
	case FormatDOT:
		return WriteDOT(w, g, opts...)
	case FormatJSON:
		return WriteJSON(w, g)
	case FormatTSV:
		ges := g.Edges()
		edges := make([]edgelist.Edge, len(ges))
		for i, e := range ges {
			edges[i] = edgelist.Edge{Source: e.From, Target: e.To, Weight: e.Weight}
		}
		return WriteEdgeTSV(w, edges)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}
