package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netomics/bfs"
	"github.com/katalvlaran/netomics/edgelist"
	"github.com/katalvlaran/netomics/enrich"
	"github.com/katalvlaran/netomics/network"
	"github.com/katalvlaran/netomics/render"
	"github.com/katalvlaran/netomics/tabular"
)

// Input pins one input file by content hash.
type Input struct {
	Kind   string `yaml:"kind"`
	Path   string `yaml:"path"`
	BLAKE3 string `yaml:"blake3"`
}

// Report is the header shared by every workflow report.
type Report struct {
	RunID    string    `yaml:"run_id"`
	Workflow string    `yaml:"workflow"`
	Started  time.Time `yaml:"started"`
	Elapsed  string    `yaml:"elapsed"`
	Config   Config    `yaml:"config"`
	Inputs   []Input   `yaml:"inputs"`
}

func newReport(workflow string, cfg Config) Report {
	return Report{
		RunID:    uuid.NewString(),
		Workflow: workflow,
		Started:  time.Now().UTC(),
		Config:   cfg,
	}
}

// pin appends a checksummed input. Empty paths are skipped.
func (r *Report) pin(kind, path string) error {
	if path == "" {
		return nil
	}
	sum, err := tabular.Checksum(path)
	if err != nil {
		return err
	}
	r.Inputs = append(r.Inputs, Input{Kind: kind, Path: path, BLAKE3: sum})

	return nil
}

func (r *Report) finish() {
	r.Elapsed = time.Since(r.Started).Round(time.Millisecond).String()
}

// GraphSummary is the YAML view of network.Stats.
type GraphSummary struct {
	Nodes      int            `yaml:"nodes"`
	Edges      int            `yaml:"edges"`
	Activating int            `yaml:"activating"`
	Inhibitory int            `yaml:"inhibitory"`
	ByRole     map[string]int `yaml:"by_role"`
	Components int            `yaml:"components"`
	Largest    int            `yaml:"largest_component"`
}

func summarize(g *network.Graph) (GraphSummary, error) {
	st := g.Stats()
	s := GraphSummary{
		Nodes: st.Nodes, Edges: st.Edges,
		Activating: st.Activating, Inhibitory: st.Inhibitory,
		ByRole: make(map[string]int, len(st.ByRole)),
	}
	for role, n := range st.ByRole {
		s.ByRole[role.String()] = n
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return GraphSummary{}, err
	}
	s.Components = len(comps)
	if len(comps) > 0 {
		s.Largest = len(comps[0])
	}

	return s, nil
}

// EnrichmentReport is the result of the Enrichment workflow.
type EnrichmentReport struct {
	Report     `yaml:",inline"`
	SetsLoaded int             `yaml:"sets_loaded"`
	SetsKept   int             `yaml:"sets_kept"`
	Genes      int             `yaml:"ranked_genes"`
	Results    []enrich.Result `yaml:"results"`
	Map        GraphSummary    `yaml:"map"`

	// Graph is the enrichment map.
	Graph *network.Graph `yaml:"-"`
}

// PathSummary records a shortest-path query.
type PathSummary struct {
	From      string   `yaml:"from"`
	To        string   `yaml:"to"`
	Cost      string   `yaml:"cost_function"`
	Reachable bool     `yaml:"reachable"`
	Nodes     []string `yaml:"nodes,flow,omitempty"`
	Length    float64  `yaml:"length,omitempty"`
}

// NetworkReport is the result of the Network workflow.
type NetworkReport struct {
	Report     `yaml:",inline"`
	MatrixSize int             `yaml:"matrix_size"`
	Tested     int             `yaml:"tested_pairs"`
	Masked     int             `yaml:"masked_pairs"`
	Filtered   bool            `yaml:"lfdr_filtered"`
	Edges      []edgelist.Edge `yaml:"-"`
	Graph      *network.Graph  `yaml:"-"`
	Summary    GraphSummary    `yaml:"graph"`
	Path       *PathSummary    `yaml:"path,omitempty"`
}

// WriteYAML encodes v with two-space indentation.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("pipeline: encode report: %w", err)
	}

	return enc.Close()
}

// Outputs lists files written by WriteOutputs.
type Outputs struct {
	Graph  string
	Report string
}

// WriteOutputs writes <dir>/<name><ext> (graph in format) and
// <dir>/<name>.report.yaml, creating dir if needed.
func WriteOutputs(ctx context.Context, dir, name string, g *network.Graph, report any, format render.Format, opts ...render.DOTOption) (Outputs, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Outputs{}, fmt.Errorf("pipeline: output dir: %w", err)
	}
	out := Outputs{
		Graph:  filepath.Join(dir, name+format.Ext()),
		Report: filepath.Join(dir, name+".report.yaml"),
	}

	if err := writeFile(out.Graph, func(w io.Writer) error { return render.Write(w, g, format, opts...) }); err != nil {
		return Outputs{}, err
	}
	if err := writeFile(out.Report, func(w io.Writer) error { return WriteYAML(w, report) }); err != nil {
		return Outputs{}, err
	}
	Logger(ctx).Info("outputs written", slog.String("graph", out.Graph), slog.String("report", out.Report))

	return out, nil
}

func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err = fill(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("pipeline: write %s: %w", path, err)
	}

	return f.Close()
}
