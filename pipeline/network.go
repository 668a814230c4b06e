package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netomics/dijkstra"
	"github.com/katalvlaran/netomics/edgelist"
	"github.com/katalvlaran/netomics/matrix"
	"github.com/katalvlaran/netomics/network"
	"github.com/katalvlaran/netomics/signif"
)

// Network runs the perturbation-network workflow. A nil estimator skips the
// significance mask and extracts edges from the raw matrix.
//
// Stages:
//  1. Validate the configuration and load the labeled matrix.
//  2. Estimate local FDR over the strict upper triangle and mask entries
//     with lfdr ≥ cfg.LFDRCutoff.
//  3. Extract the top-|w| edges.
//  4. Classify nodes from the role table and build the graph.
//  5. Answer the optional shortest-path query.
func Network(ctx context.Context, cfg Config, estimator signif.Estimator) (*NetworkReport, error) {
	log := Logger(ctx).With(slog.String("workflow", "network"))

	// Stage 1
	if err := cfg.ValidateNetwork(); err != nil {
		return nil, err
	}
	rep := &NetworkReport{Report: newReport("network", cfg)}
	if err := rep.pin("matrix", cfg.Matrix); err != nil {
		return nil, err
	}
	lm, err := matrix.LoadLabeled(cfg.Matrix)
	if err != nil {
		return nil, err
	}
	rep.MatrixSize = lm.Size()
	rep.Tested = matrix.TriangleLen(lm.Size())
	log.Info("matrix loaded", slog.Int("nodes", rep.MatrixSize), slog.Int("pairs", rep.Tested))

	// Stage 2
	if estimator != nil {
		if err = rep.pin("lfdr", cfg.LFDR); err != nil {
			return nil, err
		}
		lm, rep.Masked, err = mask(ctx, lm, estimator, cfg.LFDRCutoff)
		if err != nil {
			return nil, err
		}
		rep.Filtered = true
		log.Info("significance mask applied",
			slog.Float64("cutoff", cfg.LFDRCutoff),
			slog.Int("masked", rep.Masked))
	} else {
		log.Warn("no local-FDR estimator configured; using raw matrix")
	}

	// Stage 3
	rep.Edges, err = edgelist.Extract(lm, edgelist.WithTop(cfg.Top), edgelist.WithTolerance(cfg.Tolerance))
	if err != nil {
		return nil, err
	}

	// Stage 4
	var cls network.Classifier
	if cfg.Roles != "" {
		if err = rep.pin("roles", cfg.Roles); err != nil {
			return nil, err
		}
		tbl, err := network.LoadRoles(cfg.Roles)
		if err != nil {
			return nil, err
		}
		cls = tbl.Classifier()
	}
	rep.Graph, err = edgelist.Build(rep.Edges, cls, network.WithName("network"))
	if err != nil {
		return nil, err
	}
	if rep.Summary, err = summarize(rep.Graph); err != nil {
		return nil, err
	}
	log.Info("network built",
		slog.Int("nodes", rep.Summary.Nodes),
		slog.Int("edges", rep.Summary.Edges),
		slog.Int("inhibitory", rep.Summary.Inhibitory),
		slog.Int("components", rep.Summary.Components))

	// Stage 5
	if cfg.Path.Enabled() {
		if rep.Path, err = shortestPath(rep.Graph, lm, cfg.Path); err != nil {
			return nil, err
		}
		log.Info("path query",
			slog.String("from", cfg.Path.From),
			slog.String("to", cfg.Path.To),
			slog.Bool("reachable", rep.Path.Reachable),
			slog.Int("hops", max(len(rep.Path.Nodes)-1, 0)))
	}
	rep.finish()

	return rep, nil
}

// mask applies the local-FDR filter and counts non-zero pairs it zeroed.
func mask(ctx context.Context, lm *matrix.Labeled, est signif.Estimator, cutoff float64) (*matrix.Labeled, int, error) {
	values, err := matrix.UpperTriangle(lm.Dense())
	if err != nil {
		return nil, 0, err
	}
	lfdr, err := est.LocalFDR(ctx, values)
	if err != nil {
		return nil, 0, fmt.Errorf("pipeline: local FDR: %w", err)
	}
	out, err := signif.FilterUpper(lm, lfdr, cutoff)
	if err != nil {
		return nil, 0, err
	}
	after, err := matrix.UpperTriangle(out.Dense())
	if err != nil {
		return nil, 0, err
	}
	masked := 0
	for k := range values {
		if values[k] != 0 && after[k] == 0 {
			masked++
		}
	}

	return out, masked, nil
}

// shortestPath runs the configured query. Endpoints must name matrix nodes.
// An endpoint that lost all its edges, or a target in another component,
// is reported as unreachable rather than returned as an error.
func shortestPath(g *network.Graph, lm *matrix.Labeled, pc PathConfig) (*PathSummary, error) {
	for _, id := range [2]string{pc.From, pc.To} {
		if _, ok := lm.Index(id); !ok {
			return nil, fmt.Errorf("path endpoint %q: %w", id, dijkstra.ErrVertexNotFound)
		}
	}
	cost, ok := dijkstra.CostByName(pc.Cost)
	if !ok {
		return nil, fmt.Errorf("path.cost=%q: %w", pc.Cost, ErrBadConfig)
	}
	sum := &PathSummary{From: pc.From, To: pc.To, Cost: pc.Cost}
	if sum.Cost == "" {
		sum.Cost = "hop"
	}
	if !g.HasNode(pc.From) || !g.HasNode(pc.To) {
		return sum, nil
	}

	p, err := dijkstra.ShortestPath(g, pc.From, pc.To, dijkstra.WithCost(cost))
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		return sum, nil
	case err != nil:
		return nil, err
	}
	sum.Reachable = true
	sum.Nodes = p.Nodes
	sum.Length = p.Cost

	return sum, nil
}

// PathNodes returns the highlighted node sequence of r, or nil.
func (r *NetworkReport) PathNodes() []string {
	if r.Path == nil || !r.Path.Reachable {
		return nil
	}

	return r.Path.Nodes
}
