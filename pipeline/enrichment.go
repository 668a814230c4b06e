package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netomics/enrich"
	"github.com/katalvlaran/netomics/geneset"
	"github.com/katalvlaran/netomics/ranking"
)

// Enrichment runs the gene-set enrichment workflow with engine.
//
// Stages:
//  1. Validate the configuration.
//  2. Load every gene-set file matched by cfg.GeneSets and keep the sets
//     strictly inside cfg.Bounds.
//  3. Load the ranked gene list.
//  4. Run the engine and build the enrichment map.
func Enrichment(ctx context.Context, cfg Config, engine enrich.Engine) (*EnrichmentReport, error) {
	log := Logger(ctx).With(slog.String("workflow", "enrichment"))

	// Stage 1
	if err := cfg.ValidateEnrichment(); err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, ErrNoEngine
	}
	sim, err := cfg.similarity()
	if err != nil {
		return nil, err
	}
	rep := &EnrichmentReport{Report: newReport("enrichment", cfg)}

	// Stage 2
	paths, err := geneset.Glob(cfg.GeneSets)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if err = rep.pin("genesets", p); err != nil {
			return nil, err
		}
	}
	sets, err := geneset.LoadGlob(cfg.GeneSets)
	if err != nil {
		return nil, err
	}
	kept := geneset.FilterBounds(sets, cfg.Bounds)
	rep.SetsLoaded, rep.SetsKept = len(sets), len(kept)
	log.Info("gene sets filtered",
		slog.Int("files", len(paths)),
		slog.Int("loaded", rep.SetsLoaded),
		slog.Int("kept", rep.SetsKept),
		slog.Int("lower", cfg.Bounds.Lower),
		slog.Int("upper", cfg.Bounds.Upper))

	// Stage 3
	if err = rep.pin("ranking", cfg.Ranking); err != nil {
		return nil, err
	}
	rk, err := ranking.Load(cfg.Ranking)
	if err != nil {
		return nil, err
	}
	rep.Genes = rk.Len()
	log.Debug("ranking loaded", slog.Int("genes", rep.Genes))

	// Stage 4
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if err = rep.pin("results", cfg.Results); err != nil {
		return nil, err
	}
	rep.Results, err = engine.Run(ctx, rk.Map(), kept, cfg.Params())
	if err != nil {
		return nil, fmt.Errorf("pipeline: enrichment engine: %w", err)
	}
	rep.Graph, err = enrich.Map(rep.Results,
		enrich.WithMinSimilarity(cfg.Map.MinSimilarity),
		enrich.WithShowCategory(cfg.Map.ShowCategory),
		enrich.WithSimilarity(sim))
	if err != nil {
		return nil, err
	}
	if rep.Map, err = summarize(rep.Graph); err != nil {
		return nil, err
	}
	rep.finish()
	log.Info("enrichment done",
		slog.Int("significant", len(rep.Results)),
		slog.Int("map_nodes", rep.Map.Nodes),
		slog.Int("map_edges", rep.Map.Edges))

	return rep, nil
}
