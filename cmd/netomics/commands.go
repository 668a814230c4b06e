package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netomics/geneset"
	"github.com/katalvlaran/netomics/network"
	"github.com/katalvlaran/netomics/pipeline"
	"github.com/katalvlaran/netomics/render"
)

func workflowContext(cmd *cobra.Command) context.Context {
	return pipeline.WithLogger(cmd.Context(), slog.Default())
}

func count(n int) string { return humanize.Comma(int64(n)) }

func runSets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err = cfg.Bounds.Validate(); err != nil {
		return err
	}
	sets, err := geneset.LoadGlob(args[0])
	if err != nil {
		return err
	}
	kept := geneset.FilterBounds(sets, cfg.Bounds)

	out := cmd.OutOrStdout()
	for _, s := range kept {
		fmt.Fprintf(out, "%s\t%d\n", s.Name, s.Size())
	}
	fmt.Fprintf(out, "kept %s of %s sets (%d < size < %d)\n",
		count(len(kept)), count(len(sets)), cfg.Bounds.Lower, cfg.Bounds.Upper)

	return nil
}

func runEnrich(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	engine, err := pipeline.EngineFor(cfg)
	if err != nil {
		return err
	}

	ctx := workflowContext(cmd)
	rep, err := pipeline.Enrichment(ctx, cfg, engine)
	if err != nil {
		return err
	}
	files, err := pipeline.WriteOutputs(ctx, cfg.Output, "enrichment_map", rep.Graph, rep, format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "gene sets:   %s loaded, %s kept\n", count(rep.SetsLoaded), count(rep.SetsKept))
	fmt.Fprintf(out, "ranked:      %s genes\n", count(rep.Genes))
	fmt.Fprintf(out, "significant: %s results\n", count(len(rep.Results)))
	fmt.Fprintf(out, "map:         %s nodes, %s edges\n", count(rep.Map.Nodes), count(rep.Map.Edges))
	fmt.Fprintf(out, "wrote %s and %s\n", files.Graph, files.Report)

	return nil
}

func runNetwork(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	ctx := workflowContext(cmd)
	rep, err := pipeline.Network(ctx, cfg, pipeline.EstimatorFor(cfg))
	if err != nil {
		return err
	}
	files, err := pipeline.WriteOutputs(ctx, cfg.Output, "network", rep.Graph, rep, format,
		render.WithHighlight(rep.PathNodes()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "matrix:  %s nodes, %s pairs tested\n", count(rep.MatrixSize), count(rep.Tested))
	if rep.Filtered {
		fmt.Fprintf(out, "masked:  %s pairs (lfdr >= %g)\n", count(rep.Masked), cfg.LFDRCutoff)
	}
	fmt.Fprintf(out, "network: %s nodes, %s edges (%s activating, %s inhibitory)\n",
		count(rep.Summary.Nodes), count(rep.Summary.Edges),
		count(rep.Summary.Activating), count(rep.Summary.Inhibitory))
	fmt.Fprintf(out, "         %s components, largest %s nodes\n",
		count(rep.Summary.Components), count(rep.Summary.Largest))
	if rep.Path != nil {
		printPath(cmd, rep)
	}
	fmt.Fprintf(out, "wrote %s and %s\n", files.Graph, files.Report)

	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Path.From, cfg.Path.To = args[0], args[1]

	rep, err := pipeline.Network(workflowContext(cmd), cfg, pipeline.EstimatorFor(cfg))
	if err != nil {
		return err
	}
	printPath(cmd, rep)

	return nil
}

// printPath writes the path as "A -[w]- B -[w]- C" with its total cost.
func printPath(cmd *cobra.Command, rep *pipeline.NetworkReport) {
	out := cmd.OutOrStdout()
	p := rep.Path
	if !p.Reachable {
		fmt.Fprintf(out, "no path from %s to %s\n", p.From, p.To)
		return
	}

	var sb strings.Builder
	sb.WriteString(p.Nodes[0])
	for i := 1; i < len(p.Nodes); i++ {
		e, _ := rep.Graph.EdgeBetween(p.Nodes[i-1], p.Nodes[i])
		fmt.Fprintf(&sb, " -[%s]- %s", signed(e), p.Nodes[i])
	}
	fmt.Fprintf(out, "path:    %s\n", sb.String())
	fmt.Fprintf(out, "cost:    %g (%s, %d hops)\n", p.Length, p.Cost, len(p.Nodes)-1)
}

func signed(e network.Edge) string {
	return fmt.Sprintf("%+.3g", e.Weight)
}

func runShorten(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range args {
		fmt.Fprintln(out, geneset.ShortName(name, delimiter))
	}

	return nil
}
