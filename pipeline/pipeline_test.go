package pipeline_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netomics/dijkstra"
	"github.com/katalvlaran/netomics/enrich"
	"github.com/katalvlaran/netomics/geneset"
	"github.com/katalvlaran/netomics/matrix"
	"github.com/katalvlaran/netomics/network"
	"github.com/katalvlaran/netomics/pipeline"
	"github.com/katalvlaran/netomics/render"
	"github.com/katalvlaran/netomics/signif"
)

// write creates name under dir with content and returns its path.
func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	return p
}

func quietCtx() context.Context {
	return pipeline.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ------------------------------------------------------------------------
// Network workflow
// ------------------------------------------------------------------------

const pcor = "node\terlotinib\tEGFR\tERK\tviability\n" +
	"erlotinib\t1\t-0.8\t0.1\t-0.05\n" +
	"EGFR\t-0.8\t1\t0.6\t0\n" +
	"ERK\t0.1\t0.6\t1\t0.7\n" +
	"viability\t-0.05\t0\t0.7\t1\n"

// upper triangle order: (erl,EGFR) (erl,ERK) (erl,via) (EGFR,ERK) (EGFR,via) (ERK,via)
const lfdr = "0.01\n0.5\n0.1\n0.02\n0.9\n0.03\n"

const roles = "name\ttype\nviability\t2\nerlotinib\t3\n"

func networkConfig(t *testing.T) pipeline.Config {
	dir := t.TempDir()
	cfg := pipeline.DefaultConfig()
	cfg.Matrix = write(t, dir, "pcor.tsv", pcor)
	cfg.LFDR = write(t, dir, "lfdr.txt", lfdr)
	cfg.Roles = write(t, dir, "roles.tsv", roles)
	cfg.Output = filepath.Join(dir, "out")

	return cfg
}

func TestNetwork_EndToEnd(t *testing.T) {
	cfg := networkConfig(t)
	cfg.Path = pipeline.PathConfig{From: "erlotinib", To: "viability", Cost: "strength"}

	rep, err := pipeline.Network(quietCtx(), cfg, pipeline.EstimatorFor(cfg))
	require.NoError(t, err)

	assert.Equal(t, 4, rep.MatrixSize)
	assert.Equal(t, 6, rep.Tested)
	assert.True(t, rep.Filtered)
	assert.Equal(t, 1, rep.Masked, "erlotinib-ERK (lfdr 0.5) zeroed")
	assert.Len(t, rep.Edges, 4)
	assert.Equal(t, "erlotinib", rep.Edges[0].Source)
	assert.Equal(t, -0.8, rep.Edges[0].Weight)

	n, err := rep.Graph.Node("viability")
	require.NoError(t, err)
	assert.Equal(t, network.RolePhenotype, n.Role)
	assert.Equal(t, 1, rep.Summary.ByRole["activity"])
	assert.Equal(t, 1, rep.Summary.Components)
	assert.Equal(t, 4, rep.Summary.Largest)

	require.NotNil(t, rep.Path)
	assert.True(t, rep.Path.Reachable)
	assert.Equal(t, []string{"erlotinib", "EGFR", "ERK", "viability"}, rep.PathNodes())
	assert.NotEmpty(t, rep.RunID)
	require.Len(t, rep.Inputs, 3)
	assert.Len(t, rep.Inputs[0].BLAKE3, 64)
}

func TestNetwork_TopAndNoEstimator(t *testing.T) {
	cfg := networkConfig(t)
	cfg.Top = 2

	rep, err := pipeline.Network(quietCtx(), cfg, nil)
	require.NoError(t, err)
	assert.False(t, rep.Filtered)
	require.Len(t, rep.Edges, 2)
	assert.Equal(t, -0.8, rep.Edges[0].Weight)
	assert.Equal(t, 0.7, rep.Edges[1].Weight)
}

func TestNetwork_UnreachablePath(t *testing.T) {
	cfg := networkConfig(t)
	cfg.Top = 1
	cfg.Path = pipeline.PathConfig{From: "erlotinib", To: "viability"}

	rep, err := pipeline.Network(quietCtx(), cfg, pipeline.EstimatorFor(cfg))
	require.NoError(t, err)
	require.NotNil(t, rep.Path)
	assert.False(t, rep.Path.Reachable)
	assert.Nil(t, rep.PathNodes())

	cfg.Path.To = "nobody"
	_, err = pipeline.Network(quietCtx(), cfg, pipeline.EstimatorFor(cfg))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestNetwork_Errors(t *testing.T) {
	cfg := networkConfig(t)

	bad := cfg
	bad.Matrix = ""
	_, err := pipeline.Network(quietCtx(), bad, nil)
	require.ErrorIs(t, err, pipeline.ErrMissingInput)

	bad = cfg
	bad.Path = pipeline.PathConfig{From: "A"}
	_, err = pipeline.Network(quietCtx(), bad, nil)
	require.ErrorIs(t, err, pipeline.ErrBadConfig)

	bad = cfg
	bad.Format = "png"
	_, err = pipeline.Network(quietCtx(), bad, nil)
	require.ErrorIs(t, err, render.ErrUnknownFormat)

	_, err = pipeline.Network(quietCtx(), cfg, signif.Fixed{0.1})
	require.ErrorIs(t, err, matrix.ErrShape)

	asym := cfg
	asym.Matrix = write(t, t.TempDir(), "asym.tsv", "A\tB\nA\t1\t0.5\nB\t0.4\t1\n")
	_, err = pipeline.Network(quietCtx(), asym, nil)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestWriteOutputs(t *testing.T) {
	cfg := networkConfig(t)
	rep, err := pipeline.Network(quietCtx(), cfg, pipeline.EstimatorFor(cfg))
	require.NoError(t, err)

	out, err := pipeline.WriteOutputs(quietCtx(), cfg.Output, "network", rep.Graph, rep, render.FormatDOT)
	require.NoError(t, err)

	dot, err := os.ReadFile(out.Graph)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dot), `graph "network" {`))

	raw, err := os.ReadFile(out.Report)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	assert.Equal(t, rep.RunID, doc["run_id"])
	assert.Equal(t, "network", doc["workflow"])
	assert.Equal(t, 4, doc["matrix_size"])
	assert.Contains(t, doc, "inputs")
	assert.NotContains(t, doc, "Graph")
}

// ------------------------------------------------------------------------
// Enrichment workflow
// ------------------------------------------------------------------------

const gmt = "LEPTIN%NETPATH%LEPTIN\tleptin\tLEP\tLEPR\tJAK2\tSOCS3\tSTAT3\n" +
	"IL6%NETPATH%IL6\til6\tIL6\tJAK2\tSTAT3\tGP130\n" +
	"TINY\ttiny\tA\tB\n"

const rnk = "gene\trank\nLEP\t3\nLEPR\t2.5\nJAK2\t2\nSTAT3\t1.5\nIL6\t1\n"

const results = "ID\tsetSize\tenrichmentScore\tNES\tpvalue\tp.adjust\tcore_enrichment\n" +
	"IL6%NETPATH%IL6\t4\t0.66\t1.7\t0.004\t0.02\tJAK2/STAT3/IL6\n" +
	"LEPTIN%NETPATH%LEPTIN\t5\t0.71\t1.9\t0.001\t0.01\tLEP/LEPR/JAK2\n" +
	"TINY\t2\t0.9\t2.1\t0.0001\t0.001\tA/B\n"

func enrichmentConfig(t *testing.T) pipeline.Config {
	dir := t.TempDir()
	cfg := pipeline.DefaultConfig()
	write(t, dir, "sets/netpath.gmt", gmt)
	cfg.GeneSets = filepath.Join(dir, "sets", "*.gmt")
	cfg.Ranking = write(t, dir, "ranks.rnk", rnk)
	cfg.Results = write(t, dir, "gsea.tsv", results)
	cfg.Output = filepath.Join(dir, "out")

	return cfg
}

func TestEnrichment_EndToEnd(t *testing.T) {
	cfg := enrichmentConfig(t)
	eng, err := pipeline.EngineFor(cfg)
	require.NoError(t, err)

	rep, err := pipeline.Enrichment(quietCtx(), cfg, eng)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.SetsLoaded)
	assert.Equal(t, 2, rep.SetsKept, "TINY is below the lower bound")
	assert.Equal(t, 5, rep.Genes)
	require.Len(t, rep.Results, 2)
	assert.Equal(t, "LEPTIN%NETPATH%LEPTIN", rep.Results[0].ID, "ordered by p-value")
	assert.Equal(t, 2, rep.Map.Nodes)
	assert.Equal(t, 1, rep.Map.Edges)
	assert.Equal(t, 1, rep.Map.Components)
	require.Len(t, rep.Inputs, 3)

	n, err := rep.Graph.Node("IL6%NETPATH%IL6")
	require.NoError(t, err)
	assert.Equal(t, "IL6", n.Label)

	var buf bytes.Buffer
	require.NoError(t, pipeline.WriteYAML(&buf, rep))
	assert.Contains(t, buf.String(), "sets_kept: 2")
	assert.Contains(t, buf.String(), "leading_edge: [LEP, LEPR, JAK2]")
}

func TestEnrichment_Errors(t *testing.T) {
	cfg := enrichmentConfig(t)
	eng := &enrich.TableEngine{}

	_, err := pipeline.Enrichment(quietCtx(), cfg, nil)
	require.ErrorIs(t, err, pipeline.ErrNoEngine)

	bad := cfg
	bad.Bounds = geneset.Bounds{Lower: 5, Upper: 5}
	_, err = pipeline.Enrichment(quietCtx(), bad, eng)
	require.ErrorIs(t, err, geneset.ErrRange)

	bad = cfg
	bad.GeneSets = filepath.Join(t.TempDir(), "*.gmt")
	_, err = pipeline.Enrichment(quietCtx(), bad, eng)
	require.ErrorIs(t, err, geneset.ErrNoFiles)

	bad = cfg
	bad.Map.Similarity = "cosine"
	_, err = pipeline.Enrichment(quietCtx(), bad, eng)
	require.ErrorIs(t, err, pipeline.ErrBadConfig)

	bad = cfg
	bad.Results = ""
	_, err = pipeline.EngineFor(bad)
	require.ErrorIs(t, err, pipeline.ErrNoEngine)
}
