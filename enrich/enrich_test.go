package enrich_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netomics/enrich"
	"github.com/katalvlaran/netomics/geneset"
	"github.com/katalvlaran/netomics/network"
	"github.com/katalvlaran/netomics/tabular"
)

const table = "ID\tDescription\tsetSize\tenrichmentScore\tNES\tpvalue\tp.adjust\tcore_enrichment\n" +
	"LEPTIN%NETPATH%LEPTIN\tleptin\t5\t0.71\t1.9\t0.001\t0.01\tLEP/LEPR/JAK2\n" +
	"IL6%NETPATH%IL6\til6\t4\t0.66\t1.7\t0.004\t0.02\tJAK2/STAT3/IL6\n" +
	"BIG\tbig\t200\t0.5\t1.2\t0.01\t0.04\tA/B\n" +
	"WEAK\tweak\t4\t0.2\t0.8\t0.3\t0.6\tLEP\n"

func collection() geneset.Collection {
	return geneset.Collection{
		{Name: "LEPTIN%NETPATH%LEPTIN", Genes: []string{"LEP", "LEPR", "JAK2", "SOCS3", "STAT3"}},
		{Name: "IL6%NETPATH%IL6", Genes: []string{"IL6", "JAK2", "STAT3", "GP130"}},
		{Name: "WEAK", Genes: []string{"LEP", "X", "Y", "Z"}},
	}
}

func ranks() map[string]float64 {
	return map[string]float64{"LEP": 3, "LEPR": 2.5, "JAK2": 2, "STAT3": 1.5, "IL6": 1, "A": 0.1}
}

func TestReadResults(t *testing.T) {
	rs, err := enrich.ReadResults(strings.NewReader(table), "gsea.tsv")
	require.NoError(t, err)
	require.Len(t, rs, 4)

	r := rs[0]
	assert.Equal(t, "LEPTIN%NETPATH%LEPTIN", r.ID)
	assert.Equal(t, "leptin", r.Description)
	assert.Equal(t, 5, r.Size)
	assert.Equal(t, 1.9, r.NES)
	assert.Equal(t, 0.001, r.PValue)
	assert.Equal(t, []string{"LEP", "LEPR", "JAK2"}, r.LeadingEdge)
}

func TestReadResults_Errors(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		sentinel error
	}{
		{"missing column", "ID\tNES\nA\t1\n", tabular.ErrMissingColumn},
		{"bad size", "ID\tsetSize\tenrichmentScore\tNES\tpvalue\tp.adjust\nA\tmany\t1\t1\t0.1\t0.1\n", tabular.ErrNotNumeric},
		{"NA pvalue", "ID\tsetSize\tenrichmentScore\tNES\tpvalue\tp.adjust\nA\t3\t1\t1\tNA\t0.1\n", tabular.ErrNotNumeric},
		{"duplicate", "ID\tsetSize\tenrichmentScore\tNES\tpvalue\tp.adjust\nA\t3\t1\t1\t0.1\t0.1\nA\t3\t1\t1\t0.1\t0.1\n", enrich.ErrDuplicateResult},
		{"mixed width", "ID\tsetSize\tenrichmentScore\tNES\tpvalue\tp.adjust\nA\t3\t1\t1\t0.1\t0.1\nr2\tB\t3\t1\t1\t0.1\t0.1\n", tabular.ErrColumnCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := enrich.ReadResults(strings.NewReader(tc.in), "gsea.tsv")
			require.ErrorIs(t, err, tc.sentinel)
			require.ErrorIs(t, err, tabular.ErrParse)
		})
	}
}

func TestTableEngine_Run(t *testing.T) {
	rs, err := enrich.ReadResults(strings.NewReader(table), "gsea.tsv")
	require.NoError(t, err)
	eng := &enrich.TableEngine{Results: rs}

	out, err := eng.Run(context.Background(), ranks(), collection(), enrich.DefaultParams())
	require.NoError(t, err)
	ids := make([]string, len(out))
	for i, r := range out {
		ids[i] = r.ID
	}
	// BIG is not in the collection, WEAK fails the cutoff.
	assert.Equal(t, []string{"LEPTIN%NETPATH%LEPTIN", "IL6%NETPATH%IL6"}, ids)
	assert.Equal(t, 4, out[1].Size)
	assert.Equal(t, []string{"JAK2", "STAT3", "IL6"}, out[1].LeadingEdge)
}

func TestTableEngine_Validation(t *testing.T) {
	eng := &enrich.TableEngine{}
	ctx := context.Background()

	p := enrich.DefaultParams()
	p.Permutations = 0
	_, err := eng.Run(ctx, ranks(), collection(), p)
	require.ErrorIs(t, err, enrich.ErrBadParams)

	p = enrich.DefaultParams()
	p.PValueCutoff = 1.5
	_, err = eng.Run(ctx, ranks(), collection(), p)
	require.ErrorIs(t, err, enrich.ErrBadParams)

	p = enrich.DefaultParams()
	p.Bounds = geneset.Bounds{Lower: 10, Upper: 2}
	_, err = eng.Run(ctx, ranks(), collection(), p)
	require.ErrorIs(t, err, geneset.ErrRange)

	_, err = eng.Run(ctx, nil, collection(), enrich.DefaultParams())
	require.ErrorIs(t, err, enrich.ErrEmptyRanking)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = eng.Run(cctx, ranks(), collection(), enrich.DefaultParams())
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewTableEngine(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gsea.tsv")
	require.NoError(t, os.WriteFile(p, []byte(table), 0o644))
	eng, err := enrich.NewTableEngine(p)
	require.NoError(t, err)
	assert.Len(t, eng.Results, 4)

	_, err = enrich.NewTableEngine(filepath.Join(t.TempDir(), "none.tsv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMap(t *testing.T) {
	results := []enrich.Result{
		{ID: "B%X", PValue: 0.02, Size: 4, LeadingEdge: []string{"JAK2", "STAT3", "IL6"}},
		{ID: "A%X", PValue: 0.01, Size: 5, NES: 1.9, LeadingEdge: []string{"LEP", "LEPR", "JAK2"}},
		{ID: "C", PValue: 0.03, Size: 3, LeadingEdge: []string{"Q"}},
	}

	g, err := enrich.Map(results)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())

	e, ok := g.EdgeBetween("A%X", "B%X")
	require.True(t, ok)
	assert.InDelta(t, 0.2, e.Weight, 1e-12) // |{JAK2}| / 5
	assert.Equal(t, "A%X", e.From, "more significant result added first")

	n, err := g.Node("A%X")
	require.NoError(t, err)
	assert.Equal(t, "A", n.Label)
	assert.Equal(t, network.RoleGeneSet, n.Role)
	assert.Equal(t, 1.9, n.Metadata["nes"])

	g, err = enrich.Map(results, enrich.WithMinSimilarity(0.3))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())

	g, err = enrich.Map(results, enrich.WithMinSimilarity(0.3), enrich.WithSimilarity(geneset.Overlap))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount(), "overlap = 1/3")

	g, err = enrich.Map(results, enrich.WithShowCategory(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A%X", "B%X"}, g.NodeIDs())
	assert.Equal(t, "B%X", results[0].ID, "input order untouched")

	_, err = enrich.Map(results, enrich.WithMinSimilarity(1.5))
	require.ErrorIs(t, err, enrich.ErrBadSimilarity)
}
