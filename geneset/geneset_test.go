package geneset_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netomics/geneset"
	"github.com/katalvlaran/netomics/tabular"
)

// genes returns n synthetic identifiers with the given prefix.
func genes(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return out
}

func TestFilter_KeepsOnlyStrictlyInside(t *testing.T) {
	c := geneset.Collection{
		{Name: "A", Genes: genes("a", 2)},
		{Name: "B", Genes: genes("b", 5)},
		{Name: "C", Genes: genes("c", 150)},
	}
	out := geneset.Filter(c, 3, 100)
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].Name)
}

func TestFilter_BoundsAreExclusive(t *testing.T) {
	c := geneset.Collection{
		{Name: "lo", Genes: genes("x", 3)},
		{Name: "in", Genes: genes("y", 4)},
		{Name: "hi", Genes: genes("z", 10)},
	}
	out := geneset.Filter(c, 3, 10)
	assert.Equal(t, []string{"in"}, out.Names())
}

func TestFilter_PropertyAllSizes(t *testing.T) {
	var c geneset.Collection
	for n := 0; n < 40; n++ {
		c = append(c, geneset.Set{Name: fmt.Sprintf("S%d", n), Genes: genes("g", n)})
	}
	for lo := 0; lo < 12; lo++ {
		for hi := lo + 1; hi < 30; hi += 3 {
			out := geneset.Filter(c, lo, hi)
			kept := make(map[string]bool)
			for _, s := range out {
				require.Greater(t, s.Size(), lo)
				require.Less(t, s.Size(), hi)
				kept[s.Name] = true
			}
			for _, s := range c {
				if s.Size() > lo && s.Size() < hi {
					require.True(t, kept[s.Name], "missing %s for (%d,%d)", s.Name, lo, hi)
				}
			}
		}
	}
}

func TestFilter_InvalidBoundsYieldEmpty(t *testing.T) {
	c := geneset.Collection{{Name: "A", Genes: genes("a", 5)}}
	assert.Empty(t, geneset.Filter(c, 10, 3))
	assert.Empty(t, geneset.Filter(c, 5, 5))
	assert.Empty(t, geneset.Filter(c, -1, 10))

	require.ErrorIs(t, geneset.Bounds{Lower: 10, Upper: 3}.Validate(), geneset.ErrRange)
	require.NoError(t, geneset.DefaultBounds.Validate())
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	c := geneset.Collection{{Name: "A", Genes: []string{"x", "y", "z", "w"}}}
	out := geneset.Filter(c, 1, 10)
	out[0].Genes[0] = "changed"
	assert.Equal(t, "x", c[0].Genes[0])
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "LEPTIN", geneset.ShortName("LEPTIN%NETPATH%LEPTIN", "%"))
	assert.Equal(t, "SINGLE", geneset.ShortName("SINGLE", "%"))
	assert.Equal(t, "", geneset.ShortName("", "%"))
	assert.Equal(t, "", geneset.ShortName("%LEAD", "%"))
	assert.Equal(t, "A%B", geneset.ShortName("A%B", ""))
}

func TestReadGMT(t *testing.T) {
	in := "LEPTIN%NETPATH%LEPTIN\thttp://netpath.org\tLEP\tLEPR\tJAK2\tLEP\n" +
		"EMPTY_DESC\t\tA\tB\t\n"
	c, err := geneset.ReadGMT(strings.NewReader(in), "mem.gmt")
	require.NoError(t, err)
	require.Len(t, c, 2)

	assert.Equal(t, []string{"LEP", "LEPR", "JAK2"}, c[0].Genes, "duplicates collapsed, order kept")
	assert.Equal(t, "http://netpath.org", c[0].Description)
	assert.Equal(t, "", c[1].Description)
	assert.Equal(t, []string{"A", "B"}, c[1].Genes)

	s, ok := c.Lookup("EMPTY_DESC")
	require.True(t, ok)
	assert.True(t, s.Contains("B"))
	assert.False(t, s.Contains("C"))
}

func TestReadGMT_Errors(t *testing.T) {
	_, err := geneset.ReadGMT(strings.NewReader("A\td\tx\nA\td\ty\n"), "dup.gmt")
	require.ErrorIs(t, err, geneset.ErrDuplicateSet)
	var pe *tabular.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)

	_, err = geneset.ReadGMT(strings.NewReader("ONLYNAME\n"), "short.gmt")
	require.ErrorIs(t, err, tabular.ErrColumnCount)

	_, err = geneset.ReadGMT(strings.NewReader("\tdesc\tx\n"), "noname.gmt")
	require.ErrorIs(t, err, geneset.ErrEmptySetName)
}

func TestReadLong(t *testing.T) {
	in := "ont\tgene\nS1\tA\nS2\tB\nS1\tC\nS1\tA\n"
	c, err := geneset.ReadLong(strings.NewReader(in), "long.tsv")
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2"}, c.Names())
	assert.Equal(t, []string{"A", "C"}, c[0].Genes)

	_, err = geneset.ReadLong(strings.NewReader("term\tgene\nS1\tA\n"), "bad.tsv")
	require.ErrorIs(t, err, tabular.ErrMissingColumn)
	require.ErrorIs(t, err, tabular.ErrParse)

	_, err = geneset.ReadLong(strings.NewReader("ont\tgene\nS1\tA\nS2\tB\tC\n"), "wide.tsv")
	require.ErrorIs(t, err, tabular.ErrColumnCount)
	require.ErrorIs(t, err, tabular.ErrParse)
}

func TestLoadGlob_MergesInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.gmt"), []byte("B\td\tx\ty\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "a.gmt"), []byte("A\td\tx\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	c, err := geneset.LoadGlob(filepath.Join(dir, "**", "*.gmt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, c.Names()) // ".../b.gmt" < ".../sub/a.gmt"

	_, err = geneset.LoadGlob(filepath.Join(dir, "*.none"))
	require.ErrorIs(t, err, geneset.ErrNoFiles)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dup.gmt"), []byte("A\td\tz\n"), 0o644))
	_, err = geneset.LoadGlob(filepath.Join(dir, "**", "*.gmt"))
	require.ErrorIs(t, err, geneset.ErrDuplicateSet)
}

func TestSimilarity(t *testing.T) {
	a := []string{"A", "B", "C", "D"}
	b := []string{"C", "D", "E"}
	assert.InDelta(t, 2.0/5.0, geneset.Jaccard(a, b), 1e-12)
	assert.InDelta(t, 2.0/3.0, geneset.Overlap(a, b), 1e-12)
	assert.Equal(t, 0.0, geneset.Jaccard(nil, nil))
	assert.Equal(t, 0.0, geneset.Overlap(a, nil))
	assert.Equal(t, 1.0, geneset.Jaccard([]string{"X", "X"}, []string{"X"}))
}
