package enrich

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/netomics/geneset"
	"github.com/katalvlaran/netomics/tabular"
)

// Result table column names (clusterProfiler / DOSE export).
const (
	ColID          = "ID"
	ColDescription = "Description"
	ColSetSize     = "setSize"
	ColES          = "enrichmentScore"
	ColNES         = "NES"
	ColPValue      = "pvalue"
	ColPAdjust     = "p.adjust"
	ColCore        = "core_enrichment"

	// LeadingEdgeSep separates genes inside core_enrichment.
	LeadingEdgeSep = "/"
)

// ReadResults parses an exported enrichment result table.
//
// Required columns: ID, setSize, enrichmentScore, NES, pvalue, p.adjust.
// Optional: Description, core_enrichment. Rows keep file order.
func ReadResults(r io.Reader, source string) ([]Result, error) {
	rd := tabular.NewReader(r, source, tabular.WithEmptyFields())
	hdr, err := tabular.ReadHeader(rd)
	if err != nil {
		return nil, err
	}
	pos, err := hdr.Require(ColID, ColSetSize, ColES, ColNES, ColPValue, ColPAdjust)
	if err != nil {
		return nil, rd.Fail("%w", err)
	}
	descAt, hasDesc := hdr.Index(ColDescription)
	coreAt, hasCore := hdr.Index(ColCore)

	var out []Result
	seen := make(map[string]struct{})
	for {
		fields, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if fields, err = hdr.Aligned(rd, fields); err != nil {
			return nil, err
		}

		res := Result{ID: fields[pos[0]]}
		if res.ID == "" {
			return nil, rd.Fail("%w", geneset.ErrEmptySetName)
		}
		if _, dup := seen[res.ID]; dup {
			return nil, rd.Fail("%q: %w", res.ID, ErrDuplicateResult)
		}
		seen[res.ID] = struct{}{}

		if res.Size, err = strconv.Atoi(fields[pos[1]]); err != nil {
			return nil, rd.Fail("%s %q: %w", ColSetSize, fields[pos[1]], tabular.ErrNotNumeric)
		}
		for k, dst := range []*float64{&res.ES, &res.NES, &res.PValue, &res.PAdjust} {
			if *dst, err = tabular.Float(fields[pos[k+2]]); err != nil {
				return nil, rd.Fail("%s: %w", res.ID, err)
			}
		}
		if hasDesc {
			res.Description = fields[descAt]
		}
		if hasCore && fields[coreAt] != "" {
			res.LeadingEdge = strings.Split(fields[coreAt], LeadingEdgeSep)
		}
		out = append(out, res)
	}

	return out, nil
}

// LoadResults reads a result table from disk (gzip-aware).
func LoadResults(path string) ([]Result, error) {
	return tabular.ReadFile(path, ReadResults)
}

// TableEngine is an Engine backed by results computed elsewhere.
// Run keeps the results whose gene set is present in sets and admitted by
// the size bounds, whose p-value is ≤ the cutoff, and whose leading edge
// is non-empty after restricting it to ranked genes.
type TableEngine struct {
	Results []Result
}

// NewTableEngine loads a result table from path.
func NewTableEngine(path string) (*TableEngine, error) {
	res, err := LoadResults(path)
	if err != nil {
		return nil, err
	}

	return &TableEngine{Results: res}, nil
}

// Run implements Engine. The returned slice is sorted by ascending p-value;
// ties keep table order. Size is taken from the gene-set collection.
func (t *TableEngine) Run(ctx context.Context, ranks map[string]float64, sets geneset.Collection, p Params) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}
	if len(ranks) == 0 {
		return nil, ErrEmptyRanking
	}

	bySet := make(map[string]geneset.Set, len(sets))
	for _, s := range sets {
		bySet[s.Name] = s
	}

	var out []Result
	for _, res := range t.Results {
		s, ok := bySet[res.ID]
		if !ok || !p.Bounds.Admits(s.Size()) || res.PValue > p.PValueCutoff {
			continue
		}
		res.Size = s.Size()
		res.LeadingEdge = ranked(res.LeadingEdge, ranks)
		if len(res.LeadingEdge) == 0 {
			continue
		}
		out = append(out, res)
	}
	SortByPValue(out)

	return out, nil
}

// ranked keeps the genes that appear in ranks, preserving order.
func ranked(genes []string, ranks map[string]float64) []string {
	out := make([]string, 0, len(genes))
	for _, g := range genes {
		if _, ok := ranks[g]; ok {
			out = append(out, g)
		}
	}

	return out
}

// SortByPValue orders results by ascending p-value in place; ties keep order.
func SortByPValue(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].PValue < rs[j].PValue })
}
