package enrich

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netomics/geneset"
	"github.com/katalvlaran/netomics/network"
)

// SimilarityFunc scores the overlap of two gene lists in [0,1].
type SimilarityFunc func(a, b []string) float64

// MapOptions configures Map.
type MapOptions struct {
	MinSimilarity float64
	ShowCategory  int
	Similarity    SimilarityFunc
	Delimiter     string
}

// MapOption mutates MapOptions.
type MapOption func(*MapOptions)

// WithMinSimilarity sets the edge threshold; pairs scoring below it are
// not linked.
func WithMinSimilarity(s float64) MapOption {
	return func(o *MapOptions) { o.MinSimilarity = s }
}

// WithShowCategory keeps only the n most significant results; n ≤ 0 keeps all.
func WithShowCategory(n int) MapOption {
	return func(o *MapOptions) { o.ShowCategory = n }
}

// WithSimilarity replaces the Jaccard default (e.g. geneset.Overlap).
func WithSimilarity(fn SimilarityFunc) MapOption {
	return func(o *MapOptions) {
		if fn != nil {
			o.Similarity = fn
		}
	}
}

// WithDelimiter sets the delimiter used to shorten node labels.
func WithDelimiter(d string) MapOption {
	return func(o *MapOptions) { o.Delimiter = d }
}

// Map builds an enrichment map: one RoleGeneSet node per result, one edge
// per pair whose leading-edge similarity is > 0 and ≥ MinSimilarity.
// Edge weight is the similarity. Node labels are geneset.ShortName(ID);
// node metadata carries size, nes, pvalue and p_adjust.
//
// Steps:
//  1. Validate MinSimilarity ∈ [0,1].
//  2. Order results by p-value and keep the first ShowCategory.
//  3. Add nodes, then score every pair i<j.
//
// Complexity: O(k² · g) for k results with leading edges of length g.
func Map(results []Result, opts ...MapOption) (*network.Graph, error) {
	o := MapOptions{
		MinSimilarity: DefaultMinSimilarity,
		ShowCategory:  DefaultShowCategory,
		Similarity:    geneset.Jaccard,
		Delimiter:     geneset.DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.MinSimilarity) || o.MinSimilarity < 0 || o.MinSimilarity > 1 {
		return nil, fmt.Errorf("enrich: %g: %w", o.MinSimilarity, ErrBadSimilarity)
	}

	shown := append([]Result(nil), results...)
	SortByPValue(shown)
	if o.ShowCategory > 0 && o.ShowCategory < len(shown) {
		shown = shown[:o.ShowCategory]
	}

	g := network.NewGraph(network.WithName("enrichment_map"))
	for _, r := range shown {
		label := geneset.ShortName(r.ID, o.Delimiter)
		if label == "" {
			label = r.ID
		}
		err := g.AddNodeWith(network.Node{
			ID:    r.ID,
			Label: label,
			Role:  network.RoleGeneSet,
			Metadata: map[string]float64{
				"size":     float64(r.Size),
				"nes":      r.NES,
				"pvalue":   r.PValue,
				"p_adjust": r.PAdjust,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("enrich: map: %w", err)
		}
	}

	for i := 0; i < len(shown); i++ {
		for j := i + 1; j < len(shown); j++ {
			s := o.Similarity(shown[i].LeadingEdge, shown[j].LeadingEdge)
			if s <= 0 || s < o.MinSimilarity {
				continue
			}
			if _, err := g.AddEdge(shown[i].ID, shown[j].ID, s); err != nil {
				return nil, fmt.Errorf("enrich: map: %w", err)
			}
		}
	}

	return g, nil
}
