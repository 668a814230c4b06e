// Package enrich is the boundary to gene-set enrichment analysis.
//
// The statistical test itself (GSEA permutation testing) is performed by an
// external engine. This package defines what goes in (a ranked gene list,
// size-filtered gene sets, permutation count and p-value cutoff) and what
// comes out (typed Result records), provides a TableEngine that serves
// results exported by such a tool, and turns results into an enrichment map:
// a network of gene sets linked by shared leading-edge genes.
//
// Errors:
//
//	ErrBadParams       - permutation count < 1 or p-value cutoff outside (0,1].
//	ErrEmptyRanking    - the ranked gene list is empty.
//	ErrBadSimilarity   - minimum similarity outside [0,1].
//	ErrDuplicateResult - the same gene-set ID appears twice in a result table.
package enrich

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netomics/geneset"
)

// Defaults used by the enrichment workflow.
const (
	DefaultPermutations  = 10000
	DefaultPValueCutoff  = 0.05
	DefaultMinSimilarity = 0.2
	DefaultShowCategory  = 30
)

// Sentinel errors.
var (
	// ErrBadParams indicates invalid engine parameters.
	ErrBadParams = errors.New("enrich: invalid parameters")

	// ErrEmptyRanking indicates an empty ranked gene list.
	ErrEmptyRanking = errors.New("enrich: ranking is empty")

	// ErrBadSimilarity indicates a similarity threshold outside [0,1].
	ErrBadSimilarity = errors.New("enrich: similarity threshold must be within [0,1]")

	// ErrDuplicateResult indicates a gene-set ID listed twice in a result table.
	ErrDuplicateResult = errors.New("enrich: duplicate result ID")
)

// Params are the inputs an Engine needs besides the data.
type Params struct {
	Permutations int            `yaml:"permutations"`
	PValueCutoff float64        `yaml:"pvalue_cutoff"`
	Bounds       geneset.Bounds `yaml:"bounds"`
}

// DefaultParams returns 10000 permutations, cutoff 0.05 and DefaultBounds.
func DefaultParams() Params {
	return Params{
		Permutations: DefaultPermutations,
		PValueCutoff: DefaultPValueCutoff,
		Bounds:       geneset.DefaultBounds,
	}
}

// Validate checks Permutations ≥ 1, 0 < PValueCutoff ≤ 1 and the bounds.
func (p Params) Validate() error {
	if p.Permutations < 1 {
		return fmt.Errorf("permutations=%d: %w", p.Permutations, ErrBadParams)
	}
	if !(p.PValueCutoff > 0 && p.PValueCutoff <= 1) {
		return fmt.Errorf("pvalue_cutoff=%g: %w", p.PValueCutoff, ErrBadParams)
	}

	return p.Bounds.Validate()
}

// Result is one enrichment record.
type Result struct {
	ID          string   `yaml:"id" json:"id"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Size        int      `yaml:"size" json:"size"`
	ES          float64  `yaml:"es" json:"es"`
	NES         float64  `yaml:"nes" json:"nes"`
	PValue      float64  `yaml:"pvalue" json:"pvalue"`
	PAdjust     float64  `yaml:"p_adjust" json:"p_adjust"`
	LeadingEdge []string `yaml:"leading_edge,flow" json:"leading_edge"`
}

// Engine runs enrichment of sets against a ranked gene list.
// Results are ordered by ascending p-value.
type Engine interface {
	Run(ctx context.Context, ranks map[string]float64, sets geneset.Collection, p Params) ([]Result, error)
}
