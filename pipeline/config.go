// Package pipeline wires the loaders, filters and renderers into the two
// end-to-end workflows:
//
//	Enrichment: gene sets → size filter → ranking → engine → enrichment map
//	Network:    matrix → local FDR → significance mask → edges → roles →
//	            graph → optional shortest path
//
// Each workflow is a sequence of plain function calls over explicit inputs.
// Any error aborts the workflow and is returned with its cause intact.
// Results are returned as typed reports; WriteOutputs persists the graph and
// a YAML report stamped with a run ID and BLAKE3 input checksums.
package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netomics/dijkstra"
	"github.com/katalvlaran/netomics/edgelist"
	"github.com/katalvlaran/netomics/enrich"
	"github.com/katalvlaran/netomics/geneset"
	"github.com/katalvlaran/netomics/render"
	"github.com/katalvlaran/netomics/signif"
)

// Sentinel errors.
var (
	// ErrMissingInput indicates a required input path is not configured.
	ErrMissingInput = errors.New("pipeline: required input not set")

	// ErrNoEngine indicates that no enrichment engine is available.
	ErrNoEngine = errors.New("pipeline: no enrichment engine configured")

	// ErrBadConfig indicates an invalid configuration value.
	ErrBadConfig = errors.New("pipeline: invalid configuration")
)

// MapConfig configures the enrichment map.
type MapConfig struct {
	MinSimilarity float64 `mapstructure:"min_similarity" yaml:"min_similarity"`
	ShowCategory  int     `mapstructure:"show_category" yaml:"show_category"`
	Similarity    string  `mapstructure:"similarity" yaml:"similarity"` // jaccard | overlap
}

// PathConfig names the endpoints of an optional shortest-path query.
type PathConfig struct {
	From string `mapstructure:"from" yaml:"from,omitempty"`
	To   string `mapstructure:"to" yaml:"to,omitempty"`
	Cost string `mapstructure:"cost" yaml:"cost,omitempty"` // hop | strength | abs
}

// Enabled reports whether both endpoints are set.
func (p PathConfig) Enabled() bool { return p.From != "" && p.To != "" }

// Config holds every workflow setting. Field tags are the viper / YAML keys.
type Config struct {
	// Enrichment inputs.
	GeneSets     string         `mapstructure:"genesets" yaml:"genesets,omitempty"`
	Bounds       geneset.Bounds `mapstructure:"bounds" yaml:"bounds"`
	Ranking      string         `mapstructure:"ranking" yaml:"ranking,omitempty"`
	Results      string         `mapstructure:"results" yaml:"results,omitempty"`
	Permutations int            `mapstructure:"permutations" yaml:"permutations"`
	PValueCutoff float64        `mapstructure:"pvalue_cutoff" yaml:"pvalue_cutoff"`
	Map          MapConfig      `mapstructure:"map" yaml:"map"`

	// Network inputs.
	Matrix     string     `mapstructure:"matrix" yaml:"matrix,omitempty"`
	Roles      string     `mapstructure:"roles" yaml:"roles,omitempty"`
	LFDR       string     `mapstructure:"lfdr" yaml:"lfdr,omitempty"`
	LFDRCutoff float64    `mapstructure:"lfdr_cutoff" yaml:"lfdr_cutoff"`
	Top        int        `mapstructure:"top" yaml:"top"`
	Tolerance  float64    `mapstructure:"tolerance" yaml:"tolerance"`
	Path       PathConfig `mapstructure:"path" yaml:"path"`

	// Outputs.
	Output string `mapstructure:"output" yaml:"output,omitempty"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the defaults of every non-path setting.
func DefaultConfig() Config {
	return Config{
		Bounds:       geneset.DefaultBounds,
		Permutations: enrich.DefaultPermutations,
		PValueCutoff: enrich.DefaultPValueCutoff,
		Map: MapConfig{
			MinSimilarity: enrich.DefaultMinSimilarity,
			ShowCategory:  enrich.DefaultShowCategory,
			Similarity:    "jaccard",
		},
		LFDRCutoff: signif.DefaultCutoff,
		Tolerance:  edgelist.DefaultTolerance,
		Path:       PathConfig{Cost: "hop"},
		Format:     string(render.FormatDOT),
	}
}

// Params returns the engine parameters carried by c.
func (c Config) Params() enrich.Params {
	return enrich.Params{Permutations: c.Permutations, PValueCutoff: c.PValueCutoff, Bounds: c.Bounds}
}

// ValidateEnrichment checks the settings used by Enrichment.
func (c Config) ValidateEnrichment() error {
	if c.GeneSets == "" {
		return fmt.Errorf("genesets: %w", ErrMissingInput)
	}
	if c.Ranking == "" {
		return fmt.Errorf("ranking: %w", ErrMissingInput)
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if _, err := c.similarity(); err != nil {
		return err
	}

	return c.validateFormat()
}

// ValidateNetwork checks the settings used by Network.
func (c Config) ValidateNetwork() error {
	if c.Matrix == "" {
		return fmt.Errorf("matrix: %w", ErrMissingInput)
	}
	if math.IsNaN(c.LFDRCutoff) || math.IsInf(c.LFDRCutoff, 0) {
		return fmt.Errorf("lfdr_cutoff=%v: %w", c.LFDRCutoff, signif.ErrBadCutoff)
	}
	if c.Top < 0 {
		return fmt.Errorf("top=%d: %w", c.Top, ErrBadConfig)
	}
	if (c.Path.From == "") != (c.Path.To == "") {
		return fmt.Errorf("path needs both from and to: %w", ErrBadConfig)
	}
	if _, ok := dijkstra.CostByName(c.Path.Cost); !ok {
		return fmt.Errorf("path.cost=%q: %w", c.Path.Cost, ErrBadConfig)
	}

	return c.validateFormat()
}

func (c Config) validateFormat() error {
	_, err := render.ParseFormat(c.Format)

	return err
}

func (c Config) similarity() (enrich.SimilarityFunc, error) {
	switch c.Map.Similarity {
	case "", "jaccard":
		return geneset.Jaccard, nil
	case "overlap":
		return geneset.Overlap, nil
	default:
		return nil, fmt.Errorf("map.similarity=%q: %w", c.Map.Similarity, ErrBadConfig)
	}
}

// EngineFor returns the engine implied by c: a TableEngine over c.Results,
// or ErrNoEngine when no result table is configured.
func EngineFor(c Config) (enrich.Engine, error) {
	if c.Results == "" {
		return nil, ErrNoEngine
	}

	return enrich.NewTableEngine(c.Results)
}

// EstimatorFor returns a VectorFile over c.LFDR, or nil when unset.
func EstimatorFor(c Config) signif.Estimator {
	if c.LFDR == "" {
		return nil
	}

	return signif.VectorFile{Path: c.LFDR}
}
