package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/netomics/pipeline"
)

const envPrefix = "NETOMICS"

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"genesets":       "genesets",
	"ranking":        "ranking",
	"results":        "results",
	"lower":          "bounds.lower",
	"upper":          "bounds.upper",
	"permutations":   "permutations",
	"pvalue-cutoff":  "pvalue_cutoff",
	"min-similarity": "map.min_similarity",
	"show-category":  "map.show_category",
	"similarity":     "map.similarity",
	"matrix":         "matrix",
	"roles":          "roles",
	"lfdr":           "lfdr",
	"lfdr-cutoff":    "lfdr_cutoff",
	"top":            "top",
	"tolerance":      "tolerance",
	"cost":           "path.cost",
	"from":           "path.from",
	"to":             "path.to",
	"output":         "output",
	"format":         "format",
}

func addEnrichFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("genesets", "", "Glob of GMT or long-format gene-set files")
	f.String("ranking", "", "Ranked gene list (gene, rank columns)")
	f.String("results", "", "Enrichment result table to serve as the engine")
	f.Int("lower", 0, "Exclusive lower bound on set size")
	f.Int("upper", 0, "Exclusive upper bound on set size")
	f.Int("permutations", 0, "Permutation count passed to the engine")
	f.Float64("pvalue-cutoff", 0, "Keep results with p-value at or below this")
	f.Float64("min-similarity", 0, "Minimum leading-edge similarity for map edges")
	f.Int("show-category", 0, "Number of top results shown in the map")
	f.String("similarity", "", "Map similarity: jaccard or overlap")
}

func addNetworkFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("matrix", "", "Labeled partial-correlation matrix")
	f.String("roles", "", "Node role table (name, type columns)")
	f.String("lfdr", "", "Local FDR vector over the upper triangle")
	f.Float64("lfdr-cutoff", 0, "Mask entries with local FDR at or above this")
	f.Int("top", 0, "Keep the N strongest edges (0 keeps all)")
	f.Float64("tolerance", 0, "Symmetry tolerance")
	f.String("cost", "", "Path edge cost: hop, strength or abs")
}

func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("output", "o", "", "Output directory")
	f.String("format", "", "Graph format: dot, json or tsv")
}

// setDefaults registers every key so that environment lookups resolve it.
func setDefaults(v *viper.Viper) {
	d := pipeline.DefaultConfig()
	v.SetDefault("genesets", d.GeneSets)
	v.SetDefault("ranking", d.Ranking)
	v.SetDefault("results", d.Results)
	v.SetDefault("bounds.lower", d.Bounds.Lower)
	v.SetDefault("bounds.upper", d.Bounds.Upper)
	v.SetDefault("permutations", d.Permutations)
	v.SetDefault("pvalue_cutoff", d.PValueCutoff)
	v.SetDefault("map.min_similarity", d.Map.MinSimilarity)
	v.SetDefault("map.show_category", d.Map.ShowCategory)
	v.SetDefault("map.similarity", d.Map.Similarity)
	v.SetDefault("matrix", d.Matrix)
	v.SetDefault("roles", d.Roles)
	v.SetDefault("lfdr", d.LFDR)
	v.SetDefault("lfdr_cutoff", d.LFDRCutoff)
	v.SetDefault("top", d.Top)
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("path.from", d.Path.From)
	v.SetDefault("path.to", d.Path.To)
	v.SetDefault("path.cost", d.Path.Cost)
	v.SetDefault("output", d.Output)
	v.SetDefault("format", d.Format)
}

// loadConfig resolves the configuration for cmd. Only flags the user set
// override file and environment values.
func loadConfig(cmd *cobra.Command) (pipeline.Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return pipeline.Config{}, errors.Wrapf(err, "read config %s", configFile)
		}
	}

	var bindErr error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return pipeline.Config{}, errors.Wrap(bindErr, "bind flags")
	}

	var cfg pipeline.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return pipeline.Config{}, errors.Wrap(err, "decode config")
	}

	return cfg, nil
}
