// Command netomics runs the gene-set enrichment and perturbation-network
// workflows from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "netomics",
	Short: "Gene-set enrichment maps and perturbation networks",
	Long: `netomics filters gene-set collections, builds enrichment maps from
enrichment results, and turns partial-correlation matrices into signed
perturbation networks with significance masking, node roles and
shortest-path queries.

Settings come from flags, NETOMICS_* environment variables and an optional
YAML config file, in that order of precedence.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

var setsCmd = &cobra.Command{
	Use:   "sets <glob>",
	Short: "Load gene-set files and report the sets inside the size bounds",
	Args:  cobra.ExactArgs(1),
	RunE:  runSets,
}

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Run the enrichment workflow and write the enrichment map",
	Args:  cobra.NoArgs,
	RunE:  runEnrich,
}

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Build the perturbation network from a partial-correlation matrix",
	Args:  cobra.NoArgs,
	RunE:  runNetwork,
}

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Print the shortest path between two nodes of the network",
	Args:  cobra.ExactArgs(2),
	RunE:  runPath,
}

var shortenCmd = &cobra.Command{
	Use:   "shorten <name>...",
	Short: "Print the short form of gene-set names",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShorten,
}

var (
	configFile string
	logLevel   string
	delimiter  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	setsCmd.Flags().Int("lower", 0, "Exclusive lower bound on set size")
	setsCmd.Flags().Int("upper", 0, "Exclusive upper bound on set size")

	addEnrichFlags(enrichCmd)
	addOutputFlags(enrichCmd)

	addNetworkFlags(networkCmd)
	addOutputFlags(networkCmd)
	networkCmd.Flags().String("from", "", "Path query source node")
	networkCmd.Flags().String("to", "", "Path query target node")

	addNetworkFlags(pathCmd)

	shortenCmd.Flags().StringVar(&delimiter, "delimiter", "%", "Name component separator")

	rootCmd.AddCommand(setsCmd, enrichCmd, networkCmd, pathCmd, shortenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
