package main

import (
	"fmt"
	"os"

	"github.com/aretw0/bioreasoner/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bioreasoner",
	Short: "BioReasoner is a deterministic forward-chaining engine for signaling pathways",
	Long: `BioReasoner derives every fact implied by a scenario's initial facts using a
catalog of pathway rules, reports the reasoning trace and flags contradictions.
It can also score LLM answers against the engine.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("catalog", "", "YAML or JSON rule catalog replacing the built-in one")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// engineOptions reads the persistent engine flags.
func engineOptions(cmd *cobra.Command) cli.EngineOptions {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	debug, _ := cmd.Flags().GetBool("debug")
	opts := cli.EngineOptions{CatalogPath: catalogPath, Debug: debug}
	// Only run defines max-iterations.
	if f := cmd.Flags().Lookup("max-iterations"); f != nil && f.Changed {
		maxIterations, _ := cmd.Flags().GetInt("max-iterations")
		opts.MaxIterations = &maxIterations
	}
	return opts
}

// exitOnError prints err and exits with status 1.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
