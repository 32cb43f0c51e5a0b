package main

import (
	"os"

	"github.com/aretw0/bioreasoner/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-or-dir...]",
	Short: "Check the rule catalog and scenarios for consistency",
	Long: `Reports rules that conclude their own conditions or contradictory facts,
contradiction facts no rule mentions, and scenario facts outside the vocabulary.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(cli.Validate(cli.ValidateOptions{EngineOptions: engineOptions(cmd), Paths: args}, os.Stdout))
	},
}

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [scenario.yaml]",
	Short: "Export the rule graph visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the rule catalog. With a scenario,
initial and derived facts, fired rules and conflicts are highlighted.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.GraphOptions{EngineOptions: engineOptions(cmd)}
		if len(args) > 0 {
			opts.ScenarioPath = args[0]
		}
		exitOnError(cli.Graph(opts, os.Stdout))
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule catalog in application order",
	Run: func(cmd *cobra.Command, args []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		exitOnError(cli.Rules(cli.RulesOptions{EngineOptions: engineOptions(cmd), JSON: jsonMode}, os.Stdout))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd, graphCmd, rulesCmd)
	rulesCmd.Flags().Bool("json", false, "Print JSON instead of a table")
}
