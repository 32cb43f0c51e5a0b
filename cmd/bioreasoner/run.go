package main

import (
	"github.com/aretw0/bioreasoner/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Run the engine on a scenario",
	Long: `Loads a scenario, derives its closure under the rule catalog and prints the
reasoning trace, final facts, contradictions and query answers.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")
		watchMode, _ := cmd.Flags().GetBool("watch")

		exitOnError(cli.Execute(cli.RunOptions{
			EngineOptions: engineOptions(cmd),
			ScenarioPath:  args[0],
			Format:        format,
			Out:           out,
			Watch:         watchMode,
		}))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("format", cli.FormatText, "Output format: 'text' or 'json'")
	runCmd.Flags().StringP("out", "o", "-", "Output path ('-' for stdout)")
	runCmd.Flags().Int("max-iterations", 0, "Pass cap (default 1000; 0 returns the initial facts unchanged)")
	runCmd.Flags().BoolP("watch", "w", false, "Re-run whenever the scenario or catalog changes")
}
