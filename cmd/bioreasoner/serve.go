package main

import (
	"context"

	"github.com/aretw0/bioreasoner/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP server",
	Long:  `Exposes the engine as a JSON API over HTTP, with Prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		scenarios, _ := cmd.Flags().GetString("scenarios")

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		exitOnError(cli.Serve(sigCtx, cli.ServeOptions{
			EngineOptions: engineOptions(cmd),
			Port:          port,
			ScenarioDir:   scenarios,
		}))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("scenarios", "", "Directory of scenarios exposed by name")
}
