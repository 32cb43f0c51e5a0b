package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/bioreasoner"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bioreasoner",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bioreasoner version %s\n", strings.TrimSpace(bioreasoner.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
