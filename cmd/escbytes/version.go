package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/escbytes"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of escbytes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "escbytes version %s\n", strings.TrimSpace(escbytes.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
