package main

import (
	"os"

	"github.com/aretw0/escbytes"
	"github.com/aretw0/escbytes/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "escbytes",
	Short: "Convert escaped string literals into a byte initializer list",
	Long: `Reads ` + escbytes.InputName + ` from the working directory, rewrites the \U and \0-\7
escapes as comma-separated byte values and writes the brace-wrapped list to ` + escbytes.OutputName + `.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		debug, _ := cmd.Flags().GetBool("debug")
		return cli.RunConvert(dir, debug)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("dir", ".", "Directory holding "+escbytes.InputName+" and "+escbytes.OutputName)
	rootCmd.PersistentFlags().Bool("debug", false, "Log progress to stderr")
}
