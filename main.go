package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datapilot-io/datapilot/cmd"
)

var (
	version = "v0.2.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "datapilot",
		Short: "AI assistant for data-engineering workflows",
		Long: `datapilot uses a local or hosted language model to answer questions
with SQL, suggest data-quality checks for table schemas, and diagnose
pipeline failures.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewAskCmd(),
		cmd.NewChecksCmd(),
		cmd.NewDebugCmd(),
		cmd.NewSeedCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("datapilot version %s\n", version)
		},
	}
}
