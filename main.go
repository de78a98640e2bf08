package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helmcode/codeopti/cmd"
)

var (
	version = "v0.1.0" // Overwritten at build time
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
		Use:   "codeopti",
		Short: "AI-powered code complexity analysis and optimization",
		Long: `codeopti sends source code to an LLM to estimate its time and space
complexity and to suggest an optimized rewrite.

The API key is read from CODEOPTI_API_KEY or the provider's own variable
(GEMINI_API_KEY, ANTHROPIC_API_KEY, OPENAI_API_KEY). There is no default key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		cmd.NewAnalyzeCmd(),
		cmd.NewOptimizeCmd(),
		cmd.NewDetectCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "codeopti version %s\n", version)
		},
	}
}
