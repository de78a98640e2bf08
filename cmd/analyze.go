package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helmcode/codeopti/pkg/analyzer"
	"github.com/helmcode/codeopti/pkg/formatter"
)

func NewAnalyzeCmd() *cobra.Command {
	var (
		flags commonFlags
		chart bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [FILE|-]",
		Short: "Estimate time and space complexity with AI assistance",
		Long: `Send source code to an LLM and report its time and space complexity,
best/average/worst case behaviour and likely bottlenecks.

Examples:
  # Analyze a file
  codeopti analyze sort.py

  # Analyze code from stdin with an explicit language
  cat sort.go | codeopti analyze -l go

  # Show a growth chart and export a markdown report
  codeopti analyze sort.js --chart --export report.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			cfg, logger, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			printHeader(stderr, "🔍 Code Complexity Analyzer", sourceName(args), cfg.Language, cfg)

			client, err := newLLM(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize LLM client: %w", err)
			}

			s := newSpinner(stderr, " Analyzing with AI...")
			s.Start()
			result, err := analyzer.NewWithLLM(client).WithLogger(logger).Analyze(cmd.Context(), code, cfg.Language)
			s.Stop()
			if err != nil {
				return err
			}
			printSuccess(stderr, "Analysis complete")

			if err := formatter.Display(cmd.OutOrStdout(), result, cfg.Output, formatter.Options{Chart: chart}); err != nil {
				return err
			}
			if flags.export != "" {
				if err := exportReport(flags.export, result); err != nil {
					return err
				}
				printSuccess(stderr, "Report exported to "+flags.export)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&chart, "chart", false, "Plot the estimated growth curve against linear")
	return cmd
}
