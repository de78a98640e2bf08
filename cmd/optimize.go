package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helmcode/codeopti/pkg/analyzer"
	"github.com/helmcode/codeopti/pkg/diff"
	"github.com/helmcode/codeopti/pkg/formatter"
)

func NewOptimizeCmd() *cobra.Command {
	var (
		flags   commonFlags
		compare string
	)

	cmd := &cobra.Command{
		Use:   "optimize [FILE|-]",
		Short: "Suggest an optimized version of the code with AI assistance",
		Long: `Send source code to an LLM and show an optimized rewrite, the list of
changes with their reasons, and a 0-100 quality score.

Examples:
  # Optimize a file and show the rewrite
  codeopti optimize two_sum.py

  # Show a line diff against the original
  codeopti optimize two_sum.py --compare diff

  # Machine-readable output
  codeopti optimize main.go -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := diff.ParseMode(compare)
			if err != nil {
				return err
			}
			code, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			cfg, logger, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			printHeader(stderr, "⚡ Code Optimizer", sourceName(args), cfg.Language, cfg)

			client, err := newLLM(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize LLM client: %w", err)
			}

			s := newSpinner(stderr, " Optimizing with AI...")
			s.Start()
			result, err := analyzer.NewWithLLM(client).WithLogger(logger).Optimize(cmd.Context(), code, cfg.Language)
			s.Stop()
			if err != nil {
				return err
			}
			printSuccess(stderr, "Optimization complete")

			opts := formatter.Options{Original: code, Compare: mode}
			if err := formatter.Display(cmd.OutOrStdout(), result, cfg.Output, opts); err != nil {
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
	cmd.Flags().StringVar(&compare, "compare", string(diff.ModeOptimized), "Code view (original, optimized, diff)")
	return cmd
}
