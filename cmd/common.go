package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmcode/codeopti/pkg/config"
	"github.com/helmcode/codeopti/pkg/formatter"
	"github.com/helmcode/codeopti/pkg/llm"
	"github.com/helmcode/codeopti/pkg/model"
)

// newLLM is swapped out in tests.
var newLLM = func(ctx context.Context, cfg *config.Config) (llm.LLM, error) {
	return llm.NewFactory().CreateLLM(ctx, cfg.Provider, cfg.LLMConfig())
}

// commonFlags are shared by analyze and optimize.
type commonFlags struct {
	language string
	output   string
	provider string
	model    string
	export   string
	verbose  bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.language, "language", "l", "", "Source language (detected when empty)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output format (human, json, yaml, markdown)")
	cmd.Flags().StringVar(&f.provider, "provider", "", "LLM provider (gemini, claude, openai). Defaults to config or gemini")
	cmd.Flags().StringVar(&f.model, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().StringVar(&f.export, "export", "", "Write a report to this file (.json, .yaml or markdown otherwise)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
}

// resolve merges flags over the loaded configuration and fails closed when
// no credential is available.
func (f *commonFlags) resolve(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	v := config.New()
	if f.provider != "" {
		v.Set("provider", f.provider)
	}
	if f.model != "" {
		v.Set("model", f.model)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, err
	}
	if f.language != "" {
		cfg.Language = f.language
	}
	if f.output != "" {
		cfg.Output = f.output
	}
	if !formatter.ValidFormat(cfg.Output) {
		return nil, nil, fmt.Errorf("unsupported output format %q (supported: human, json, yaml, markdown)", cfg.Output)
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel), nil
}

// readSource reads code from the named file, or from stdin when the
// argument is missing or "-".
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return string(data), nil
}

// exportReport writes result to path, choosing the format from the
// extension.
func exportReport(path string, result model.Result) error {
	format := formatter.FormatMarkdown
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = formatter.FormatJSON
	case ".yaml", ".yml":
		format = formatter.FormatYAML
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export report: %w", err)
	}
	if err := formatter.Display(f, result, format, formatter.Options{}); err != nil {
		f.Close()
		return fmt.Errorf("export report: %w", err)
	}
	return f.Close()
}

func newSpinner(w io.Writer, suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = suffix
	return s
}

func printHeader(w io.Writer, title, source, language string, cfg *config.Config) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w)
	cyan.Fprintln(w, title)
	fmt.Fprintf(w, "📝 Source: %s\n", source)
	if language == "" {
		language = "auto-detect"
	}
	fmt.Fprintf(w, "🔤 Language: %s\n", language)
	fmt.Fprintf(w, "🤖 Provider: %s\n", cfg.Provider)
	fmt.Fprintln(w)
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func sourceName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "stdin"
	}
	return args[0]
}
