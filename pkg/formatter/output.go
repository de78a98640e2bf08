package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/codeopti/pkg/diff"
	"github.com/helmcode/codeopti/pkg/model"
)

// Output formats accepted by Display.
const (
	FormatHuman    = "human"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

func ValidFormat(format string) bool {
	switch format {
	case FormatHuman, FormatJSON, FormatYAML, FormatMarkdown:
		return true
	}
	return false
}

// Options tweak the human view.
type Options struct {
	// Original is the submitted code, used by the comparison view.
	Original string
	Compare  diff.Mode
	Chart    bool
}

// Display writes result to w in the requested format.
func Display(w io.Writer, result model.Result, format string, opts Options) error {
	switch format {
	case FormatJSON:
		return displayJSON(w, result)
	case FormatYAML:
		return displayYAML(w, result)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(result))
		return err
	case FormatHuman, "":
		switch r := result.(type) {
		case *model.AnalysisResult:
			displayAnalysis(w, r, opts)
		case *model.OptimizationResult:
			displayOptimization(w, r, opts)
		default:
			return fmt.Errorf("unsupported result type %T", result)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (supported: human, json, yaml, markdown)", format)
	}
}

func displayJSON(w io.Writer, result model.Result) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

func displayYAML(w io.Writer, result model.Result) error {
	output, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(output))
	return err
}

func displayAnalysis(w io.Writer, a *model.AnalysisResult, opts Options) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)
	cyan.Fprintln(w, "⏱️  COMPLEXITY:")
	fmt.Fprintf(w, "   Time:  %s\n", color.CyanString(a.TimeComplexity))
	fmt.Fprintf(w, "   Space: %s\n\n", color.CyanString(a.SpaceComplexity))

	white.Fprintln(w, "📊 PERFORMANCE:")
	fmt.Fprintf(w, "   Best case:    %s\n", a.BestCase)
	fmt.Fprintf(w, "   Average case: %s\n", a.AverageCase)
	fmt.Fprintf(w, "   Worst case:   %s\n\n", a.WorstCase)

	if len(a.Bottlenecks) > 0 {
		yellow.Fprintln(w, "⚠️  BOTTLENECKS:")
		for i, b := range a.Bottlenecks {
			fmt.Fprintf(w, "   %d. %s\n", i+1, b)
		}
		fmt.Fprintln(w)
	}

	if opts.Chart {
		white.Fprintln(w, "📈 GROWTH:")
		fmt.Fprintln(w, ComplexityChart(a.TimeComplexity))
		fmt.Fprintln(w)
	}

	if a.Analysis != "" {
		white.Fprintln(w, "📄 DETAILED ANALYSIS:")
		fmt.Fprintln(w, wrapText(a.Analysis, 80, "   "))
		fmt.Fprintln(w)
	}

	footer(w)
}

func displayOptimization(w io.Writer, o *model.OptimizationResult, opts Options) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)
	scoreColor(o.QualityScore).Fprintf(w, "🏅 QUALITY SCORE: %d/100\n", o.QualityScore)
	feedback := QualityFeedback(o.QualityScore)
	fmt.Fprintf(w, "   %s\n", feedback.Message)
	for _, rec := range feedback.Recommendations {
		fmt.Fprintf(w, "   • %s\n", rec)
	}
	fmt.Fprintln(w)

	if o.Improvements != "" {
		green.Fprintln(w, "🚀 IMPROVEMENTS:")
		fmt.Fprintln(w, wrapText(o.Improvements, 80, "   "))
		fmt.Fprintln(w)
	}

	if len(o.Changes) > 0 {
		cyan.Fprintln(w, "🔧 CHANGES:")
		for i, c := range o.Changes {
			fmt.Fprintf(w, "   %d. Line %d: %s\n", i+1, c.Line, c.Change)
			if c.Reason != "" {
				fmt.Fprintf(w, "      Why: %s\n", c.Reason)
			}
		}
		fmt.Fprintln(w)
	}

	mode := opts.Compare
	if mode == "" {
		mode = diff.ModeOptimized
	}
	white.Fprintf(w, "📄 CODE (%s):\n", mode)
	fmt.Fprintln(w, diff.View(mode, opts.Original, o.OptimizedCode))
	fmt.Fprintln(w)

	footer(w)
}

func footer(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json, -o yaml or -o markdown for machine-readable output"))
}

func scoreColor(score int) *color.Color {
	switch model.QualityBand(score) {
	case "excellent", "good":
		return color.New(color.FgGreen, color.Bold)
	case "average":
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
