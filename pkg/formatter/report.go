package formatter

import (
	"fmt"
	"strings"

	"github.com/helmcode/codeopti/pkg/model"
)

// Markdown renders a report for either result kind.
func Markdown(result model.Result) string {
	switch r := result.(type) {
	case *model.AnalysisResult:
		return analysisMarkdown(r)
	case *model.OptimizationResult:
		return optimizationMarkdown(r)
	default:
		return ""
	}
}

func analysisMarkdown(a *model.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("# Code Analysis Report\n\n")

	b.WriteString("## Complexity Analysis\n")
	fmt.Fprintf(&b, "- **Time Complexity:** %s\n", a.TimeComplexity)
	fmt.Fprintf(&b, "- **Space Complexity:** %s\n\n", a.SpaceComplexity)

	b.WriteString("## Performance Metrics\n")
	fmt.Fprintf(&b, "- **Best Case:** %s\n", a.BestCase)
	fmt.Fprintf(&b, "- **Average Case:** %s\n", a.AverageCase)
	fmt.Fprintf(&b, "- **Worst Case:** %s\n\n", a.WorstCase)

	if a.Analysis != "" {
		fmt.Fprintf(&b, "## Detailed Analysis\n%s\n\n", a.Analysis)
	}

	if len(a.Bottlenecks) > 0 {
		b.WriteString("## Identified Bottlenecks\n")
		for _, bn := range a.Bottlenecks {
			fmt.Fprintf(&b, "- %s\n", bn)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n*Generated by codeopti*\n")
	return b.String()
}

func optimizationMarkdown(o *model.OptimizationResult) string {
	var b strings.Builder
	b.WriteString("# Code Optimization Report\n\n")

	if o.Improvements != "" {
		fmt.Fprintf(&b, "## Improvements\n%s\n\n", o.Improvements)
	}

	fmt.Fprintf(&b, "## Quality Score: %d/100\n\n", o.QualityScore)

	if len(o.Changes) > 0 {
		b.WriteString("## Changes Made\n")
		for i, c := range o.Changes {
			fmt.Fprintf(&b, "%d. **Line %d**: %s\n", i+1, c.Line, c.Change)
			fmt.Fprintf(&b, "   - Reason: %s\n\n", c.Reason)
		}
	}

	code := o.OptimizedCode
	if code == "" {
		code = "No optimized code available"
	}
	fmt.Fprintf(&b, "## Optimized Code\n```\n%s\n```\n", code)
	return b.String()
}
