package model

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects which of the two result schemas a request targets.
type Kind string

const (
	KindAnalyze  Kind = "analyze"
	KindOptimize Kind = "optimize"
)

var ErrUnknownKind = errors.New("unknown analysis kind")

// ParseKind maps a user-supplied string onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindAnalyze:
		return KindAnalyze, nil
	case KindOptimize:
		return KindOptimize, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Defaults shared by the parser and the renderers.
const (
	UnknownComplexity   = "O(?)"
	UnknownCase         = "N/A"
	FallbackImprovement = "Code optimization completed"
	FallbackScore       = 75
)

// Result is implemented by both result records so callers can handle
// either kind through one value.
type Result interface {
	Kind() Kind
}

// AnalysisResult is the normalized complexity analysis of a code snippet.
// Every field is always populated; Bottlenecks is never nil.
type AnalysisResult struct {
	TimeComplexity  string   `json:"timeComplexity" yaml:"timeComplexity"`
	SpaceComplexity string   `json:"spaceComplexity" yaml:"spaceComplexity"`
	Analysis        string   `json:"analysis" yaml:"analysis"`
	Bottlenecks     []string `json:"bottlenecks" yaml:"bottlenecks"`
	BestCase        string   `json:"bestCase" yaml:"bestCase"`
	AverageCase     string   `json:"averageCase" yaml:"averageCase"`
	WorstCase       string   `json:"worstCase" yaml:"worstCase"`
}

func (*AnalysisResult) Kind() Kind { return KindAnalyze }

// OptimizationResult is the normalized optimization suggestion. Changes is
// never nil. QualityScore is passed through as received; see ClampScore.
type OptimizationResult struct {
	OptimizedCode string   `json:"optimizedCode" yaml:"optimizedCode"`
	Changes       []Change `json:"changes" yaml:"changes"`
	Improvements  string   `json:"improvements" yaml:"improvements"`
	QualityScore  int      `json:"qualityScore" yaml:"qualityScore"`
}

func (*OptimizationResult) Kind() Kind { return KindOptimize }

// Change describes one edit the model made, keyed by source line.
type Change struct {
	Line   int    `json:"line" yaml:"line"`
	Change string `json:"change" yaml:"change"`
	Reason string `json:"reason" yaml:"reason"`
}

// QualityBand buckets a quality score for display. Scores outside
// [0,100] are clamped first.
func QualityBand(score int) string {
	score = ClampScore(score)
	switch {
	case score >= 90:
		return "excellent"
	case score >= 80:
		return "good"
	case score >= 60:
		return "average"
	default:
		return "poor"
	}
}

// ClampScore limits score to [0,100] for display.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
