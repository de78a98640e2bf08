package prompts

import (
	"fmt"

	"github.com/helmcode/codeopti/pkg/model"
)

// Build returns the full prompt for kind. The code is appended verbatim at
// the end; it is never escaped since the destination is a model prompt.
func Build(code, language string, kind model.Kind) (string, error) {
	switch kind {
	case model.KindAnalyze:
		return BuildAnalyzePrompt(code, language), nil
	case model.KindOptimize:
		return BuildOptimizePrompt(code, language), nil
	default:
		return "", fmt.Errorf("build prompt: %w: %q", model.ErrUnknownKind, kind)
	}
}

// Schema returns the JSON layout the model is asked to reply with.
func Schema(kind model.Kind) (string, error) {
	switch kind {
	case model.KindAnalyze:
		return analyzeSchema, nil
	case model.KindOptimize:
		return optimizeSchema, nil
	default:
		return "", fmt.Errorf("schema: %w: %q", model.ErrUnknownKind, kind)
	}
}
