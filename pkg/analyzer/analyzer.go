package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/helmcode/codeopti/pkg/language"
	"github.com/helmcode/codeopti/pkg/llm"
	"github.com/helmcode/codeopti/pkg/model"
	"github.com/helmcode/codeopti/pkg/parser"
	"github.com/helmcode/codeopti/pkg/prompts"
)

var ErrEmptyCode = errors.New("no code provided")

// Analyzer runs one prompt/response round trip per call. It keeps no
// result state; every call returns a fresh record.
type Analyzer struct {
	llm    llm.LLM
	logger *slog.Logger
}

func NewWithLLM(l llm.LLM) *Analyzer {
	return &Analyzer{llm: l, logger: slog.Default()}
}

// WithLogger replaces the logger used for request tracing.
func (a *Analyzer) WithLogger(logger *slog.Logger) *Analyzer {
	if logger != nil {
		a.logger = logger
	}
	return a
}

func (a *Analyzer) Analyze(ctx context.Context, code, lang string) (*model.AnalysisResult, error) {
	raw, err := a.roundTrip(ctx, code, lang, model.KindAnalyze)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	return parser.ParseAnalysisResponse(raw), nil
}

func (a *Analyzer) Optimize(ctx context.Context, code, lang string) (*model.OptimizationResult, error) {
	raw, err := a.roundTrip(ctx, code, lang, model.KindOptimize)
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}
	return parser.ParseOptimizationResponse(raw), nil
}

// Run dispatches on kind and returns the normalized record.
func (a *Analyzer) Run(ctx context.Context, code, lang string, kind model.Kind) (model.Result, error) {
	switch kind {
	case model.KindAnalyze:
		res, err := a.Analyze(ctx, code, lang)
		if err != nil {
			return nil, err
		}
		return res, nil
	case model.KindOptimize:
		res, err := a.Optimize(ctx, code, lang)
		if err != nil {
			return nil, err
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownKind, kind)
	}
}

func (a *Analyzer) roundTrip(ctx context.Context, code, lang string, kind model.Kind) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyCode
	}
	if lang == "" {
		lang = language.Detect(code)
	}

	prompt, err := prompts.Build(code, lang, kind)
	if err != nil {
		return "", err
	}

	start := time.Now()
	a.logger.Debug("llm request", "kind", kind, "model", a.llm.Name(), "language", lang, "prompt_bytes", len(prompt))
	raw, err := a.llm.Chat(ctx, prompt)
	if err != nil {
		a.logger.Debug("llm request failed", "kind", kind, "error", err)
		return "", fmt.Errorf("LLM chat: %w", err)
	}
	a.logger.Debug("llm response", "kind", kind, "reply_bytes", len(raw), "elapsed", time.Since(start))
	return raw, nil
}
