package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/codeopti/pkg/model"
)

type fakeLLM struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) Chat(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeLLM) Name() string { return "fake" }

func TestAnalyze(t *testing.T) {
	fake := &fakeLLM{reply: `{"timeComplexity":"O(n)","spaceComplexity":"O(1)"}`}
	a := NewWithLLM(fake)

	res, err := a.Analyze(context.Background(), "for (const x of xs) total += x;", "javascript")
	require.NoError(t, err)
	assert.Equal(t, "O(n)", res.TimeComplexity)
	assert.Equal(t, model.UnknownCase, res.WorstCase)

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "javascript")
	assert.Contains(t, fake.prompts[0], "for (const x of xs) total += x;")
}

func TestAnalyze_DetectsLanguage(t *testing.T) {
	fake := &fakeLLM{reply: "{}"}
	_, err := NewWithLLM(fake).Analyze(context.Background(), "def f(x):\n    return x", "")
	require.NoError(t, err)
	assert.Contains(t, fake.prompts[0], "python")
}

func TestOptimize_ProseFallsBack(t *testing.T) {
	fake := &fakeLLM{reply: "Use a map instead."}
	res, err := NewWithLLM(fake).Optimize(context.Background(), "x := 1", "go")
	require.NoError(t, err)
	assert.Equal(t, "Use a map instead.", res.OptimizedCode)
	assert.Equal(t, model.FallbackScore, res.QualityScore)
}

func TestEmptyCodeIsRejected(t *testing.T) {
	fake := &fakeLLM{}
	_, err := NewWithLLM(fake).Analyze(context.Background(), "   \n", "go")
	assert.ErrorIs(t, err, ErrEmptyCode)
	assert.Empty(t, fake.prompts)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	_, err := NewWithLLM(&fakeLLM{err: boom}).Optimize(context.Background(), "x := 1", "go")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "optimization failed")
}

func TestRun(t *testing.T) {
	a := NewWithLLM(&fakeLLM{reply: "{}"})

	r, err := a.Run(context.Background(), "x := 1", "go", model.KindOptimize)
	require.NoError(t, err)
	assert.Equal(t, model.KindOptimize, r.Kind())

	_, err = a.Run(context.Background(), "x := 1", "go", model.Kind("lint"))
	assert.ErrorIs(t, err, model.ErrUnknownKind)
}

func TestResultsAreIndependent(t *testing.T) {
	fake := &fakeLLM{reply: `{"bottlenecks":["a"]}`}
	a := NewWithLLM(fake)

	first, err := a.Analyze(context.Background(), "x", "go")
	require.NoError(t, err)
	fake.reply = `{"bottlenecks":["b"]}`
	second, err := a.Analyze(context.Background(), "x", "go")
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, first.Bottlenecks)
	assert.Equal(t, []string{"b"}, second.Bottlenecks)
}
