package prompts

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/helmcode/codeopti/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "function sum(a) {\n  return a.reduce((x, y) => x + y, 0) // `${a}` %s\n}"

func TestBuildAppendsCodeVerbatim(t *testing.T) {
	for _, kind := range []model.Kind{model.KindAnalyze, model.KindOptimize} {
		p, err := Build(sample, "javascript", kind)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(p, sample), "kind %s", kind)
		assert.Contains(t, p, "javascript")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build(sample, "go", model.KindOptimize)
	require.NoError(t, err)
	b, err := Build(sample, "go", model.KindOptimize)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := Build(sample, "go", model.Kind("refactor"))
	assert.ErrorIs(t, err, model.ErrUnknownKind)
}

func TestSchemaMatchesResultFields(t *testing.T) {
	tests := []struct {
		kind   model.Kind
		record any
	}{
		{model.KindAnalyze, model.AnalysisResult{}},
		{model.KindOptimize, model.OptimizationResult{}},
	}
	for _, tt := range tests {
		schema, err := Schema(tt.kind)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(schema), &got))

		raw, err := json.Marshal(tt.record)
		require.NoError(t, err)
		var want map[string]any
		require.NoError(t, json.Unmarshal(raw, &want))

		assert.Len(t, got, len(want), "kind %s", tt.kind)
		for field := range want {
			assert.Contains(t, got, field, "kind %s", tt.kind)
		}
	}
}
