package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Analyze")
	require.NoError(t, err)
	assert.Equal(t, KindAnalyze, k)

	k, err = ParseKind(" optimize ")
	require.NoError(t, err)
	assert.Equal(t, KindOptimize, k)

	_, err = ParseKind("refactor")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestQualityBand(t *testing.T) {
	cases := map[int]string{
		-5:  "poor",
		0:   "poor",
		59:  "poor",
		60:  "average",
		79:  "average",
		80:  "good",
		89:  "good",
		90:  "excellent",
		100: "excellent",
		250: "excellent",
	}
	for score, want := range cases {
		assert.Equal(t, want, QualityBand(score), "score %d", score)
	}
}

func TestResultKinds(t *testing.T) {
	var r Result = &AnalysisResult{}
	assert.Equal(t, KindAnalyze, r.Kind())
	r = &OptimizationResult{}
	assert.Equal(t, KindOptimize, r.Kind())
}
