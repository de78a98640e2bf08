package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"

	"github.com/helmcode/codeopti/pkg/model"
)

var errMissingField = errors.New("missing field")

var (
	timeComplexityRe  = complexityPattern("time")
	spaceComplexityRe = complexityPattern("space")
)

// complexityPattern matches "<label> complexity" followed, within the same
// sentence, by a Big-O expression, case-insensitively throughout. A dot
// ends the sentence only when followed by whitespace or end of text, so
// "arr.sort()" does not. The expression stops at the first ")", which
// truncates nested parentheses: "O(n(log n))" yields "O(n(log n)".
func complexityPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + label + `\s*complexity(?:[^.;]|\.\S){0,80}?\b(O\([^)]+\))`)
}

// Normalize turns a raw model reply into the record for kind. It never
// fails: unknown kinds are treated as analyze.
func Normalize(raw string, kind model.Kind) model.Result {
	if kind == model.KindOptimize {
		return ParseOptimizationResponse(raw)
	}
	return ParseAnalysisResponse(raw)
}

// ParseAnalysisResponse normalizes a reply to an analyze prompt. A reply
// that is a single JSON object is defaulted field by field; anything else
// goes through the complexity pattern with raw kept as the analysis text.
func ParseAnalysisResponse(raw string) *model.AnalysisResult {
	fields, ok := strictObject(raw)
	if !ok {
		return &model.AnalysisResult{
			TimeComplexity:  extractComplexity(timeComplexityRe, raw),
			SpaceComplexity: extractComplexity(spaceComplexityRe, raw),
			Analysis:        raw,
			Bottlenecks:     []string{},
			BestCase:        model.UnknownCase,
			AverageCase:     model.UnknownCase,
			WorstCase:       model.UnknownCase,
		}
	}

	return &model.AnalysisResult{
		TimeComplexity:  stringField(fields, "timeComplexity", model.UnknownComplexity),
		SpaceComplexity: stringField(fields, "spaceComplexity", model.UnknownComplexity),
		Analysis:        stringField(fields, "analysis", ""),
		Bottlenecks:     stringsField(fields, "bottlenecks"),
		BestCase:        stringField(fields, "bestCase", model.UnknownCase),
		AverageCase:     stringField(fields, "averageCase", model.UnknownCase),
		WorstCase:       stringField(fields, "worstCase", model.UnknownCase),
	}
}

// ParseOptimizationResponse normalizes a reply to an optimize prompt. When
// raw is not a single JSON object it becomes the optimized code as is.
func ParseOptimizationResponse(raw string) *model.OptimizationResult {
	fields, ok := strictObject(raw)
	if !ok {
		return &model.OptimizationResult{
			OptimizedCode: raw,
			Changes:       []model.Change{},
			Improvements:  model.FallbackImprovement,
			QualityScore:  model.FallbackScore,
		}
	}

	return &model.OptimizationResult{
		OptimizedCode: stringField(fields, "optimizedCode", ""),
		Changes:       changesField(fields, "changes"),
		Improvements:  stringField(fields, "improvements", ""),
		QualityScore:  intField(fields, "qualityScore", 0),
	}
}

// strictObject decodes the whole of raw as a single JSON object. Trailing
// content, or a top-level value that is not an object, fails.
func strictObject(raw string) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

func extractComplexity(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return model.UnknownComplexity
}

func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	v, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return nil, false
	}
	return v, true
}

func stringField(fields map[string]json.RawMessage, key, def string) string {
	v, ok := present(fields, key)
	if !ok {
		return def
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return def
	}
	return s
}

func stringsField(fields map[string]json.RawMessage, key string) []string {
	out := []string{}
	v, ok := present(fields, key)
	if !ok {
		return out
	}
	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return out
	}
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			return []string{}
		}
		out = append(out, s)
	}
	return out
}

func intField(fields map[string]json.RawMessage, key string, def int) int {
	v, ok := present(fields, key)
	if !ok {
		return def
	}
	if n, ok := integral(v); ok {
		return n
	}
	return def
}

// integral accepts JSON numbers with no fractional part, so 85 and 85.0
// both decode while 85.5 and "85" do not.
func integral(v json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func changesField(fields map[string]json.RawMessage, key string) []model.Change {
	out := []model.Change{}
	v, ok := present(fields, key)
	if !ok {
		return out
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return out
	}
	for _, item := range items {
		if item == nil {
			return []model.Change{}
		}
		line, ok := present(item, "line")
		if !ok {
			return []model.Change{}
		}
		var c model.Change
		if c.Line, ok = integral(line); !ok {
			return []model.Change{}
		}
		if err := decodeString(item, "change", &c.Change); err != nil {
			return []model.Change{}
		}
		if err := decodeString(item, "reason", &c.Reason); err != nil {
			return []model.Change{}
		}
		out = append(out, c)
	}
	return out
}

func decodeString(fields map[string]json.RawMessage, key string, dst *string) error {
	v, ok := present(fields, key)
	if !ok {
		return errMissingField
	}
	return json.Unmarshal(v, dst)
}
