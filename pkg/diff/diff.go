// Package diff renders the original/optimized code comparison views.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Mode string

const (
	ModeOriginal  Mode = "original"
	ModeOptimized Mode = "optimized"
	ModeDiff      Mode = "diff"
)

const noComparison = "No comparison available"

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeOptimized, nil
	case ModeOriginal, ModeOptimized, ModeDiff:
		return m, nil
	default:
		return "", fmt.Errorf("unknown comparison mode %q (supported: original, optimized, diff)", s)
	}
}

// Result is a line-level comparison of two code versions.
type Result struct {
	Text         string
	AddedLines   int
	DeletedLines int
}

// Compare produces a line diff of original against optimized. Each output
// line is prefixed with "+ ", "- " or two spaces.
func Compare(original, optimized string) *Result {
	if original == "" || optimized == "" {
		return &Result{Text: noComparison}
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(original, optimized)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	res := &Result{}
	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				res.AddedLines++
			case diffmatchpatch.DiffDelete:
				res.DeletedLines++
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	res.Text = sb.String()
	return res
}

// View returns the text shown for a comparison mode.
func View(mode Mode, original, optimized string) string {
	switch mode {
	case ModeOriginal:
		return original
	case ModeDiff:
		return Compare(original, optimized).Text
	default:
		return optimized
	}
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
