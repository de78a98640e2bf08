package formatter

import "github.com/helmcode/codeopti/pkg/model"

type Feedback struct {
	Band            string
	Message         string
	Recommendations []string
}

var bandMessages = map[string]string{
	"excellent": "Excellent code quality! Your code follows best practices and is highly optimized.",
	"good":      "Good code quality. Minor improvements could be made for better performance.",
	"average":   "Average code quality. Consider the optimization suggestions to improve performance and readability.",
	"poor":      "Code quality needs improvement. Please review the optimization suggestions for better practices.",
}

// QualityFeedback returns the banded message for score plus every
// recommendation whose threshold the score falls under.
func QualityFeedback(score int) Feedback {
	band := model.QualityBand(score)
	score = model.ClampScore(score)

	var recs []string
	if score < 70 {
		recs = append(recs,
			"Consider using more efficient algorithms",
			"Optimize nested loops and recursive calls")
	}
	if score < 80 {
		recs = append(recs,
			"Improve variable naming and code structure",
			"Add proper error handling")
	}
	if score < 90 {
		recs = append(recs,
			"Consider edge cases and input validation",
			"Add meaningful comments for complex logic")
	}
	return Feedback{Band: band, Message: bandMessages[band], Recommendations: recs}
}
