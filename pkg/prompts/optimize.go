package prompts

import "fmt"

const optimizeSchema = `{
  "optimizedCode": "optimized code here",
  "changes": [
    {"line": 1, "change": "description", "reason": "explanation"}
  ],
  "improvements": "summary of improvements",
  "qualityScore": 85
}`

func BuildOptimizePrompt(code, language string) string {
	return fmt.Sprintf(`You are a senior %s engineer optimizing code for performance and readability.

Optimize the following code and provide:
1. Optimized version of the code
2. List of changes made with explanations
3. Performance improvements
4. Code quality score from 0 to 100

Respond only with JSON in this format:
%s

Code:
%s`, language, optimizeSchema, code)
}
