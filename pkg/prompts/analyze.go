package prompts

import "fmt"

const analyzeSchema = `{
  "timeComplexity": "O(n)",
  "spaceComplexity": "O(1)",
  "analysis": "Detailed analysis text",
  "bottlenecks": ["bottleneck1", "bottleneck2"],
  "bestCase": "O(1)",
  "averageCase": "O(n)",
  "worstCase": "O(n²)"
}`

func BuildAnalyzePrompt(code, language string) string {
	return fmt.Sprintf(`You are an algorithms expert reviewing %s code.

Analyze the following code and provide:
1. Time complexity in Big O notation
2. Space complexity in Big O notation
3. Detailed analysis of algorithm efficiency
4. Identification of bottlenecks
5. Best, average, and worst case scenarios

Respond only with JSON in this format:
%s

Code:
%s`, language, analyzeSchema, code)
}
