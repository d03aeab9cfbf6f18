package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCoachPrompt creates the prompt for turning an insights report into
// tailored job-search advice.
func (pb *PromptBuilder) BuildCoachPrompt(reportNarrative string) string {
	return fmt.Sprintf(`You are an experienced job-search coach reviewing a candidate's application statistics.

INSIGHTS REPORT:
%s

Based on the report above, give the candidate concrete advice covering:
1. Which application channels to double down on and which to drop
2. What to change about their resume strategy
3. How to handle slow or silent companies

Return ONLY the advice as 3-5 short paragraphs of plain text, no JSON and no markdown headers. Be specific and reference the numbers from the report.`, reportNarrative)
}
