// Package domain holds the summarizer ports
package domain

import "context"

// ReasonSummarizationFailed tags any generation failure
const ReasonSummarizationFailed = "summarization_failed"

// GeneratorPort produces text for a prompt (the Gemini adapter in production)
type GeneratorPort interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SummarizerPort summarizes a transcript text
type SummarizerPort interface {
	Summarize(ctx context.Context, text string) (string, error)
}
