package domain

import (
	"context"

	sumdom "chefbot/internal/services/summarize/domain"
	trdom "chefbot/internal/services/transcript/domain"
)

// Ports the chef module consumes from the transcript and summarize modules
type Ports struct {
	Transcripts trdom.RetrieverPort
	Summarizer  sumdom.SummarizerPort
}

// WorkflowPort runs the two chef workflows
type WorkflowPort interface {
	Summarize(ctx context.Context, link string) (Result, error)
	ShowTranscript(ctx context.Context, link string) (Result, error)
}
