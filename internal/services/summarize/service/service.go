// Package service implements the summarizer
package service

import (
	"context"

	perr "chefbot/internal/platform/errors"
	"chefbot/internal/platform/logger"
	"chefbot/internal/services/summarize/domain"
)

// Service implements domain.SummarizerPort
type Service struct {
	Gen    domain.GeneratorPort
	Prompt string
}

// New constructs a summarizer that prefixes every text with prompt
func New(gen domain.GeneratorPort, prompt string) *Service {
	return &Service{Gen: gen, Prompt: prompt}
}

// Summarize sends Prompt+text in one request and returns the generated text as is
func (s *Service) Summarize(ctx context.Context, text string) (string, error) {
	out, err := s.Gen.Generate(ctx, s.Prompt+text)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("summarization failed")
		return "", perr.WithReason(
			perr.Wrap(err, perr.ErrorCodeUpstream, "failed to summarize transcript"),
			domain.ReasonSummarizationFailed,
		)
	}
	return out, nil
}
