// Package service runs the summarize and show-transcript workflows
package service

import (
	"context"
	"strings"

	"chefbot/internal/core/relevance"
	"chefbot/internal/core/videoid"
	perr "chefbot/internal/platform/errors"
	"chefbot/internal/platform/logger"
	"chefbot/internal/services/chef/domain"
	sumdom "chefbot/internal/services/summarize/domain"
	trdom "chefbot/internal/services/transcript/domain"
)

// Service implements domain.WorkflowPort
// it holds no mutable state; every call parses and retrieves from scratch
type Service struct {
	Transcripts trdom.RetrieverPort
	Summarizer  sumdom.SummarizerPort
	Keywords    relevance.KeywordSet
}

// New constructs the workflow service
func New(tr trdom.RetrieverPort, sum sumdom.SummarizerPort, kw relevance.KeywordSet) *Service {
	return &Service{Transcripts: tr, Summarizer: sum, Keywords: kw}
}

// Summarize returns a model summary of the video behind link
func (s *Service) Summarize(ctx context.Context, link string) (domain.Result, error) {
	res, tr, err := s.prepare(ctx, domain.ActionSummarize, link)
	if err != nil || res.Outcome == domain.OutcomeNotCulinary {
		return res, err
	}

	summary, err := s.Summarizer.Summarize(ctx, tr.Text)
	if err != nil {
		return res, err
	}
	res.Outcome = domain.OutcomeOK
	res.Summary = summary
	return res, nil
}

// ShowTranscript returns the raw transcript of the video behind link
func (s *Service) ShowTranscript(ctx context.Context, link string) (domain.Result, error) {
	res, tr, err := s.prepare(ctx, domain.ActionTranscript, link)
	if err != nil || res.Outcome == domain.OutcomeNotCulinary {
		return res, err
	}
	res.Outcome = domain.OutcomeOK
	res.Transcript = tr.Text
	return res, nil
}

// prepare runs the shared steps: input check, parse, retrieve and filter
func (s *Service) prepare(ctx context.Context, action domain.Action, link string) (domain.Result, trdom.Transcript, error) {
	res := domain.Result{Action: action}

	link = strings.TrimSpace(link)
	if link == "" {
		return res, trdom.Transcript{}, perr.WithReason(
			perr.New(perr.ErrorCodeValidation, domain.KindMissingInput.Message()),
			domain.ReasonMissingInput,
		)
	}

	id, err := videoid.Parse(link)
	if err != nil {
		return res, trdom.Transcript{}, err
	}
	res.VideoID = id.String()
	res.ThumbnailURL = videoid.ThumbnailURL(id)

	ctx = logger.WithVideo(ctx, id.String())
	log := logger.C(ctx)

	tr, err := s.Transcripts.Retrieve(ctx, id)
	if err != nil {
		log.Info().Str("action", string(action)).Str("kind", domain.KindOf(err).String()).Msg("workflow stopped")
		return res, trdom.Transcript{}, err
	}
	res.Language = tr.Language

	if !relevance.IsRelevant(tr.Text, s.Keywords) {
		log.Info().Str("action", string(action)).Msg("transcript is not culinary")
		res.Outcome = domain.OutcomeNotCulinary
		res.Warning = domain.WarningNotCulinary
		return res, tr, nil
	}
	return res, tr, nil
}
