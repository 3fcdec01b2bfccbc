// Package service implements transcript retrieval with a secondary language fallback
package service

import (
	"context"
	"strings"

	"chefbot/internal/core/videoid"
	perr "chefbot/internal/platform/errors"
	"chefbot/internal/platform/logger"
	"chefbot/internal/services/transcript/domain"
)

const (
	defaultPrimary   = "en"
	defaultSecondary = "id"
)

// Config for the transcript service
type Config struct {
	Primary   string
	Secondary string // empty disables the fallback
}

// Service implements domain.RetrieverPort
type Service struct {
	Fetcher domain.FetcherPort
	Cfg     Config
}

// New constructs a new transcript service
func New(f domain.FetcherPort, cfg Config) *Service {
	if strings.TrimSpace(cfg.Primary) == "" {
		cfg.Primary = defaultPrimary
	}
	cfg.Secondary = strings.TrimSpace(cfg.Secondary)
	if cfg.Secondary == cfg.Primary {
		cfg.Secondary = ""
	}
	return &Service{Fetcher: f, Cfg: cfg}
}

// Retrieve returns the transcript of id in the primary language, or the secondary one
// when the video has captions but none in the primary language
func (s *Service) Retrieve(ctx context.Context, id videoid.ID) (domain.Transcript, error) {
	log := logger.C(ctx)

	lang := s.Cfg.Primary
	res := s.Fetcher.Fetch(ctx, id.String(), lang)

	if res.Kind == domain.FetchNotFound && s.Cfg.Secondary != "" {
		log.Debug().Err(res.Err).
			Str("from", lang).
			Str("to", s.Cfg.Secondary).
			Msg("transcript language fallback")
		lang = s.Cfg.Secondary
		res = s.Fetcher.Fetch(ctx, id.String(), lang)
		if res.Kind != domain.FetchOK {
			// any secondary miss means no transcript; failures are only reported for the primary attempt
			log.Debug().Err(res.Err).
				Str("lang", lang).
				Str("kind", res.Kind.String()).
				Msg("secondary transcript attempt failed")
			res.Kind = domain.FetchNotFound
		}
	}

	switch res.Kind {
	case domain.FetchOK:
	case domain.FetchDisabled:
		return domain.Transcript{}, reason(res.Err, perr.ErrorCodeNotFound,
			"transcripts are disabled for this video", domain.ReasonTranscriptsDisabled)
	case domain.FetchNotFound:
		return domain.Transcript{}, reason(res.Err, perr.ErrorCodeNotFound,
			"no transcript is available for this video", domain.ReasonNoTranscriptAvailable)
	default:
		log.Warn().Err(res.Err).Str("lang", lang).Msg("transcript retrieval failed")
		return domain.Transcript{}, reason(res.Err, perr.ErrorCodeUpstream,
			"failed to retrieve transcript", domain.ReasonRetrievalFailed)
	}

	text := domain.Join(res.Segments)
	if strings.TrimSpace(text) == "" {
		return domain.Transcript{}, reason(nil, perr.ErrorCodeNotFound,
			"transcript is empty", domain.ReasonNoTranscriptAvailable)
	}

	log.Debug().
		Str("lang", lang).
		Int("segments", len(res.Segments)).
		Int("chars", len(text)).
		Msg("transcript retrieved")

	return domain.Transcript{
		VideoID:  id.String(),
		Language: lang,
		Segments: res.Segments,
		Text:     text,
	}, nil
}

func reason(cause error, code perr.ErrorCode, msg, tag string) error {
	var err error
	if cause != nil {
		err = perr.Wrap(cause, code, msg)
	} else {
		err = perr.New(code, msg)
	}
	return perr.WithReason(err, tag)
}
