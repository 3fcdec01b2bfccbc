// Package domain holds the chef workflow result and failure kinds
package domain

import (
	"chefbot/internal/core/videoid"
	perr "chefbot/internal/platform/errors"
	sumdom "chefbot/internal/services/summarize/domain"
	trdom "chefbot/internal/services/transcript/domain"
)

// Action names the workflow that produced a Result
type Action string

// Workflows
const (
	ActionSummarize  Action = "summarize"
	ActionTranscript Action = "transcript"
)

// Outcome of a completed workflow
const (
	OutcomeOK          = "ok"
	OutcomeNotCulinary = "not_culinary"
)

// Reasons owned by the workflow itself
const (
	ReasonMissingInput = "missing_input"
	ReasonNotCulinary  = OutcomeNotCulinary
)

// WarningNotCulinary is shown when the transcript fails the keyword filter
const WarningNotCulinary = "This video does not look like it is about food or cooking."

// Result is what both workflows return to the transport layer
// Outcome "not_culinary" carries Warning and neither Summary nor Transcript
type Result struct {
	Action       Action `json:"action"`
	VideoID      string `json:"video_id"`
	ThumbnailURL string `json:"thumbnail_url"`
	Outcome      string `json:"outcome"`
	Warning      string `json:"warning,omitempty"`
	Summary      string `json:"summary,omitempty"`
	Transcript   string `json:"transcript,omitempty"`
	Language     string `json:"language,omitempty"`
}

// Kind classifies a workflow failure
type Kind uint8

// Failure kinds
const (
	KindNone Kind = iota
	KindMissingInput
	KindInvalidURLFormat
	KindTranscriptsDisabled
	KindNoTranscriptAvailable
	KindRetrievalFailed
	KindNotCulinary
	KindSummarizationError
	KindUnknown
)

var kindNames = map[Kind]string{
	KindNone:                  "none",
	KindMissingInput:          ReasonMissingInput,
	KindInvalidURLFormat:      videoid.ReasonInvalidURL,
	KindTranscriptsDisabled:   trdom.ReasonTranscriptsDisabled,
	KindNoTranscriptAvailable: trdom.ReasonNoTranscriptAvailable,
	KindRetrievalFailed:       trdom.ReasonRetrievalFailed,
	KindNotCulinary:           ReasonNotCulinary,
	KindSummarizationError:    sumdom.ReasonSummarizationFailed,
	KindUnknown:               "unknown",
}

// String returns the wire reason of k
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// KindOf recovers the workflow kind from an error's reason tag
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	reason := perr.ReasonOf(err)
	for k, s := range kindNames {
		if k != KindNone && k != KindUnknown && s == reason {
			return k
		}
	}
	return KindUnknown
}

// Message is the user-facing text for a failure kind
func (k Kind) Message() string {
	switch k {
	case KindMissingInput:
		return "Please enter a video link."
	case KindInvalidURLFormat:
		return "Could not find a video id in that link."
	case KindTranscriptsDisabled:
		return "Transcripts are disabled for this video."
	case KindNoTranscriptAvailable:
		return "No transcript is available for this video in a supported language."
	case KindRetrievalFailed:
		return "Something went wrong while fetching the transcript."
	case KindNotCulinary:
		return WarningNotCulinary
	case KindSummarizationError:
		return "Something went wrong while summarizing the transcript."
	case KindNone:
		return ""
	default:
		return "Something went wrong."
	}
}
