// Package domain holds the transcript retrieval types and ports
package domain

import "strings"

// Segment is one caption cue; timing is carried for callers that want it
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Transcript is the full text of a video in the language that was found
type Transcript struct {
	VideoID  string    `json:"video_id"`
	Language string    `json:"language"`
	Segments []Segment `json:"segments,omitempty"`
	Text     string    `json:"text"`
}

// Join concatenates segment texts with a single space in the order given
func Join(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// FetchKind classifies one attempt to fetch a track in one language
type FetchKind uint8

const (
	// FetchOK means segments were returned
	FetchOK FetchKind = iota
	// FetchDisabled means the video has captions turned off entirely
	FetchDisabled
	// FetchNotFound means captions exist but not in the requested language
	FetchNotFound
	// FetchFailed is any other failure (network, unplayable video, parse errors)
	FetchFailed
)

// String returns the log-friendly name of k
func (k FetchKind) String() string {
	switch k {
	case FetchOK:
		return "ok"
	case FetchDisabled:
		return "disabled"
	case FetchNotFound:
		return "not_found"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchResult is the explicit outcome of a single-language fetch
// Err is set for FetchFailed and may be set for the other non-OK kinds
type FetchResult struct {
	Kind     FetchKind
	Segments []Segment
	Err      error
}

// Reasons attached to retrieval errors
const (
	ReasonTranscriptsDisabled   = "transcripts_disabled"
	ReasonNoTranscriptAvailable = "no_transcript_available"
	ReasonRetrievalFailed       = "retrieval_failed"
)
