package domain

import (
	"context"

	"chefbot/internal/core/videoid"
)

// FetcherPort fetches the caption track of one video in one language
type FetcherPort interface {
	Fetch(ctx context.Context, videoID, lang string) FetchResult
}

// RetrieverPort returns the transcript of a video, falling back across languages
type RetrieverPort interface {
	Retrieve(ctx context.Context, id videoid.ID) (Transcript, error)
}
