// Package videoid extracts the 11 character video id from a video link
package videoid

import (
	"regexp"

	perr "chefbot/internal/platform/errors"
)

// Len is the fixed length of a video id
const Len = 11

// ReasonInvalidURL tags parse failures
const ReasonInvalidURL = "invalid_url_format"

// the host is not checked; any "v=" or "/" followed by 11 id characters matches
var idPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11}).*`)

// ID is a validated video id
type ID string

// String returns the raw id
func (id ID) String() string { return string(id) }

// Parse returns the first id found in link
// links without a match fail with ErrorCodeInvalidArgument and reason invalid_url_format
func Parse(link string) (ID, error) {
	m := idPattern.FindStringSubmatch(link)
	if len(m) < 2 {
		return "", perr.WithReason(
			perr.InvalidArgf("could not find a video id in %q", link),
			ReasonInvalidURL,
		)
	}
	return ID(m[1]), nil
}

// ThumbnailURL returns the default still image for id
func ThumbnailURL(id ID) string {
	return "https://img.youtube.com/vi/" + string(id) + "/0.jpg"
}
