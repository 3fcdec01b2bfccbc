// Package youtube fetches caption tracks by reading the player response embedded in a
// video's watch page and then downloading the timedtext XML of the chosen track
package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	perr "chefbot/internal/platform/errors"
	"chefbot/internal/platform/logger"
	"chefbot/internal/services/transcript/domain"
)

const (
	baseURLDefault = "https://www.youtube.com"
	defaultTimeout = 20 * time.Second
	defaultUA      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36"

	maxPageBytes  = 6 << 20
	maxTrackBytes = 2 << 20

	playerMarker = "ytInitialPlayerResponse = "
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches caption tracks; it implements domain.FetcherPort
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("youtube"),
	}
}

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		Renderer struct {
			Tracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type timedText struct {
	Lines []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Text  string `xml:",chardata"`
	} `xml:"text"`
}

// Fetch returns the segments of videoID's caption track in lang
func (c *Client) Fetch(ctx context.Context, videoID, lang string) domain.FetchResult {
	start := time.Now()
	res := c.fetch(ctx, videoID, lang)

	evt := c.log.Debug()
	if res.Kind == domain.FetchFailed {
		evt = c.log.Warn().Err(res.Err)
	}
	evt.Str("video_id", videoID).
		Str("lang", lang).
		Str("kind", res.Kind.String()).
		Int("segments", len(res.Segments)).
		Dur("latency", time.Since(start)).
		Msg("youtube caption fetch")
	return res
}

func (c *Client) fetch(ctx context.Context, videoID, lang string) domain.FetchResult {
	pr, err := c.playerResponse(ctx, videoID)
	if err != nil {
		return failed(err)
	}
	if ps := pr.PlayabilityStatus; ps != nil && ps.Status != "" && ps.Status != "OK" {
		return failed(perr.Upstreamf("youtube video %s not playable: %s %s", videoID, ps.Status, ps.Reason))
	}
	if pr.Captions == nil || len(pr.Captions.Renderer.Tracks) == 0 {
		return domain.FetchResult{
			Kind: domain.FetchDisabled,
			Err:  perr.NotFoundf("youtube video %s has captions disabled", videoID),
		}
	}

	track, ok := pickTrack(pr.Captions.Renderer.Tracks, lang)
	if !ok {
		return domain.FetchResult{
			Kind: domain.FetchNotFound,
			Err:  perr.NotFoundf("youtube video %s has no %q captions", videoID, lang),
		}
	}

	segs, err := c.timedText(ctx, track.BaseURL)
	if err != nil {
		return failed(err)
	}
	return domain.FetchResult{Kind: domain.FetchOK, Segments: segs}
}

func failed(err error) domain.FetchResult {
	return domain.FetchResult{Kind: domain.FetchFailed, Err: err}
}

// pickTrack prefers a manual track in lang, then an auto-generated one
func pickTrack(tracks []captionTrack, lang string) (captionTrack, bool) {
	for _, t := range tracks {
		if t.LanguageCode == lang && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.LanguageCode == lang {
			return t, true
		}
	}
	return captionTrack{}, false
}

func (c *Client) playerResponse(ctx context.Context, videoID string) (*playerResponse, error) {
	body, err := c.get(ctx, c.opts.BaseURL+"/watch?v="+url.QueryEscape(videoID), maxPageBytes)
	if err != nil {
		return nil, err
	}
	idx := bytes.Index(body, []byte(playerMarker))
	if idx < 0 {
		return nil, perr.Upstreamf("youtube watch page for %s has no player response", videoID)
	}

	// Decode stops after the first JSON value, so the trailing script is ignored
	var pr playerResponse
	dec := json.NewDecoder(bytes.NewReader(body[idx+len(playerMarker):]))
	if err := dec.Decode(&pr); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "youtube player response for %s is malformed", videoID)
	}
	return &pr, nil
}

func (c *Client) timedText(ctx context.Context, rawURL string) ([]domain.Segment, error) {
	u, err := c.resolve(rawURL)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, u, maxTrackBytes)
	if err != nil {
		return nil, err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUpstream, "youtube timedtext is malformed")
	}

	segs := make([]domain.Segment, 0, len(tt.Lines))
	for _, l := range tt.Lines {
		if l.Text == "" {
			continue
		}
		segs = append(segs, domain.Segment{
			// entities arrive double-escaped (&amp;#39;)
			Text:     html.UnescapeString(l.Text),
			Start:    parseSeconds(l.Start),
			Duration: parseSeconds(l.Dur),
		})
	}
	return segs, nil
}

// resolve makes relative track urls absolute against BaseURL
func (c *Client) resolve(raw string) (string, error) {
	ref, err := url.Parse(raw)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "youtube caption track url is malformed")
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	base, err := url.Parse(c.opts.BaseURL)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeInvalidArgument, "youtube base url is malformed")
	}
	return base.ResolveReference(ref).String(), nil
}

// get issues a GET and returns at most limit bytes of a 200 body
func (c *Client) get(ctx context.Context, u string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "youtube new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "youtube request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "youtube rate limited")
	case resp.StatusCode != http.StatusOK:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, perr.Upstreamf("youtube unexpected status %d body %s", resp.StatusCode, string(tail))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUpstream, "youtube read body failed")
	}
	return body, nil
}

func parseSeconds(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
