// Package gemini is a thin text-generation client over google.golang.org/genai
package gemini

import (
	"context"
	"strings"
	"time"

	perr "chefbot/internal/platform/errors"
	"chefbot/internal/platform/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is used when Options.Model is empty
const DefaultModel = "gemini-2.5-flash"

// Options configures the Client
type Options struct {
	APIKey string
	Model  string
	RPS    float64 // <= 0 disables pacing
	Burst  int
}

// generator is the slice of *genai.Models the client uses
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client generates text with a single model
type Client struct {
	gen     generator
	model   string
	limiter *rate.Limiter
	log     logger.Logger
}

// NewClient dials the Gemini API backend
func NewClient(ctx context.Context, o Options) (*Client, error) {
	if strings.TrimSpace(o.APIKey) == "" {
		return nil, perr.InvalidArgf("gemini api key is required")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  o.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "gemini client init failed")
	}
	return newClient(gc.Models, o), nil
}

func newClient(g generator, o Options) *Client {
	model := strings.TrimSpace(o.Model)
	if model == "" {
		model = DefaultModel
	}
	var lim *rate.Limiter
	if o.RPS > 0 {
		burst := o.Burst
		if burst <= 0 {
			burst = 1
		}
		lim = rate.NewLimiter(rate.Limit(o.RPS), burst)
	}
	return &Client{
		gen:     g,
		model:   model,
		limiter: lim,
		log:     *logger.Named("gemini"),
	}
}

// Model returns the model identifier requests are sent to
func (c *Client) Model() string { return c.model }

// Generate sends prompt as a single user turn and returns the concatenated text parts
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", perr.Wrap(err, perr.ErrorCodeTooManyRequests, "gemini rate limiter wait aborted")
		}
	}

	start := time.Now()
	resp, err := c.gen.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		c.log.Warn().Err(err).Str("model", c.model).Dur("latency", time.Since(start)).Msg("gemini generate failed")
		return "", perr.Wrap(err, perr.ErrorCodeUpstream, "gemini generate failed")
	}

	text := responseText(resp)
	if text == "" {
		return "", perr.Upstreamf("gemini returned no text")
	}
	c.log.Debug().
		Str("model", c.model).
		Int("prompt_chars", len(prompt)).
		Int("chars", len(text)).
		Dur("latency", time.Since(start)).
		Msg("gemini generate")
	return text, nil
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range cand.Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
