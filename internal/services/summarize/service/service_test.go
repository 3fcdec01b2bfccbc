package service

import (
	"context"
	"errors"
	"testing"

	perr "chefbot/internal/platform/errors"
	"chefbot/internal/services/summarize/domain"
)

type recordingGen struct {
	prompts []string
	out     string
	err     error
}

func (g *recordingGen) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.out, g.err
}

func TestSummarize_PrefixesPromptWithoutSeparator(t *testing.T) {
	t.Parallel()
	g := &recordingGen{out: "  Ringkasan: masak pasta.\n"}
	s := New(g, "Summarize. Transcript: ")

	out, err := s.Summarize(context.Background(), "cook pasta")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if out != "  Ringkasan: masak pasta.\n" {
		t.Fatalf("output must be verbatim, got %q", out)
	}
	if len(g.prompts) != 1 || g.prompts[0] != "Summarize. Transcript: cook pasta" {
		t.Fatalf("prompts = %q", g.prompts)
	}
}

func TestSummarize_FailureIsTaggedAndNotRetried(t *testing.T) {
	t.Parallel()
	cause := errors.New("quota")
	g := &recordingGen{err: cause}

	_, err := New(g, "p").Summarize(context.Background(), "t")
	if perr.ReasonOf(err) != domain.ReasonSummarizationFailed || perr.CodeOf(err) != perr.ErrorCodeUpstream {
		t.Fatalf("err = %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost")
	}
	if len(g.prompts) != 1 {
		t.Fatalf("calls = %d", len(g.prompts))
	}
}
