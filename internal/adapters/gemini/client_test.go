package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "chefbot/internal/platform/errors"

	"google.golang.org/genai"
)

type fakeGen struct {
	resp   *genai.GenerateContentResponse
	err    error
	calls  int
	model  string
	prompt string
}

func (f *fakeGen) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResp(parts ...string) *genai.GenerateContentResponse {
	ps := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		ps = append(ps, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: ps}}},
	}
}

func TestGenerate_ConcatenatesParts(t *testing.T) {
	t.Parallel()
	g := &fakeGen{resp: textResp("Resep ", "pasta ", "sederhana.")}
	c := newClient(g, Options{})

	out, err := c.Generate(context.Background(), "Summarize: cook pasta")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "Resep pasta sederhana." {
		t.Fatalf("out = %q", out)
	}
	if g.model != DefaultModel || c.Model() != DefaultModel {
		t.Fatalf("model = %q", g.model)
	}
	if g.prompt != "Summarize: cook pasta" {
		t.Fatalf("prompt = %q", g.prompt)
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		gen  *fakeGen
	}{
		{"transport", &fakeGen{err: errors.New("quota exceeded")}},
		{"nil response", &fakeGen{}},
		{"no candidates", &fakeGen{resp: &genai.GenerateContentResponse{}}},
		{"nil content", &fakeGen{resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}}},
		{"empty text", &fakeGen{resp: textResp("")}},
	}
	for _, tc := range cases {
		_, err := newClient(tc.gen, Options{Model: "gemini-test"}).Generate(context.Background(), "p")
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if perr.CodeOf(err) != perr.ErrorCodeUpstream {
			t.Fatalf("%s: code = %v", tc.name, perr.CodeOf(err))
		}
		if tc.gen.calls != 1 {
			t.Fatalf("%s: calls = %d, never retried", tc.name, tc.gen.calls)
		}
	}
}

func TestGenerate_LimiterHonoursContext(t *testing.T) {
	t.Parallel()
	g := &fakeGen{resp: textResp("ok")}
	c := newClient(g, Options{RPS: 0.001, Burst: 1})

	if _, err := c.Generate(context.Background(), "first"); err != nil {
		t.Fatalf("first call: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Generate(ctx, "second")
	if perr.CodeOf(err) != perr.ErrorCodeTooManyRequests {
		t.Fatalf("err = %v", err)
	}
	if g.calls != 1 {
		t.Fatalf("generator reached while throttled: %d", g.calls)
	}
}

func TestNewClient_RequiresKey(t *testing.T) {
	t.Parallel()
	if _, err := NewClient(context.Background(), Options{APIKey: "  "}); perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("err = %v", err)
	}
}

func TestNewClient_ModelOverride(t *testing.T) {
	t.Parallel()
	if m := newClient(&fakeGen{}, Options{Model: " gemini-2.5-pro "}).Model(); m != "gemini-2.5-pro" {
		t.Fatalf("model = %q", m)
	}
}
