package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chefbot/internal/platform/config"
	phttp "chefbot/internal/platform/net/http"
	"chefbot/internal/platform/net/middleware"
	trdom "chefbot/internal/services/transcript/domain"

	"github.com/go-chi/chi/v5"
)

// captionFake serves English captions for pastaVID001, Indonesian only for nasiVID0001,
// and reports captions disabled for everything else
type captionFake struct{}

func (captionFake) Fetch(_ context.Context, videoID, lang string) trdom.FetchResult {
	seg := func(s ...string) []trdom.Segment {
		out := make([]trdom.Segment, 0, len(s))
		for _, x := range s {
			out = append(out, trdom.Segment{Text: x})
		}
		return out
	}
	switch {
	case videoID == "pastaVID001" && lang == "en":
		return trdom.FetchResult{Kind: trdom.FetchOK, Segments: seg("in my kitchen", "we cook pasta")}
	case videoID == "ruinsVID001" && lang == "en":
		return trdom.FetchResult{Kind: trdom.FetchOK, Segments: seg("exploring", "ancient ruins")}
	case videoID == "nasiVID0001" && lang == "id":
		return trdom.FetchResult{Kind: trdom.FetchOK, Segments: seg("resep makanan", "nasi goreng")}
	case videoID == "nasiVID0001":
		return trdom.FetchResult{Kind: trdom.FetchNotFound}
	}
	return trdom.FetchResult{Kind: trdom.FetchDisabled}
}

type countingGen struct{ calls int }

func (g *countingGen) Generate(_ context.Context, prompt string) (string, error) {
	g.calls++
	return "RINGKASAN(" + prompt[strings.LastIndex(prompt, "Transcript: ")+len("Transcript: "):] + ")", nil
}

func newServer(t *testing.T) (*httptest.Server, *countingGen) {
	t.Helper()
	gen := &countingGen{}
	mux := chi.NewRouter()
	mux.Use(middleware.Defaults(5 * time.Second)...)
	Mount(phttp.AdaptChi(mux), Options{
		Config:      config.New(),
		ServiceName: "chefbot-api-test",
		Fetcher:     captionFake{},
		Generator:   gen,
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, gen
}

type envelope struct {
	StatusCode int            `json:"status_code"`
	Reason     string         `json:"reason"`
	RequestID  string         `json:"request_id"`
	Data       map[string]any `json:"data"`
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, envelope, http.Header) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return resp.StatusCode, env, resp.Header
}

func TestAPI_EndToEnd(t *testing.T) {
	srv, gen := newServer(t)

	code, env, hdr := call(t, srv, http.MethodPost, "/api/v1/chef/summarize", `{"url":"https://www.youtube.com/watch?v=pastaVID001"}`)
	if code != http.StatusOK || env.Data["summary"] != "RINGKASAN(in my kitchen we cook pasta)" {
		t.Fatalf("summarize: %d %+v", code, env)
	}
	if env.RequestID == "" || hdr.Get("X-Request-ID") != env.RequestID {
		t.Fatalf("request id not propagated: env=%q header=%q", env.RequestID, hdr.Get("X-Request-ID"))
	}

	code, env, _ = call(t, srv, http.MethodPost, "/api/v1/chef/transcript", `{"url":"youtu.be/nasiVID0001"}`)
	if code != http.StatusOK || env.Data["transcript"] != "resep makanan nasi goreng" || env.Data["language"] != "id" {
		t.Fatalf("fallback transcript: %d %+v", code, env)
	}

	code, env, _ = call(t, srv, http.MethodPost, "/api/v1/chef/summarize", `{"url":"youtu.be/ruinsVID001"}`)
	if code != http.StatusOK || env.Data["outcome"] != "not_culinary" {
		t.Fatalf("ruins: %d %+v", code, env)
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls = %d, want 1", gen.calls)
	}

	code, env, _ = call(t, srv, http.MethodPost, "/api/v1/chef/summarize", `{"url":"youtu.be/offVIDEO001"}`)
	if code != http.StatusNotFound || env.Reason != "transcripts_disabled" {
		t.Fatalf("disabled: %d %+v", code, env)
	}

	code, env, _ = call(t, srv, http.MethodPost, "/api/v1/chef/transcript", `{"url":""}`)
	if code != http.StatusBadRequest || env.Reason != "missing_input" {
		t.Fatalf("missing: %d %+v", code, env)
	}

	code, env, _ = call(t, srv, http.MethodGet, "/api/v1/meta/config", "")
	if code != http.StatusOK || env.Data["model"] != "gemini-2.5-flash" || env.Data["primary_lang"] != "en" {
		t.Fatalf("config: %d %+v", code, env)
	}
	if env.Data["keyword_source"] != "embedded" {
		t.Fatalf("keyword source = %v", env.Data["keyword_source"])
	}
}

func TestCompose_WorkflowWithoutHTTP(t *testing.T) {
	app := Compose(Options{Config: config.New(), Fetcher: captionFake{}, Generator: &countingGen{}})
	res, err := app.Workflow().ShowTranscript(context.Background(), "https://youtu.be/pastaVID001")
	if err != nil || res.Transcript != "in my kitchen we cook pasta" {
		t.Fatalf("res = %+v err = %v", res, err)
	}
	if len(app.Modules()) != 4 {
		t.Fatalf("modules = %d", len(app.Modules()))
	}
}
