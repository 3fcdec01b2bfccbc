package module

import (
	"context"
	"testing"
	"time"

	"chefbot/internal/core/videoid"
	"chefbot/internal/modkit"
	mmodule "chefbot/internal/modkit/module"
	"chefbot/internal/platform/config"
	kit "chefbot/internal/platform/testkit"
	"chefbot/internal/services/transcript/domain"
)

type langFetcher struct{ calls []string }

func (f *langFetcher) Fetch(_ context.Context, _ string, lang string) domain.FetchResult {
	f.calls = append(f.calls, lang)
	if lang == "id" {
		return domain.FetchResult{Kind: domain.FetchOK, Segments: []domain.Segment{{Text: "masak"}}}
	}
	return domain.FetchResult{Kind: domain.FetchNotFound}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("CORE_CHEF_PRIMARY_LANG", "id")
	t.Setenv("CORE_CHEF_SECONDARY_LANG", "en")
	t.Setenv("SERVICE_YOUTUBE_BASE_URL", "http://127.0.0.1:9")
	t.Setenv("SERVICE_YOUTUBE_TIMEOUT", "3s")

	o := FromConfig(config.New())
	if o.PrimaryLang != "id" || o.SecondaryLang != "en" {
		t.Fatalf("langs = %+v", o)
	}
	if o.BaseURL != "http://127.0.0.1:9" || o.Timeout != 3*time.Second {
		t.Fatalf("youtube = %+v", o)
	}
}

func TestNew_UsesInjectedFetcherAndOverrides(t *testing.T) {
	f := &langFetcher{}
	m := New(modkit.Deps{Cfg: config.New()}, Options{PrimaryLang: "en", SecondaryLang: "id"}, modkit.WithPorts[domain.FetcherPort](f))

	r := mmodule.MustPortsOf[domain.RetrieverPort](m)
	tr, err := r.Retrieve(context.Background(), videoid.ID("abcdefghijk"))
	if err != nil || tr.Language != "id" || tr.Text != "masak" {
		t.Fatalf("tr = %+v err = %v", tr, err)
	}
	if len(f.calls) != 2 {
		t.Fatalf("calls = %v", f.calls)
	}
	if m.Name() != "transcript" || m.Options().PrimaryLang != "en" {
		t.Fatalf("name/options mismatch")
	}
	m.MountRoutes(nil)
}

func TestNew_DefaultsToYouTubeClient(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New()}, Options{})
	if _, ok := m.Ports().(Ports); !ok {
		t.Fatalf("ports = %T", m.Ports())
	}
}

func TestNew_PanicsOnWrongPorts(t *testing.T) {
	kit.MustPanic(t, func() {
		_ = New(modkit.Deps{Cfg: config.New()}, Options{}, modkit.WithPorts("nope"))
	})
}
