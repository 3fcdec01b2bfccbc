package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "chefbot/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel_AllBranches(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"", "info"},
		{"   nonsense   ", "info"},
	}
	for _, c := range cases {
		lvl := parseLevel(c.in)
		if strings.ToLower(lvl.String()) != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, lvl, c.want)
		}
	}
}

func TestInit_Get_Named_C(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:       "info",
		Format:      "console",
		Service:     "chefbot-test",
		Writer:      &buf,
		WithCaller:  true,
		SampleEvery: 2,
		StaticFields: map[string]string{
			"build": "test",
		},
	})

	// re-sample to N=1 so every line emits
	rv := Get().Sample(&zerolog.BasicSampler{N: 1})
	rp := &rv
	rp.Info().Str("k", "v").Msg("root-msg")

	nv := Named("youtube").Sample(&zerolog.BasicSampler{N: 1})
	np := &nv
	np.Info().Msg("named-msg")

	ctx := WithVideo(WithRequest(context.Background(), "req-123"), "dQw4w9WgXcQ")
	cv := C(ctx).Sample(&zerolog.BasicSampler{N: 1})
	cp := &cv
	cp.Info().Msg("ctx-msg")

	out := buf.String()
	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, "ctx-msg")
	kit.MustContain(t, out, "component=")
	kit.MustContain(t, out, "youtube")
	kit.MustContain(t, out, "request_id=")
	kit.MustContain(t, out, "req-123")
	kit.MustContain(t, out, "video_id=")
	kit.MustContain(t, out, "dQw4w9WgXcQ")
	kit.MustContain(t, out, "build=")
	kit.MustContain(t, out, "service=")
	kit.MustContain(t, out, "chefbot-test")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "svc-b")
	t.Setenv("LOG_COMPONENT", "comp-b")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", " 5 ")

	opt := FromEnv()
	if opt.Level != "warn" {
		t.Fatalf("FromEnv Level = %q, want warn", opt.Level)
	}
	if opt.Format != "json" || opt.Service != "svc-b" || opt.Component != "comp-b" {
		t.Fatalf("FromEnv fields mismatch: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample mismatch: %+v", opt)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_SERVICE", "")
	t.Setenv("LOG_CALLER", "")
	t.Setenv("LOG_SAMPLE_EVERY", "-3")

	opt := FromEnv()
	if opt.Level != "info" || opt.Service != "chefbot" {
		t.Fatalf("defaults mismatch: %+v", opt)
	}
	if opt.WithCaller || opt.SampleEvery != 0 {
		t.Fatalf("caller/sample defaults mismatch: %+v", opt)
	}
}

func TestScope_LaterValuesKeepEarlierOnes(t *testing.T) {
	ctx := WithRequest(context.Background(), "run-1")
	ctx = WithVideo(ctx, "abcdefghijk")
	ctx = WithRequest(ctx, "run-2")
	sc := scopeOf(ctx)
	if sc.requestID != "run-2" || sc.videoID != "abcdefghijk" {
		t.Fatalf("scope = %+v", sc)
	}
}

func TestWithRequest_EmptyValuesLeaveContextAlone(t *testing.T) {
	ctx := context.Background()
	if WithRequest(ctx, "") != ctx || WithVideo(ctx, "") != ctx {
		t.Fatalf("empty ids must not wrap the context")
	}
	v := C(ctx).Sample(&zerolog.BasicSampler{N: 1})
	p := &v
	p.Debug().Msg("no-fields")
}
