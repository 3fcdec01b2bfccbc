// Package logger provides a zerolog wrapper with opinionated defaults and
// request-scoped logging support
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures the logger
type Options struct {
	Level        string
	Format       string
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// env reads LOG_* keys straight from the process env
// config depends on this package, so it cannot be used here
func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv("LOG_" + key)); v != "" {
		return v
	}
	return def
}

// FromEnv builds Options from LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_COMPONENT,
// LOG_CALLER and LOG_SAMPLE_EVERY
func FromEnv() Options {
	caller, _ := strconv.ParseBool(env("CALLER", "false"))
	sample, err := strconv.Atoi(env("SAMPLE_EVERY", "0"))
	if err != nil || sample < 0 {
		sample = 0
	}
	return Options{
		Level:       strings.ToLower(env("LEVEL", "info")),
		Format:      strings.ToLower(env("FORMAT", "console")),
		Service:     env("SERVICE", "chefbot"),
		Component:   env("COMPONENT", ""),
		WithCaller:  caller,
		SampleEvery: sample,
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Get returns the process-wide root logger as a pointer
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init configures zerolog and builds the root logger, safe to call once
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		var w io.Writer = os.Stderr
		if opt.Writer != nil {
			w = opt.Writer
		}
		if opt.Format == "console" {
			w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		}

		ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			ctx = ctx.Str("go_version", bi.GoVersion)
		}
		if opt.Service != "" {
			ctx = ctx.Str("service", opt.Service)
		}
		if opt.Component != "" {
			ctx = ctx.Str("component", opt.Component)
		}
		for k, v := range opt.StaticFields {
			ctx = ctx.Str(k, v)
		}

		log := ctx.Logger()
		if opt.WithCaller {
			log = log.With().Caller().Logger()
		}
		if opt.SampleEvery > 1 {
			log = log.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}

		root.Store(&log)
		inited.Store(true)
	})
}

// parseLevel accepts zerolog level names plus "warning"; anything else is info
func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// scope is the per-request logging state carried on a context
type scope struct {
	requestID string
	videoID   string
}

type scopeKey struct{}

func scopeOf(ctx context.Context) scope {
	sc, _ := ctx.Value(scopeKey{}).(scope)
	return sc
}

// WithRequest annotates ctx with the request (or CLI run) id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	sc := scopeOf(ctx)
	sc.requestID = reqID
	return context.WithValue(ctx, scopeKey{}, sc)
}

// WithVideo annotates ctx with the video id being worked on
func WithVideo(ctx context.Context, videoID string) context.Context {
	if videoID == "" {
		return ctx
	}
	sc := scopeOf(ctx)
	sc.videoID = videoID
	return context.WithValue(ctx, scopeKey{}, sc)
}

// C returns a child logger carrying ctx's request_id and video_id
func C(ctx context.Context) *Logger {
	sc := scopeOf(ctx)
	if sc == (scope{}) {
		return Get()
	}
	b := Get().With()
	if sc.requestID != "" {
		b = b.Str("request_id", sc.requestID)
	}
	if sc.videoID != "" {
		b = b.Str("video_id", sc.videoID)
	}
	ll := b.Logger()
	return &ll
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}
