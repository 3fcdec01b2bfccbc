// Package module wires the summarizer to the Gemini adapter
package module

import (
	"context"

	"chefbot/internal/adapters/gemini"
	"chefbot/internal/core/keywordpack"
	"chefbot/internal/modkit"
	"chefbot/internal/modkit/httpkit"
	"chefbot/internal/services/summarize/domain"
	"chefbot/internal/services/summarize/service"
)

// Ports exposed by the summarize module
type Ports struct {
	Summarizer domain.SummarizerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New builds the summarize module; WithPorts(domain.GeneratorPort) replaces the Gemini client
// it panics when no generator is injected and no API key is configured
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("summarize")}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if overrides.Model != "" {
		cfg.Model = overrides.Model
	}
	if overrides.RPS != 0 {
		cfg.RPS = overrides.RPS
	}
	if overrides.Burst != 0 {
		cfg.Burst = overrides.Burst
	}
	cfg.Prompt = overrides.Prompt
	if cfg.Prompt == "" {
		pack, err := keywordpack.Load()
		if err != nil {
			panic(err)
		}
		cfg.Prompt = pack.Prompt
	}

	var gen domain.GeneratorPort
	switch p := b.Ports.(type) {
	case nil:
		c, err := gemini.NewClient(context.Background(), gemini.Options{
			APIKey: apiKey(deps.Cfg),
			Model:  cfg.Model,
			RPS:    cfg.RPS,
			Burst:  cfg.Burst,
		})
		if err != nil {
			panic(err)
		}
		gen = c
	case domain.GeneratorPort:
		gen = p
	default:
		panic("summarize module: expected WithPorts(summarize/domain.GeneratorPort)")
	}

	return &Module{
		deps:  deps,
		opts:  cfg,
		ports: Ports{Summarizer: service.New(gen, cfg.Prompt)},
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "summarize" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the resolved options, for the meta config endpoint
func (m *Module) Options() Options { return m.opts }

// MountRoutes satisfies modkit.Module; summaries are reached through the chef routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
