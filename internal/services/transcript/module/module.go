// Package module wires the transcript service to the YouTube caption adapter
package module

import (
	"chefbot/internal/adapters/youtube"
	"chefbot/internal/modkit"
	"chefbot/internal/modkit/httpkit"
	"chefbot/internal/services/transcript/domain"
	"chefbot/internal/services/transcript/service"
)

// Ports exposed by the transcript module
type Ports struct {
	Retriever domain.RetrieverPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New builds the transcript module; WithPorts(domain.FetcherPort) replaces the YouTube client
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("transcript")}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if overrides.PrimaryLang != "" {
		cfg.PrimaryLang = overrides.PrimaryLang
	}
	if overrides.SecondaryLang != "" {
		cfg.SecondaryLang = overrides.SecondaryLang
	}
	if overrides.BaseURL != "" {
		cfg.BaseURL = overrides.BaseURL
	}
	if overrides.Timeout != 0 {
		cfg.Timeout = overrides.Timeout
	}

	var fetcher domain.FetcherPort
	switch p := b.Ports.(type) {
	case nil:
		fetcher = youtube.NewClient(youtube.Options{
			BaseURL:   cfg.BaseURL,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		})
	case domain.FetcherPort:
		fetcher = p
	default:
		panic("transcript module: expected WithPorts(transcript/domain.FetcherPort)")
	}

	return &Module{
		deps: deps,
		opts: cfg,
		ports: Ports{
			Retriever: service.New(fetcher, service.Config{
				Primary:   cfg.PrimaryLang,
				Secondary: cfg.SecondaryLang,
			}),
		},
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "transcript" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the resolved options, for the meta config endpoint
func (m *Module) Options() Options { return m.opts }

// MountRoutes satisfies modkit.Module; retrieval is reached through the chef routes
func (m *Module) MountRoutes(_ httpkit.Router) {}
