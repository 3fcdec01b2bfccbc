// Package module wires the chef workflows and mounts their routes
package module

import (
	"chefbot/internal/core/keywordpack"
	"chefbot/internal/modkit"
	"chefbot/internal/modkit/httpkit"
	"chefbot/internal/services/chef/domain"
	chefhttp "chefbot/internal/services/chef/http"
	"chefbot/internal/services/chef/service"
)

// Ports exposed by the chef module
type Ports struct {
	Workflow domain.WorkflowPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	pack  *keywordpack.Pack
	ports Ports
}

// New constructs the chef module; it requires WithPorts(chef/domain.Ports)
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("chef"),
		modkit.WithPrefix("/chef"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("chef module: expected WithPorts(chef/domain.Ports)")
	}
	if ports.Transcripts == nil || ports.Summarizer == nil {
		panic("chef module: Ports missing Transcripts or Summarizer")
	}

	cfg := FromConfig(deps.Cfg)
	if overrides.KeywordsFile != "" {
		cfg.KeywordsFile = overrides.KeywordsFile
	}
	pack := overrides.Pack
	if pack == nil {
		pack = keywordpack.MustLoadFile(cfg.KeywordsFile)
	}

	m := &Module{deps: deps, pack: pack}
	m.ports = Ports{
		Workflow: service.New(ports.Transcripts, ports.Summarizer, pack.Keywords),
	}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		chefhttp.Register(r, chefhttp.Deps{Workflow: m.ports.Workflow})
		external(r)
	}
	m.built = b
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.built.Name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Pack returns the keyword pack the workflows filter with
func (m *Module) Pack() *keywordpack.Pack { return m.pack }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }
