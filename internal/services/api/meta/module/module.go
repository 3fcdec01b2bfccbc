// Package module wires meta endpoints into the API
package module

import (
	"time"

	"chefbot/internal/modkit"
	"chefbot/internal/modkit/httpkit"
	metahttp "chefbot/internal/services/api/meta/http"
)

// Options for the meta module
type Options struct {
	ServiceName string
	Config      metahttp.ConfigResponse
}

// Module implements modkit.Module
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module mounted at /meta
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	name := o.ServiceName
	if name == "" {
		name = "chefbot-api"
	}
	m := &Module{deps: deps, startedAt: time.Now()}

	external := b.Register
	b.Register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: name,
			StartedAt:   m.startedAt,
			Config:      o.Config,
		})
		external(r)
	}
	m.built = b
	return m
}

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) { m.built.Mount(r) }

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.built.Name }

// Ports satisfies modkit.Module; meta exposes none
func (m *Module) Ports() any { return nil }
