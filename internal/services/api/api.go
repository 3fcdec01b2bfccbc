// Package api composes the service modules and mounts the HTTP API
package api

import (
	"time"

	"chefbot/internal/core/keywordpack"
	"chefbot/internal/modkit"
	"chefbot/internal/modkit/httpkit"
	"chefbot/internal/modkit/module"
	"chefbot/internal/platform/config"
	"chefbot/internal/platform/logger"
	phttp "chefbot/internal/platform/net/http"

	metahttp "chefbot/internal/services/api/meta/http"
	metamod "chefbot/internal/services/api/meta/module"
	chefdom "chefbot/internal/services/chef/domain"
	chefmod "chefbot/internal/services/chef/module"
	sumdom "chefbot/internal/services/summarize/domain"
	summod "chefbot/internal/services/summarize/module"
	trdom "chefbot/internal/services/transcript/domain"
	trmod "chefbot/internal/services/transcript/module"
)

// Options are the API options
type Options struct {
	Config      config.Conf
	Logger      *logger.Logger
	Pack        *keywordpack.Pack
	ServiceName string

	// Fetcher and Generator replace the YouTube and Gemini adapters when set
	Fetcher   trdom.FetcherPort
	Generator sumdom.GeneratorPort

	EnableProfiler bool
	CORSOrigins    []string
}

// App is the composed set of modules
type App struct {
	Transcript *trmod.Module
	Summarize  *summod.Module
	Chef       *chefmod.Module
	Meta       *metamod.Module
}

// Workflow returns the chef workflows, for callers that skip HTTP
func (a *App) Workflow() chefdom.WorkflowPort {
	return module.MustPortsOf[chefdom.WorkflowPort](a.Chef)
}

// Modules lists the modules in mount order
func (a *App) Modules() []module.Module {
	return []module.Module{a.Meta, a.Transcript, a.Summarize, a.Chef}
}

// Compose builds every module from opt; it panics on miswiring or missing secrets
func Compose(opt Options) *App {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	} else {
		deps.Log = *logger.Named("api")
	}

	pack := opt.Pack
	if pack == nil {
		pack = keywordpack.MustLoadFile(chefmod.FromConfig(opt.Config).KeywordsFile)
	}

	var trOpts []modkit.Option
	if opt.Fetcher != nil {
		trOpts = append(trOpts, modkit.WithPorts(opt.Fetcher))
	}
	transcript := trmod.New(deps, trmod.Options{}, trOpts...)

	var sumOpts []modkit.Option
	if opt.Generator != nil {
		sumOpts = append(sumOpts, modkit.WithPorts(opt.Generator))
	}
	summarize := summod.New(deps, summod.Options{Prompt: pack.Prompt}, sumOpts...)

	chef := chefmod.New(deps, chefmod.Options{Pack: pack}, modkit.WithPorts(chefdom.Ports{
		Transcripts: module.MustPortsOf[trdom.RetrieverPort](transcript),
		Summarizer:  module.MustPortsOf[sumdom.SummarizerPort](summarize),
	}))

	tro := transcript.Options()
	meta := metamod.New(deps, metamod.Options{
		ServiceName: opt.ServiceName,
		Config: metahttp.ConfigResponse{
			Keywords:      pack.Keywords.Words(),
			KeywordSource: pack.Source,
			PackVersion:   pack.Version,
			PrimaryLang:   tro.PrimaryLang,
			SecondaryLang: tro.SecondaryLang,
			Model:         summarize.Options().Model,
		},
	})

	return &App{Transcript: transcript, Summarize: summarize, Chef: chef, Meta: meta}
}

// Mount composes the modules and mounts them onto r under /api/v1
func Mount(r phttp.Router, opt Options) *App {
	app := Compose(opt)

	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		SlowRequest: 10 * time.Second,
	})
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range app.Modules() {
			m.MountRoutes(api)
		}
	})
	return app
}
