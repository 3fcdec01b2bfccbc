package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chefbot/internal/core/keywordpack"
	"chefbot/internal/platform/config"
	"chefbot/internal/platform/logger"
	phttp "chefbot/internal/platform/net/http"
	"chefbot/internal/platform/net/middleware"

	"chefbot/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	if err := config.LoadDotenv(".env"); err != nil {
		logger.Get().Panic().Err(err).Msg("load .env failed")
	}

	// root config for modules, CORE_API_* for the HTTP server
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	l := logger.Get()

	pack := keywordpack.MustLoadFile(root.Prefix("CORE_CHEF_").MayString("KEYWORDS_FILE", ""))
	l.Info().Str("source", pack.Source).Int("keywords", pack.Keywords.Len()).Msg("keyword pack loaded")

	timeout := apiCfg.MayDuration("REQUEST_TIMEOUT", 90*time.Second)
	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Defaults(timeout)...)
		m.Use(middleware.Heartbeat("/ping"))
	})

	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Logger:         l,
		Pack:           pack,
		ServiceName:    "chefbot-api",
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		CORSOrigins:    apiCfg.MayCSV("CORS_ORIGINS", nil),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info().Str("addr", srv.Addr()).Msg("chefbot api listening")
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
