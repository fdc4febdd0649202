package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/passgame/handler"
	"github.com/dmitrymomot/passgame/modules/clicker"
	"github.com/dmitrymomot/passgame/modules/passwordgame"
	"github.com/dmitrymomot/passgame/pkg/clientip"
	"github.com/dmitrymomot/passgame/pkg/config"
	"github.com/dmitrymomot/passgame/pkg/environment"
	"github.com/dmitrymomot/passgame/pkg/httpserver"
	"github.com/dmitrymomot/passgame/pkg/logger"
	"github.com/dmitrymomot/passgame/pkg/phase"
	"github.com/dmitrymomot/passgame/pkg/ratelimiter"
	"github.com/dmitrymomot/passgame/pkg/requestid"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"passgame"`
	// PhasesFile replaces the bundled phase catalogue when set.
	PhasesFile string `env:"PHASES_FILE"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("passgame stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg     appConfig
		httpCfg    httpserver.Config
		clickerCfg clicker.Config
		limitCfg   ratelimiter.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&clickerCfg) },
		func() error { return config.Load(&limitCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	env := environment.Parse(appCfg.Env)
	log := logger.New(
		logger.WithEnvironment(string(env), appCfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	gate, err := loadGate(appCfg.PhasesFile)
	if err != nil {
		return err
	}
	log.Info("phase catalogue loaded", slog.Int("phases", gate.Len()), slog.String("source", catalogueSource(appCfg.PhasesFile)))

	store, err := openStore(ctx, clickerCfg, log)
	if err != nil {
		return err
	}
	defer store.close()

	clickLimiter, err := ratelimiter.NewBucket(store.throttle, limitCfg)
	if err != nil {
		return err
	}

	errorHandler := handler.NewErrorHandler(log)
	games := passwordgame.NewService(gate, passwordgame.WithLogger(log))
	counters := clicker.NewService(store, clicker.WithLogger(log))
	throttle := ratelimiter.Middleware(clickLimiter,
		ratelimiter.Composite(clientip.GetIP, clicker.SessionKey),
		jsonError(handler.ErrTooManyRequests),
		jsonError(handler.ErrServiceUnavailable),
	)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		middleware.CleanPath,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
	)
	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, store.checks))
	r.Mount("/password", passwordgame.Router(games, errorHandler))
	r.Mount("/clicker", clicker.Router(counters, errorHandler, clicker.WithClickMiddleware(throttle)))
	r.NotFound(jsonError(handler.ErrNotFound))

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

func loadGate(path string) (*phase.Gate, error) {
	if path == "" {
		return passwordgame.DefaultGate()
	}
	phases, err := phase.LoadCatalogFile(path, phase.DefaultRefinements())
	if err != nil {
		return nil, err
	}
	return phase.NewGate(phases...), nil
}

func jsonError(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(err).Render(w, r)
	}
}

func catalogueSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
