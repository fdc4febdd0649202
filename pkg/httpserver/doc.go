// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown, and provides liveness and readiness probe handlers.
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called, then drains in-flight requests within the shutdown
// timeout. Errors are wrapped with ErrStart and ErrShutdown.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server failed", logger.Error(err))
//	}
package httpserver
