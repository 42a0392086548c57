package main

import (
	"context"
	"net/http"
	"time"

	"github.com/593413198/bst/logs"
	"github.com/593413198/bst/rpcs"
	"github.com/pkg/errors"
)

const shutdownTimeout = 5 * time.Second

func serve(ctx context.Context, a *app, logger logs.Logger) error {
	metrics := rpcs.NewMetrics()
	binder := rpcs.NewHttpBinder(rpcs.HttpBinderProperties{
		Logger:  logger,
		Metrics: metrics,
		Cors: rpcs.HttpCorsPreProcessorProps{
			Enabled:        a.http.CorsEnabled,
			AllowedOrigins: a.http.CorsOrigins,
		},
	})

	rpcs.NewTreeService(rpcs.TreeServiceProps{
		Logger:  logger,
		Metrics: metrics,
		Tree:    seed(a.keys.Keys),
	}).Bind(binder)

	server := &http.Server{
		Addr:              a.http.Listen,
		Handler:           binder.Build(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info(ctx, "listening", logs.MapFields{"addr": a.http.Listen})
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "http server failed")
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to shut down http server")
	}

	return nil
}
