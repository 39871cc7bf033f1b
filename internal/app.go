package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	"vcheck/internal/controllers"
	"vcheck/internal/providers"
	"vcheck/internal/structures"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	WebServer *http.Server
}

// NewHandler assembles the full handler chain: API routes instrumented with
// metrics, infrastructure endpoints, then CORS, request ids and compression.
func NewHandler(healthController *controllers.HealthController, conf *structures.Config, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) http.Handler {
	// Inner mux: API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	instrumentedAPI := providers.MetricsMiddleware(metrics, apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return providers.CompressionMiddleware(
		providers.RequestIDMiddleware(
			providers.CorsMiddleware(conf, mux)))
}

func NewApp(handler http.Handler, conf *structures.Config, logger providers.Logger) (*App, error) {
	defer logger.Close()

	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)
	logger.Infof(providers.TypeApp, "GOG catalog %s, Steam store %s, upstream timeout %s",
		conf.Upstream.GogCatalogURL, conf.Upstream.SteamStoreURL, conf.Upstream.Timeout)

	app := &App{
		WebServer: &http.Server{
			Addr:    conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler: handler,
			// two sequential upstream calls must fit in the write window
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 2*conf.Upstream.Timeout + 5*time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return nil, fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		return nil, err
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}
