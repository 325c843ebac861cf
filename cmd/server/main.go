// Command server runs the lookup proxy: a REST gateway in front of the
// ibis directory service, guarded by OAuth2 token introspection.
//
// Configuration is layered: built-in defaults, then a YAML config file
// (path from the -config flag, LOOKUP_CONFIG, ./config.yaml or
// /etc/lookupproxy/config.yaml), then LOOKUP_* environment variables.
// See pkg/config for the full set of settings.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/msb/lookupproxy/pkg/auth"
	"github.com/msb/lookupproxy/pkg/auth/introspect"
	"github.com/msb/lookupproxy/pkg/config"
	"github.com/msb/lookupproxy/pkg/gateway"
	"github.com/msb/lookupproxy/pkg/ibis"
	"github.com/msb/lookupproxy/pkg/observability"
	"github.com/msb/lookupproxy/pkg/transport"
	transporthttp "github.com/msb/lookupproxy/pkg/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.Default()

	// Introspection client and authentication gate.
	introspector, err := introspect.NewClient(introspect.Config{
		URL:          cfg.OAuth2.IntrospectURL,
		ClientID:     cfg.OAuth2.ClientID,
		ClientSecret: cfg.OAuth2.ClientSecret,
		Timeout:      cfg.OAuth2.Timeout,
	})
	if err != nil {
		return fmt.Errorf("creating introspection client: %w", err)
	}
	gate := auth.NewGate(introspector, auth.WithLogger(logger))

	// Directory backend client.
	dir, err := ibis.New(ibis.Config{
		BaseURL: cfg.Directory.BaseURL,
		Timeout: cfg.Directory.Timeout,
	})
	if err != nil {
		return fmt.Errorf("creating directory client: %w", err)
	}
	defer dir.Close()

	// Resource routes plus the metrics endpoint.
	handler := gateway.Routes(gateway.NewHandler(dir, logger), gate, logger)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	if cfg.Observability.Metrics.Enabled {
		mux.Handle("GET "+cfg.Observability.Metrics.Path, promhttp.Handler())
	}

	// Cross-cutting middleware, outermost first.
	wrapped := transport.Chain(
		transport.Recovery(logger),
		transport.RequestID(),
		transport.Logging(logger),
		observability.MetricsMiddleware,
	)(mux)

	srv := transporthttp.NewServer(wrapped,
		transporthttp.WithAddr(fmt.Sprintf(":%d", cfg.Server.Port)),
		transporthttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
		transporthttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		transporthttp.WithLogger(logger),
	)

	logger.Info("lookup proxy configured",
		"port", cfg.Server.Port,
		"directory", cfg.Directory.BaseURL,
		"introspect", cfg.OAuth2.IntrospectURL,
	)

	return srv.ListenAndServe()
}
