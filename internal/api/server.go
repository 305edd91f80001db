// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the demand analysis service.
package api

import (
	_ "embed"
	"evdemand/internal/api/handler/v1handler"
	"evdemand/internal/config"
	"evdemand/pkg/controller"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// timeoutBody is served by http.TimeoutHandler; it has the shape of every
// other API error.
const timeoutBody = `{"code":"UNAVAILABLE","message":"request timed out"}`

// Options holds the HTTP server settings. Zero durations fall back to the
// net/http defaults, except RequestTimeout which must be set.
type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds a whole request, analysis included.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	MetricsPath    string
}

// NewOptions maps the HTTP section of the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	v1handler.Deps

	// Registry collects the application and OpenTelemetry metrics served on
	// MetricsPath. Nil uses the prometheus default registry.
	Registry *prometheus.Registry
}

func (d Deps) registry() (prometheus.Registerer, prometheus.Gatherer) {
	if d.Registry == nil {
		return prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	}

	return d.Registry, d.Registry
}

// NewServer wires up and returns a configured *http.Server. The mux serves:
// - Prometheus metrics on MetricsPath, OpenTelemetry instruments included
// - the embedded OpenAPI v1 spec and its Swagger UI
// - the v1 API on a chi router
// - pprof endpoints for profiling
// Everything is wrapped with CORS, access logging and a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()
	reg, gatherer := deps.registry()

	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle("/v1/docs/", v5emb.New(
		"EV Charging Demand Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1Router, err := v1handler.New(deps.Deps).Router(secHandler, mp)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 router: %w", err)
	}
	mux.Handle("/v1/", v1Router)

	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	handler := controller.WithCORS(mux)
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
