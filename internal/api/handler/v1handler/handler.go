// Package v1handler implements the version 1 HTTP API.
package v1handler

import (
	"evdemand/internal/demand"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const postalCodeParam = "postalCode"

// Deps holds the services the handlers call.
type Deps struct {
	// Analyzer runs, stores and queues demand analyses.
	Analyzer demand.Analyzer
}

// Handler implements the v1 routes on top of the analyzer.
type Handler struct {
	// deps are the services the handlers call.
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Router builds the /v1 routes. Every route requires authentication when sec
// is enabled, and every request is counted on mp.
func (h *Handler) Router(sec *SecHandler, mp metric.MeterProvider) (chi.Router, error) {
	requests, err := mp.Meter("evdemand/v1").Int64Counter("evdemand.http.requests",
		metric.WithDescription("HTTP requests served by the v1 API."),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Use(countRequests(requests))
		r.Use(sec.Middleware)

		r.Get("/analyses", h.ListAnalyses)
		r.Route("/analyses/{"+postalCodeParam+"}", func(r chi.Router) {
			r.Get("/", h.GetAnalysis)
			r.Post("/", h.CreateAnalysis)
			r.Delete("/", h.DeleteAnalysis)
			r.Post("/jobs", h.EnqueueAnalysis)
		})
		r.Get("/stations/{"+postalCodeParam+"}", h.SearchStations)
	})

	return r, nil
}

// countRequests records method, route pattern and status of every request.
func countRequests(counter metric.Int64Counter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := chi.RouteContext(r.Context()).RoutePattern()
			counter.Add(r.Context(), 1, metric.WithAttributes(
				attribute.String("method", r.Method),
				attribute.String("route", route),
				attribute.String("status", strconv.Itoa(status)),
			))
		})
	}
}

// CreateAnalysis runs an analysis synchronously and returns it.
func (h *Handler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := h.deps.Analyzer.Analyze(r.Context(), chi.URLParam(r, postalCodeParam))
	if err != nil {
		writeError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeAnalysis(&e, a)
	writeJSON(w, http.StatusOK, &e)
}

// EnqueueAnalysis schedules a background analysis.
func (h *Handler) EnqueueAnalysis(w http.ResponseWriter, r *http.Request) {
	pc := chi.URLParam(r, postalCodeParam)
	if err := h.deps.Analyzer.Enqueue(r.Context(), pc); err != nil {
		writeError(w, r, err)

		return
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("postal_code")
		e.Str(pc)
		e.FieldStart("status")
		e.Str("queued")
	})
	writeJSON(w, http.StatusAccepted, &e)
}

// GetAnalysis returns the stored analysis, 404 when there is none.
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	a, err := h.deps.Analyzer.Analysis(r.Context(), chi.URLParam(r, postalCodeParam))
	if err != nil {
		writeError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeAnalysis(&e, a)
	writeJSON(w, http.StatusOK, &e)
}

// ListAnalyses returns every stored analysis with a count.
func (h *Handler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	items, err := h.deps.Analyzer.Analyses(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeAnalyses(&e, items)
	writeJSON(w, http.StatusOK, &e)
}

// DeleteAnalysis removes a stored analysis and answers 204.
func (h *Handler) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Analyzer.Delete(r.Context(), chi.URLParam(r, postalCodeParam)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchStations returns the stations of a postal code with their coverage
// rating.
func (h *Handler) SearchStations(w http.ResponseWriter, r *http.Request) {
	res, err := h.deps.Analyzer.SearchStations(r.Context(), chi.URLParam(r, postalCodeParam))
	if err != nil {
		writeError(w, r, err)

		return
	}

	var e jx.Encoder
	EncodeSearchResult(&e, res)
	writeJSON(w, http.StatusOK, &e)
}
