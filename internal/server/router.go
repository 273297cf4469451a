package server

import (
	"github.com/go-chi/chi/v5"

	"calcsuite/internal/advisor"
	"calcsuite/internal/analytics"
	"calcsuite/internal/calculator"
	"calcsuite/internal/handlers"
	"calcsuite/internal/history"
	"calcsuite/internal/observability"
	"calcsuite/internal/palette"
	"calcsuite/internal/report"
	"calcsuite/internal/sharing"
)

// Deps carries the wired services the router mounts.
type Deps struct {
	Calculator *calculator.Handler
	History    *history.Handler
	Analytics  *analytics.Handler
	Sharing    *sharing.Handler
	Advisor    *advisor.Handler
	Report     *report.Handler
}

// NewRouter assembles the full middleware chain and API surface.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", observability.PrometheusHandler())

	r.Route("/api", func(r chi.Router) {
		history.RegisterRoutes(r, deps.History)
		analytics.RegisterRoutes(r, deps.Analytics)
		sharing.RegisterRoutes(r, deps.Sharing)
		advisor.RegisterRoutes(r, deps.Advisor)
		report.RegisterRoutes(r, deps.Report)
		palette.RegisterRoutes(r)

		// Calculator routes go last so its catch-all POST /{calculator}
		// never shadows the static prefixes above.
		calculator.RegisterRoutes(r, deps.Calculator)
	})

	return r
}
