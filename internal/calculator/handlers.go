package calculator

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"calcsuite/internal/handlers"
	"calcsuite/internal/observability"
)

var tracer = otel.Tracer("calcsuite/calculator")

// Handler serves the compute endpoints and the static catalogs.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "calculator")

	calcType, ok := ParseType(slug)
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, "unknown calculator",
			observability.RequestIDFromContext(r.Context()))
		return
	}

	ctx, span := tracer.Start(r.Context(), "calculator.compute")
	defer span.End()
	span.SetAttributes(attribute.String("calculator.type", string(calcType)))

	logger := observability.LoggerWithTrace(ctx)
	start := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		observability.RecordError(ctx, span, logger, calculationErrors,
			"compute", "failed to read request body", err, http.StatusBadRequest, w)
		return
	}

	result, err := Compute(calcType, body)
	if err != nil {
		status := http.StatusInternalServerError
		var vErr *ValidationError
		var dErr *DomainError
		switch {
		case errors.As(err, &vErr):
			status = http.StatusBadRequest
		case errors.As(err, &dErr):
			status = http.StatusUnprocessableEntity
		}
		observability.RecordError(ctx, span, logger, calculationErrors,
			"compute", err.Error(), err, status, w)
		return
	}

	calculationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("calculator.type", string(calcType)),
	))
	calculationSeconds.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("calculator.type", string(calcType)),
	))

	logger.Info("calculation completed",
		zap.String("calculator", string(calcType)),
		zap.Duration("duration", time.Since(start)),
	)

	handlers.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) ListCalculators(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Type string `json:"type"`
		Slug string `json:"slug"`
		Name string `json:"name"`
	}

	catalog := make([]entry, 0, len(AllTypes))
	for _, t := range AllTypes {
		catalog = append(catalog, entry{
			Type: string(t),
			Slug: t.Slug(),
			Name: t.DisplayName(),
		})
	}

	handlers.WriteJSON(w, http.StatusOK, catalog)
}

func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, SupportedActivities())
}

func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, SupportedCurrencies())
}

func (h *Handler) ListUnitCategories(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, UnitCategories())
}

func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	units, ok := UnitsForCategory(category)
	if !ok {
		handlers.WriteError(w, http.StatusNotFound, "unknown unit category",
			observability.RequestIDFromContext(r.Context()))
		return
	}

	handlers.WriteJSON(w, http.StatusOK, units)
}

func (h *Handler) ListSleepTips(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, SleepTips)
}
