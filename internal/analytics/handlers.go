package analytics

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"calcsuite/internal/calculator"
	"calcsuite/internal/handlers"
	"calcsuite/internal/observability"
)

var (
	tracer = otel.Tracer("calcsuite/analytics")

	queriesTotal metric.Int64Counter
	queryErrors  metric.Int64Counter
)

func InitMetrics() error {
	meter := otel.Meter("calcsuite/analytics")

	var err error

	queriesTotal, err = meter.Int64Counter(
		"analytics.queries.total",
		metric.WithDescription("Number of analytics queries served"),
	)
	if err != nil {
		return err
	}

	queryErrors, err = meter.Int64Counter(
		"analytics.errors.total",
		metric.WithDescription("Number of failed analytics queries"),
	)
	return err
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/trends", h.Trends)
		r.Get("/chart/{calculator}", h.Chart)
		r.Get("/insights", h.Insights)
		r.Get("/usage-stats", h.Usage)
		r.Get("/loan-visualization", h.LoanVisualization)
	})
}

func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "analytics.trends")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	filter, ok := typeFilter(r)
	if !ok {
		observability.RecordError(ctx, span, logger, queryErrors,
			"trends", "unknown calculator type", errors.New("unknown calculator type"),
			http.StatusBadRequest, w)
		return
	}

	trends, err := h.service.Trends(ctx)
	if err != nil {
		observability.RecordError(ctx, span, logger, queryErrors,
			"trends", "failed to compute trends", err, http.StatusServiceUnavailable, w)
		return
	}

	if filter != "" {
		filtered := []Trend{}
		for _, trend := range trends {
			if trend.CalculatorType == filter {
				filtered = append(filtered, trend)
			}
		}
		trends = filtered
	}

	queriesTotal.Add(ctx, 1)
	handlers.WriteJSON(w, http.StatusOK, map[string]any{"trends": trends})
}

// typeFilter reads the optional calculator_type query parameter. The second
// return is false when the parameter names an unknown calculator.
func typeFilter(r *http.Request) (string, bool) {
	raw := r.URL.Query().Get("calculator_type")
	if raw == "" {
		return "", true
	}
	calcType, ok := calculator.ParseType(raw)
	if !ok {
		return "", false
	}
	return string(calcType), true
}

func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "analytics.chart")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	calcType, ok := calculator.ParseType(chi.URLParam(r, "calculator"))
	if !ok {
		observability.RecordError(ctx, span, logger, queryErrors,
			"chart", "unknown calculator", errors.New("unknown calculator"),
			http.StatusNotFound, w)
		return
	}

	chart, err := h.service.Chart(ctx, calcType)
	if err != nil {
		observability.RecordError(ctx, span, logger, queryErrors,
			"chart", err.Error(), err, http.StatusUnprocessableEntity, w)
		return
	}

	queriesTotal.Add(ctx, 1)
	handlers.WriteJSON(w, http.StatusOK, chart)
}

func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "analytics.insights")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	filter, ok := typeFilter(r)
	if !ok {
		observability.RecordError(ctx, span, logger, queryErrors,
			"insights", "unknown calculator type", errors.New("unknown calculator type"),
			http.StatusBadRequest, w)
		return
	}

	insights, err := h.service.Insights(ctx)
	if err != nil {
		observability.RecordError(ctx, span, logger, queryErrors,
			"insights", "failed to compute insights", err, http.StatusServiceUnavailable, w)
		return
	}

	messages := []string{}
	recommendations := []string{}
	for _, insight := range insights {
		if filter != "" && insight.CalculatorType != filter {
			continue
		}
		messages = append(messages, insight.Message)
		if insight.Recommendation != "" {
			recommendations = append(recommendations, insight.Recommendation)
		}
	}

	queriesTotal.Add(ctx, 1)
	handlers.WriteJSON(w, http.StatusOK, map[string]any{
		"insights":        messages,
		"recommendations": recommendations,
	})
}

func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "analytics.usage")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	stats, err := h.service.Usage(ctx)
	if err != nil {
		observability.RecordError(ctx, span, logger, queryErrors,
			"usage", "failed to compute usage stats", err, http.StatusServiceUnavailable, w)
		return
	}

	queriesTotal.Add(ctx, 1)
	handlers.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) LoanVisualization(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "analytics.loan_visualization")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	viz, err := h.service.LoanVisualization(ctx)
	if err != nil {
		observability.RecordError(ctx, span, logger, queryErrors,
			"loan_visualization", err.Error(), err, http.StatusUnprocessableEntity, w)
		return
	}

	queriesTotal.Add(ctx, 1)
	handlers.WriteJSON(w, http.StatusOK, viz)
}
