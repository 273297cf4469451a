package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"calcsuite/internal/calculator"
	"calcsuite/internal/observability"
)

var (
	tracer = otel.Tracer("calcsuite/report")

	reportsTotal metric.Int64Counter
	reportErrors metric.Int64Counter
)

func InitMetrics() error {
	meter := otel.Meter("calcsuite/report")

	var err error

	reportsTotal, err = meter.Int64Counter(
		"report.generated.total",
		metric.WithDescription("Number of PDF reports generated"),
	)
	if err != nil {
		return err
	}

	reportErrors, err = meter.Int64Counter(
		"report.errors.total",
		metric.WithDescription("Number of failed PDF generations"),
	)
	return err
}

type Handler struct {
	generator *Generator
}

func NewHandler(generator *Generator) *Handler {
	return &Handler{generator: generator}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/pdf/{calculator}", h.Generate)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "report.generate")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	calcType, ok := calculator.ParseType(chi.URLParam(r, "calculator"))
	if !ok {
		observability.RecordError(ctx, span, logger, reportErrors,
			"generate", "unknown calculator", errors.New("unknown calculator"),
			http.StatusNotFound, w)
		return
	}
	span.SetAttributes(attribute.String("calculator.type", string(calcType)))

	var req struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, reportErrors,
			"generate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if len(req.Results) == 0 {
		observability.RecordError(ctx, span, logger, reportErrors,
			"generate", "results are required", errors.New("missing results"),
			http.StatusBadRequest, w)
		return
	}

	pdf, filename, err := h.generator.Generate(calcType, req.Results)
	if err != nil {
		observability.RecordError(ctx, span, logger, reportErrors,
			"generate", "failed to generate report", err, http.StatusInternalServerError, w)
		return
	}

	reportsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("calculator.type", string(calcType)),
	))
	logger.Info("report generated",
		zap.String("calculator", string(calcType)),
		zap.Int("bytes", len(pdf)),
	)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
