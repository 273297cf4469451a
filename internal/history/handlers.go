package history

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"calcsuite/internal/calculator"
	"calcsuite/internal/handlers"
	"calcsuite/internal/observability"
)

var (
	tracer = otel.Tracer("calcsuite/history")

	entriesSaved metric.Int64Counter
	storeErrors  metric.Int64Counter
)

func InitMetrics() error {
	meter := otel.Meter("calcsuite/history")

	var err error

	entriesSaved, err = meter.Int64Counter(
		"history.entries.saved",
		metric.WithDescription("Number of history entries saved"),
	)
	if err != nil {
		return err
	}

	storeErrors, err = meter.Int64Counter(
		"history.errors.total",
		metric.WithDescription("Number of history store failures"),
	)
	return err
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/history", func(r chi.Router) {
		r.Post("/save", h.Save)
		r.Get("/get", h.List)
		r.Get("/monthly-summary", h.MonthlySummary)
		r.Delete("/delete/{id}", h.Delete)
		r.Delete("/clear", h.Clear)
	})
}

type saveRequest struct {
	CalculatorType string          `json:"calculator_type"`
	Inputs         json.RawMessage `json:"inputs"`
	Results        json.RawMessage `json:"results"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "history.save")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, storeErrors,
			"save", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if _, ok := calculator.ParseType(req.CalculatorType); !ok {
		observability.RecordError(ctx, span, logger, storeErrors,
			"save", "unknown calculator type", errors.New("unknown calculator type"),
			http.StatusBadRequest, w)
		return
	}
	if len(req.Inputs) == 0 || len(req.Results) == 0 {
		observability.RecordError(ctx, span, logger, storeErrors,
			"save", "inputs and results are required", errors.New("missing inputs or results"),
			http.StatusBadRequest, w)
		return
	}

	id, err := h.store.Save(ctx, req.CalculatorType, req.Inputs, req.Results)
	if err != nil {
		observability.RecordError(ctx, span, logger, storeErrors,
			"save", "failed to save history entry", err, http.StatusServiceUnavailable, w)
		return
	}

	entriesSaved.Add(ctx, 1, metric.WithAttributes(
		attribute.String("calculator.type", req.CalculatorType),
	))
	logger.Info("history entry saved",
		zap.String("entry_id", id),
		zap.String("calculator", req.CalculatorType),
	)

	handlers.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      id,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "history.list")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	calcType := r.URL.Query().Get("calculator_type")
	if calcType != "" {
		if _, ok := calculator.ParseType(calcType); !ok {
			observability.RecordError(ctx, span, logger, storeErrors,
				"list", "unknown calculator type", errors.New("unknown calculator type"),
				http.StatusBadRequest, w)
			return
		}
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			observability.RecordError(ctx, span, logger, storeErrors,
				"list", "limit must be a non-negative integer", err, http.StatusBadRequest, w)
			return
		}
		limit = parsed
	}

	entries, err := h.store.List(ctx, calcType, limit)
	if err != nil {
		observability.RecordError(ctx, span, logger, storeErrors,
			"list", "failed to load history", err, http.StatusServiceUnavailable, w)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]any{
		"history": entries,
		"total":   len(entries),
	})
}

func (h *Handler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "history.monthly_summary")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			observability.RecordError(ctx, span, logger, storeErrors,
				"monthly_summary", "year must be an integer", err, http.StatusBadRequest, w)
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			observability.RecordError(ctx, span, logger, storeErrors,
				"monthly_summary", "month must be between 1 and 12", err, http.StatusBadRequest, w)
			return
		}
		month = parsed
	}

	summary, err := h.store.Monthly(ctx, year, month)
	if err != nil {
		observability.RecordError(ctx, span, logger, storeErrors,
			"monthly_summary", "failed to load monthly summary", err, http.StatusServiceUnavailable, w)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "history.delete")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)
	id := chi.URLParam(r, "id")

	err := h.store.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		observability.RecordError(ctx, span, logger, storeErrors,
			"delete", "entry not found", err, http.StatusNotFound, w)
		return
	}
	if err != nil {
		observability.RecordError(ctx, span, logger, storeErrors,
			"delete", "failed to delete history entry", err, http.StatusServiceUnavailable, w)
		return
	}

	logger.Info("history entry deleted", zap.String("entry_id", id))
	handlers.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "history.clear")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	calcType := r.URL.Query().Get("calculator_type")
	if calcType != "" {
		if _, ok := calculator.ParseType(calcType); !ok {
			observability.RecordError(ctx, span, logger, storeErrors,
				"clear", "unknown calculator type", errors.New("unknown calculator type"),
				http.StatusBadRequest, w)
			return
		}
	}

	deleted, err := h.store.Clear(ctx, calcType)
	if err != nil {
		observability.RecordError(ctx, span, logger, storeErrors,
			"clear", "failed to clear history", err, http.StatusServiceUnavailable, w)
		return
	}

	logger.Info("history cleared",
		zap.Int64("deleted", deleted),
		zap.String("calculator", calcType),
	)
	handlers.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"deleted": deleted,
	})
}
