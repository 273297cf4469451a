package advisor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"calcsuite/internal/calculator"
	"calcsuite/internal/handlers"
	"calcsuite/internal/observability"
)

var (
	tracer = otel.Tracer("calcsuite/advisor")

	adviceTotal  metric.Int64Counter
	adviceErrors metric.Int64Counter
)

func InitMetrics() error {
	meter := otel.Meter("calcsuite/advisor")

	var err error

	adviceTotal, err = meter.Int64Counter(
		"advisor.requests.total",
		metric.WithDescription("Number of advisory requests served"),
	)
	if err != nil {
		return err
	}

	adviceErrors, err = meter.Int64Counter(
		"advisor.errors.total",
		metric.WithDescription("Number of failed advisory requests"),
	)
	return err
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/ai", func(r chi.Router) {
		r.Post("/bmi-recommendations", h.BMI)
		r.Post("/loan-recommendations", h.Loan)
		r.Post("/gpa-recommendations", h.GPA)
		r.Post("/chat", h.Chat)
		r.Post("/explain", h.Explain)
	})
}

func (h *Handler) BMI(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "advisor.bmi")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	var req struct {
		BMI float64 `json:"bmi"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, adviceErrors,
			"bmi", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	rec, err := RecommendForBMI(req.BMI)
	if err != nil {
		observability.RecordError(ctx, span, logger, adviceErrors,
			"bmi", err.Error(), err, http.StatusUnprocessableEntity, w)
		return
	}

	adviceTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("advisor.topic", "bmi")))
	handlers.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) Loan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "advisor.loan")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	var req struct {
		Amount float64 `json:"amount"`
		Rate   float64 `json:"rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, adviceErrors,
			"loan", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	rec, err := RecommendForLoan(req.Amount, req.Rate)
	if err != nil {
		status := http.StatusUnprocessableEntity
		var vErr *calculator.ValidationError
		if errors.As(err, &vErr) {
			status = http.StatusBadRequest
		}
		observability.RecordError(ctx, span, logger, adviceErrors,
			"loan", err.Error(), err, status, w)
		return
	}

	adviceTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("advisor.topic", "loan")))
	handlers.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) GPA(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "advisor.gpa")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	var req struct {
		Courses []calculator.Course `json:"courses"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, adviceErrors,
			"gpa", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	rec, err := RecommendForGPA(req.Courses)
	if err != nil {
		status := http.StatusUnprocessableEntity
		var vErr *calculator.ValidationError
		if errors.As(err, &vErr) {
			status = http.StatusBadRequest
		}
		observability.RecordError(ctx, span, logger, adviceErrors,
			"gpa", err.Error(), err, status, w)
		return
	}

	adviceTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("advisor.topic", "gpa")))
	handlers.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "advisor.chat")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	var req struct {
		Message        string `json:"message"`
		CalculatorType string `json:"calculator_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, adviceErrors,
			"chat", "invalid request body", err, http.StatusBadRequest, w)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		observability.RecordError(ctx, span, logger, adviceErrors,
			"chat", "message must not be empty", errors.New("empty message"),
			http.StatusBadRequest, w)
		return
	}

	adviceTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("advisor.topic", "chat")))
	handlers.WriteJSON(w, http.StatusOK, map[string]string{
		"response": Chat(req.Message, req.CalculatorType),
	})
}

func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "advisor.explain")
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	var req struct {
		CalculatorType string         `json:"calculator_type"`
		Result         map[string]any `json:"result"`
		Inputs         map[string]any `json:"inputs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, adviceErrors,
			"explain", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	calcType, ok := calculator.ParseType(req.CalculatorType)
	if !ok {
		observability.RecordError(ctx, span, logger, adviceErrors,
			"explain", "unknown calculator type", errors.New("unknown calculator type"),
			http.StatusBadRequest, w)
		return
	}

	adviceTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("advisor.topic", "explain")))
	handlers.WriteJSON(w, http.StatusOK, Explain(calcType, req.Result, req.Inputs))
}
