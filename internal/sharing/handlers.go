package sharing

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"calcsuite/internal/calculator"
	"calcsuite/internal/handlers"
	"calcsuite/internal/observability"
)

var (
	tracer = otel.Tracer("calcsuite/sharing")

	sharesTotal metric.Int64Counter
	shareErrors metric.Int64Counter
)

func InitMetrics() error {
	meter := otel.Meter("calcsuite/sharing")

	var err error

	sharesTotal, err = meter.Int64Counter(
		"sharing.requests.total",
		metric.WithDescription("Number of share formatting requests"),
	)
	if err != nil {
		return err
	}

	shareErrors, err = meter.Int64Counter(
		"sharing.errors.total",
		metric.WithDescription("Number of failed share formatting requests"),
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
	r.Route("/share", func(r chi.Router) {
		r.Post("/links", h.Links)
		r.Post("/card-data", h.CardData)
		r.Post("/copy-text", h.CopyText)
	})
}

// shareRequest accepts the result under either key, some callers send the
// singular form.
type shareRequest struct {
	CalculatorType string          `json:"calculator_type"`
	Result         json.RawMessage `json:"result"`
	Results        json.RawMessage `json:"results"`
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (calculator.Type, json.RawMessage, bool) {
	ctx := r.Context()

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "invalid request body",
			observability.RequestIDFromContext(ctx))
		return "", nil, false
	}

	calcType, ok := calculator.ParseType(req.CalculatorType)
	if !ok {
		handlers.WriteError(w, http.StatusBadRequest, "unknown calculator type",
			observability.RequestIDFromContext(ctx))
		return "", nil, false
	}
	results := req.Result
	if len(results) == 0 {
		results = req.Results
	}
	if len(results) == 0 {
		handlers.WriteError(w, http.StatusBadRequest, "result is required",
			observability.RequestIDFromContext(ctx))
		return "", nil, false
	}

	return calcType, results, true
}

func (h *Handler) Links(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "sharing.links")
	defer span.End()

	calcType, results, ok := h.decode(w, r.WithContext(ctx))
	if !ok {
		return
	}

	links, err := h.service.Links(calcType, results)
	if err != nil {
		observability.RecordError(ctx, span, observability.LoggerWithTrace(ctx), shareErrors,
			"links", "failed to build share links", err, http.StatusUnprocessableEntity, w)
		return
	}

	sharesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("share.kind", "links")))
	handlers.WriteJSON(w, http.StatusOK, links)
}

func (h *Handler) CardData(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "sharing.card_data")
	defer span.End()

	calcType, results, ok := h.decode(w, r.WithContext(ctx))
	if !ok {
		return
	}

	card, err := h.service.Card(calcType, results)
	if err != nil {
		observability.RecordError(ctx, span, observability.LoggerWithTrace(ctx), shareErrors,
			"card_data", "failed to build share card", err, http.StatusUnprocessableEntity, w)
		return
	}

	sharesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("share.kind", "card")))
	handlers.WriteJSON(w, http.StatusOK, card)
}

func (h *Handler) CopyText(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "sharing.copy_text")
	defer span.End()

	calcType, results, ok := h.decode(w, r.WithContext(ctx))
	if !ok {
		return
	}

	text, err := h.service.CopyText(calcType, results)
	if err != nil {
		observability.RecordError(ctx, span, observability.LoggerWithTrace(ctx), shareErrors,
			"copy_text", "failed to build copy text", err, http.StatusUnprocessableEntity, w)
		return
	}

	sharesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("share.kind", "copy_text")))
	handlers.WriteJSON(w, http.StatusOK, map[string]string{"text": text})
}
