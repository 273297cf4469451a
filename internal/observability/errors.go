package observability

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"calcsuite/internal/handlers"
)

// RecordError is the single path for reporting a handler failure. It marks
// the span, bumps the operation's error counter, writes a structured log
// line and sends the JSON error body in one call so the three signals
// never drift apart.
func RecordError(
	ctx context.Context,
	span trace.Span,
	logger *zap.Logger,
	counter metric.Int64Counter,
	operation string,
	message string,
	err error,
	status int,
	w http.ResponseWriter,
) {
	span.RecordError(err)
	span.SetStatus(codes.Error, message)

	if counter != nil {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.Int("status", status),
		))
	}

	logger.Error(message,
		zap.String("operation", operation),
		zap.Int("status", status),
		zap.Error(err),
	)

	handlers.WriteError(w, status, message, RequestIDFromContext(ctx))
}
