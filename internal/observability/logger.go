package observability

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger builds the process-wide logger. LOG_LEVEL=debug switches to the
// development config, which is friendlier when running the suite locally.
func InitLogger() error {
	var err error

	if os.Getenv("LOG_LEVEL") == "debug" {
		Logger, err = zap.NewDevelopment()
	} else {
		Logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// It also embeds ctx itself as a zap.Any("context", ctx) field. The otelzap
// bridge detects any field whose Interface value implements context.Context
// and uses it as the context passed to log.Logger.Emit, so the OTel SDK
// populates the native TraceID and SpanID on the outgoing OTLP log record.
// Without this the bridge emits with context.Background() and the native
// trace id on every exported record is all-zeros.
//
// The human-readable trace_id / span_id string fields are kept so that stdout
// JSON logs remain greppable without an OTel-aware tool.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
