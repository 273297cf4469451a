package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddlewareGenerates(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RequestIDMiddleware(next).ServeHTTP(rr, req)

	if captured == "" {
		t.Error("expected a generated request id in the context")
	}
	if rr.Header().Get("X-Request-ID") != captured {
		t.Error("response header should carry the same id")
	}
}

func TestRequestIDMiddlewarePreservesIncoming(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-1")

	RequestIDMiddleware(next).ServeHTTP(rr, req)

	if captured != "upstream-1" {
		t.Errorf("expected the incoming id to be kept, got %q", captured)
	}
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	old := Logger
	Logger = zap.New(core)
	defer func() { Logger = old }()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bmi", nil)

	LoggingMiddleware(next).ServeHTTP(rr, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["path"] != "/api/bmi" {
		t.Errorf("expected path field, got %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("expected status %d, got %v", http.StatusTeapot, fields["status"])
	}
}

func TestLoggingMiddlewareSkipsProbes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	old := Logger
	Logger = zap.New(core)
	defer func() { Logger = old }()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/metrics", "/health"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		LoggingMiddleware(next).ServeHTTP(rr, req)
	}

	if n := logs.Len(); n != 0 {
		t.Errorf("expected no log entries for probe paths, got %d", n)
	}
}

func TestLoggerWithTraceNoSpan(t *testing.T) {
	old := Logger
	Logger = zap.NewNop()
	defer func() { Logger = old }()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := LoggerWithTrace(req.Context()); got != Logger {
		t.Error("without a span the base logger should be returned")
	}
}
