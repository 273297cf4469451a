package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"calcsuite/internal/testutil"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusOK, map[string]string{"hello": "world"})

	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)

	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("expected application/json, got %q", got)
	}

	var body map[string]string
	testutil.DecodeJSONBody(t, rr, &body)
	if body["hello"] != "world" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestWriteJSONNilPayload(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusNoContent, nil)

	testutil.CheckResponseCode(t, http.StatusNoContent, rr.Code)
	if rr.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rr.Body.String())
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, http.StatusBadRequest, "bad input", "req-42")

	testutil.CheckResponseCode(t, http.StatusBadRequest, rr.Code)

	var body ErrorResponse
	testutil.DecodeJSONBody(t, rr, &body)
	if body.Error != "bad input" {
		t.Errorf("expected error message, got %q", body.Error)
	}
	if body.RequestID != "req-42" {
		t.Errorf("expected request id, got %q", body.RequestID)
	}
}

func TestWriteErrorOmitsEmptyRequestID(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteError(rr, http.StatusInternalServerError, "boom", "")

	if body := rr.Body.String(); body == "" || body[0] != '{' {
		t.Fatalf("unexpected body %q", body)
	}
	var body map[string]any
	testutil.DecodeJSONBody(t, rr, &body)
	if _, present := body["request_id"]; present {
		t.Error("empty request id should be omitted")
	}
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	Health(rr, req)

	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)
}
