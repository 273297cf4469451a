package history

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"calcsuite/internal/observability"
	"calcsuite/internal/testutil"
)

func TestMain(m *testing.M) {
	observability.Logger = zap.NewNop()
	if err := InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(newTestStore(t)))
	return r
}

func saveEntry(t *testing.T, router chi.Router) string {
	t.Helper()

	body := bytes.NewBufferString(`{
		"calculator_type": "bmi",
		"inputs": {"height": 170, "weight": 70},
		"results": {"bmi": 24.22, "category": "Normal weight"}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/history/save", body)
	rr := testutil.ExecuteRequest(t, router, req)

	testutil.CheckResponseCode(t, http.StatusCreated, rr.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	testutil.DecodeJSONBody(t, rr, &resp)

	if !resp.Success || resp.ID == "" {
		t.Fatalf("unexpected save response: %+v", resp)
	}
	return resp.ID
}

func TestSaveGetDeleteRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	id := saveEntry(t, router)

	req := httptest.NewRequest(http.MethodGet, "/history/get", nil)
	rr := testutil.ExecuteRequest(t, router, req)
	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)

	var listResp struct {
		History []Entry `json:"history"`
		Total   int     `json:"total"`
	}
	testutil.DecodeJSONBody(t, rr, &listResp)

	if listResp.Total != 1 || len(listResp.History) != 1 {
		t.Fatalf("expected 1 entry, got %+v", listResp)
	}
	if listResp.History[0].ID != id {
		t.Errorf("expected entry %q, got %q", id, listResp.History[0].ID)
	}

	req = httptest.NewRequest(http.MethodDelete, "/history/delete/"+id, nil)
	rr = testutil.ExecuteRequest(t, router, req)
	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/history/get", nil)
	rr = testutil.ExecuteRequest(t, router, req)
	testutil.DecodeJSONBody(t, rr, &listResp)
	if listResp.Total != 0 {
		t.Errorf("expected empty history after delete, got %d", listResp.Total)
	}
}

func TestSaveValidation(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"unknown calculator", `{"calculator_type": "horoscope", "inputs": {}, "results": {}}`},
		{"missing results", `{"calculator_type": "bmi", "inputs": {"height": 170}}`},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/history/save", bytes.NewBufferString(tt.body))
			rr := testutil.ExecuteRequest(t, router, req)
			testutil.CheckResponseCode(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestDeleteNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/history/delete/no-such-id", nil)
	rr := testutil.ExecuteRequest(t, router, req)
	testutil.CheckResponseCode(t, http.StatusNotFound, rr.Code)
}

func TestClearEndpoint(t *testing.T) {
	router := newTestRouter(t)

	saveEntry(t, router)
	saveEntry(t, router)

	req := httptest.NewRequest(http.MethodDelete, "/history/clear", nil)
	rr := testutil.ExecuteRequest(t, router, req)
	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool  `json:"success"`
		Deleted int64 `json:"deleted"`
	}
	testutil.DecodeJSONBody(t, rr, &resp)
	if resp.Deleted != 2 {
		t.Errorf("expected 2 deletions, got %d", resp.Deleted)
	}
}

func TestClearEndpointUnknownType(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/history/clear?calculator_type=horoscope", nil)
	rr := testutil.ExecuteRequest(t, router, req)
	testutil.CheckResponseCode(t, http.StatusBadRequest, rr.Code)
}

func TestMonthlySummaryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	saveEntry(t, router)

	req := httptest.NewRequest(http.MethodGet, "/history/monthly-summary", nil)
	rr := testutil.ExecuteRequest(t, router, req)
	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)

	var summary MonthlySummary
	testutil.DecodeJSONBody(t, rr, &summary)
	if summary.TotalCalculations != 1 {
		t.Errorf("expected 1 calculation this month, got %d", summary.TotalCalculations)
	}
	if summary.MostUsed != "bmi" {
		t.Errorf("expected bmi as most used, got %q", summary.MostUsed)
	}
}

func TestMonthlySummaryBadMonth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/history/monthly-summary?month=13", nil)
	rr := testutil.ExecuteRequest(t, router, req)
	testutil.CheckResponseCode(t, http.StatusBadRequest, rr.Code)
}

func TestListBadLimit(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/history/get?limit=abc", nil)
	rr := testutil.ExecuteRequest(t, router, req)
	testutil.CheckResponseCode(t, http.StatusBadRequest, rr.Code)
}
