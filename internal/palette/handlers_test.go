package palette

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"calcsuite/internal/testutil"
)

func TestCommandsEndpoint(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/palette/commands?q=loan", nil)
	rr := testutil.ExecuteRequest(t, r, req)
	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)

	var resp struct {
		Commands []Item `json:"commands"`
		Total    int    `json:"total"`
	}
	testutil.DecodeJSONBody(t, rr, &resp)

	if resp.Total != len(resp.Commands) {
		t.Errorf("total %d does not match %d commands", resp.Total, len(resp.Commands))
	}

	names := map[string]bool{}
	for _, item := range resp.Commands {
		names[item.Name] = true
	}
	if !names["Loan Calculator"] || !names["Mortgage Calculator"] {
		t.Errorf("expected loan and mortgage in the results, got %v", names)
	}
}

func TestCommandsEndpointFullCatalog(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/palette/commands", nil)
	rr := testutil.ExecuteRequest(t, r, req)
	testutil.CheckResponseCode(t, http.StatusOK, rr.Code)

	var resp struct {
		Total int `json:"total"`
	}
	testutil.DecodeJSONBody(t, rr, &resp)

	if resp.Total != len(Catalog()) {
		t.Errorf("expected the full catalog, got %d of %d", resp.Total, len(Catalog()))
	}
}
