package palette

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"calcsuite/internal/handlers"
)

// RegisterRoutes exposes the command catalog. The catalog is fixed, so no
// handler state is needed.
func RegisterRoutes(r chi.Router) {
	r.Get("/palette/commands", Commands)
}

// Commands returns the catalog, filtered by the optional q parameter.
func Commands(w http.ResponseWriter, r *http.Request) {
	items := Filter(Catalog(), r.URL.Query().Get("q"))
	handlers.WriteJSON(w, http.StatusOK, map[string]any{
		"commands": items,
		"total":    len(items),
	})
}
