package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculator endpoints under /api.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/calculators", h.ListCalculators)
	r.Post("/{calculator}", h.Compute)

	r.Get("/calorie-burn/activities", h.ListActivities)
	r.Get("/currency-converter/currencies", h.ListCurrencies)
	r.Get("/unit-converter/categories", h.ListUnitCategories)
	r.Get("/unit-converter/units/{category}", h.ListUnits)
	r.Get("/sleep/tips", h.ListSleepTips)
}
