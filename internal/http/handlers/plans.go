package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PlansList returns the catalog in declaration order.
func (a *App) PlansList(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"plans": a.Plans.Plans()})
}

// PlanByID returns one plan. Unknown ids degrade to the default plan, so
// this endpoint never 404s.
func (a *App) PlanByID(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, a.Plans.PlanByID(chi.URLParam(r, "id")))
}
