package handlers

import (
	"errors"
	"net/http"

	"gateway/internal/domain"
	"gateway/internal/middleware"
)

const featureAdvancedAnalytics = "feature:advanced-analytics"

// DashboardAnalytics serves the analytics summary, gated on the
// advanced-analytics feature.
func (a *App) DashboardAnalytics(w http.ResponseWriter, r *http.Request) {
	session, ok := a.requireSession(w, r)
	if !ok {
		return
	}
	if err := a.Gate.RequireFeature(session, featureAdvancedAnalytics); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			locale := middleware.LocaleFromContext(r.Context())
			a.error(w, http.StatusForbidden, "forbidden", messageFeatureDenied(locale, featureAdvancedAnalytics))
			return
		}
		a.gateError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"conversion_rate": 0.42,
		"active_users":    1280,
	})
}
