package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gateway/internal/domain"
)

// AdminUserFeatures exposes another user's effective profile, including the
// per-user override map the identity provider reports. Admin only.
func (a *App) AdminUserFeatures(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireRole(w, r, domain.RoleAdmin); !ok {
		return
	}
	userID := chi.URLParam(r, "id")
	user, err := a.Resolver.LookupUser(r.Context(), userID)
	if err != nil {
		a.gateError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, profileDTO(*user, a.Plans))
}
