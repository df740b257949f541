package handlers

import (
	"net/http"

	"gateway/internal/billing"
	"gateway/internal/domain"
)

type userProfileDTO struct {
	ID       string                 `json:"id"`
	Email    string                 `json:"email"`
	Role     string                 `json:"role"`
	PlanID   string                 `json:"plan_id"`
	Plan     billing.PlanDefinition `json:"plan"`
	Features map[string]any         `json:"features"`
}

// Me returns the caller's canonical identity together with the effective
// plan definition their plan id resolves to.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := a.requireSession(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, profileDTO(session.User, a.Plans))
}

func profileDTO(user domain.AuthenticatedUser, plans *billing.Registry) userProfileDTO {
	return userProfileDTO{
		ID:       user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		PlanID:   user.PlanID,
		Plan:     plans.PlanByID(user.PlanID),
		Features: rawFeatures(user.Features),
	}
}

func rawFeatures(features domain.FeatureMap) map[string]any {
	out := make(map[string]any, len(features))
	for k, v := range features {
		out[k] = v.Raw()
	}
	return out
}
