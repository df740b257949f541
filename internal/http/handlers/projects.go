package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"gateway/internal/domain"
	"gateway/internal/middleware"
)

const limitMaxProjects = "limit:max-projects"

type projectCreateRequest struct {
	Name string `json:"name"`
}

type projectDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type projectCreateResponse struct {
	Project   projectDTO `json:"project"`
	Limit     *int       `json:"limit"`
	Remaining *int       `json:"remaining"`
}

// ProjectsCreate creates a project after checking current usage against the
// caller's effective max-projects limit.
func (a *App) ProjectsCreate(w http.ResponseWriter, r *http.Request) {
	session, ok := a.requireSession(w, r)
	if !ok {
		return
	}
	var req projectCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name required")
		return
	}

	count, err := a.Projects.CountByOwner(r.Context(), session.User.ID)
	if err != nil {
		a.gateError(w, r, err)
		return
	}
	if err := a.Gate.EnforceLimit(session, limitMaxProjects, count); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			locale := middleware.LocaleFromContext(r.Context())
			a.error(w, http.StatusForbidden, "limit_exceeded", messageLimitReached(locale, limitMaxProjects))
			return
		}
		a.gateError(w, r, err)
		return
	}

	project := &domain.Project{
		ID:        uuid.NewString(),
		OwnerID:   session.User.ID,
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.Projects.Create(r.Context(), project); err != nil {
		a.gateError(w, r, err)
		return
	}

	limit := a.Gate.GetLimit(session.User, limitMaxProjects)
	var remaining *int
	if limit != nil {
		left := *limit - count - 1
		if left < 0 {
			left = 0
		}
		remaining = &left
	}
	a.json(w, http.StatusCreated, projectCreateResponse{
		Project:   projectDTO{ID: project.ID, Name: project.Name, CreatedAt: project.CreatedAt},
		Limit:     limit,
		Remaining: remaining,
	})
}

// ProjectsList returns the caller's projects.
func (a *App) ProjectsList(w http.ResponseWriter, r *http.Request) {
	session, ok := a.requireSession(w, r)
	if !ok {
		return
	}
	projects, err := a.Projects.ListByOwner(r.Context(), session.User.ID)
	if err != nil {
		a.gateError(w, r, err)
		return
	}
	out := make([]projectDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectDTO{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
	}
	a.json(w, http.StatusOK, map[string]any{"projects": out})
}
