package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"gateway/internal/auth"
	"gateway/internal/billing"
	"gateway/internal/domain"
	"gateway/internal/middleware"
)

// App is the handler container. Everything it holds is read-only after
// startup; per-request state lives on the request context.
type App struct {
	Logger   zerolog.Logger
	Resolver *auth.Resolver
	Plans    *billing.Registry
	Gate     *billing.Gate
	Projects domain.ProjectRepository
}

// NewApp wires the handler container.
func NewApp(logger zerolog.Logger, resolver *auth.Resolver, plans *billing.Registry, projects domain.ProjectRepository) *App {
	return &App{
		Logger:   logger,
		Resolver: resolver,
		Plans:    plans,
		Gate:     billing.NewGate(plans),
		Projects: projects,
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorResponse{Error: code, Message: message})
}

// requireSession fetches the session resolved by the middleware and writes
// a 401 when the request is anonymous.
func (a *App) requireSession(w http.ResponseWriter, r *http.Request) (*domain.AuthenticatedSession, bool) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		locale := middleware.LocaleFromContext(r.Context())
		a.error(w, http.StatusUnauthorized, "unauthorized", messageUnauthorized(locale))
		return nil, false
	}
	return session, true
}

// requireRole is requireSession plus an exact role match, writing a 403 on
// mismatch.
func (a *App) requireRole(w http.ResponseWriter, r *http.Request, role domain.Role) (*domain.AuthenticatedSession, bool) {
	session, ok := a.requireSession(w, r)
	if !ok {
		return nil, false
	}
	if session.User.Role != role {
		locale := middleware.LocaleFromContext(r.Context())
		a.error(w, http.StatusForbidden, "forbidden", messageRoleRequired(locale, role))
		return nil, false
	}
	return session, true
}

// gateError maps gate and resolver failures onto transport responses.
func (a *App) gateError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		a.error(w, http.StatusUnauthorized, "unauthorized", messageUnauthorized(middleware.LocaleFromContext(r.Context())))
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	default:
		a.Logger.Error().Err(err).Str("request_id", middleware.RequestIDFromContext(r.Context())).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
