package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"gateway/internal/auth"
	"gateway/internal/http/handlers"
	mw "gateway/internal/middleware"
)

// RouterConfig carries the middleware collaborators the router wires around
// the handler set.
type RouterConfig struct {
	Logger          zerolog.Logger
	Resolver        *auth.Resolver
	RateLimitPerMin int
	DefaultLocale   string
	CORSOrigins     []string
	Countries       mw.CountryLookup
}

// NewRouter assembles the request pipeline and routes.
func NewRouter(app *handlers.App, cfg RouterConfig) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(mw.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(mw.Logger(cfg.Logger))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSOrigins))
	}
	r.Use(mw.Locale(cfg.DefaultLocale, cfg.Countries))
	if cfg.RateLimitPerMin > 0 {
		r.Use(mw.RateLimit(cfg.RateLimitPerMin, time.Minute))
	}
	r.Use(mw.SessionContext(cfg.Resolver))

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/plans", func(r chi.Router) {
		r.Get("/", app.PlansList)
		r.Get("/{id}", app.PlanByID)
	})

	r.Get("/v1/me", app.Me)

	r.Get("/v1/dashboard/analytics", app.DashboardAnalytics)

	r.Route("/v1/projects", func(r chi.Router) {
		r.Post("/", app.ProjectsCreate)
		r.Get("/", app.ProjectsList)
	})

	r.Get("/v1/admin/users/{id}/features", app.AdminUserFeatures)

	return r
}
