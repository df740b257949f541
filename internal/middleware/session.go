package middleware

import (
	"context"
	"net/http"

	"gateway/internal/auth"
	"gateway/internal/domain"
)

type requestContextKey struct{}

// SessionContext builds the per-request authentication context exactly once
// and stores it on the request. Resolution happens here so handlers share a
// single identity-provider round trip.
func SessionContext(resolver *auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := resolver.CreateContext(r.Context(), r.Header.Get("Authorization"))
			ctx := context.WithValue(r.Context(), requestContextKey{}, rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestContextFrom returns the authentication context built by
// SessionContext, or a zero (anonymous) context outside the middleware.
func RequestContextFrom(ctx context.Context) auth.RequestContext {
	if rc, ok := ctx.Value(requestContextKey{}).(auth.RequestContext); ok {
		return rc
	}
	return auth.RequestContext{}
}

// SessionFromContext returns the resolved session, or nil for anonymous
// requests.
func SessionFromContext(ctx context.Context) *domain.AuthenticatedSession {
	return RequestContextFrom(ctx).Session
}
