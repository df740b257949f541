package auth

import (
	"context"

	"gateway/internal/domain"
)

// RequestContext is the per-request authentication state handed to the API
// layer. A nil Session is a valid state meaning the request is anonymous;
// handlers must check it before treating a request as authenticated.
type RequestContext struct {
	Session      *domain.AuthenticatedSession
	SessionToken string
}

// CreateContext extracts the bearer token from the Authorization header
// value, resolves it, and packages both for downstream use. It never fails:
// provider transport errors degrade to an anonymous context and are logged.
func (r *Resolver) CreateContext(ctx context.Context, authorizationHeader string) RequestContext {
	token := ExtractBearerToken(authorizationHeader)
	session, err := r.ResolveSession(ctx, token)
	if err != nil {
		r.logger.Warn().Err(err).Msg("session resolution failed, treating request as anonymous")
	}
	return RequestContext{Session: session, SessionToken: token}
}
