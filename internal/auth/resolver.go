package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"gateway/internal/domain"
)

// ProviderSession is the identity provider's view of a validated token.
type ProviderSession struct {
	ID     string
	UserID string
}

// ProviderUser is the identity provider's user record. Metadata is the raw,
// untrusted blob the provider stores alongside the account.
type ProviderUser struct {
	ID       string
	Email    string
	Metadata map[string]any
}

// IdentityProvider validates session tokens and loads user records. A nil
// session or user (with nil error) means "not found"; errors are transport
// failures only.
type IdentityProvider interface {
	GetSession(ctx context.Context, token string) (*ProviderSession, error)
	GetUser(ctx context.Context, userID string) (*ProviderUser, error)
}

// Resolver turns bearer credentials into authenticated sessions. The
// provider is injected at construction; there is no package-level client
// state.
type Resolver struct {
	provider IdentityProvider
	logger   zerolog.Logger
}

// NewResolver builds a resolver backed by the given identity provider.
func NewResolver(provider IdentityProvider, logger zerolog.Logger) *Resolver {
	return &Resolver{provider: provider, logger: logger}
}

// ExtractBearerToken pulls the token out of an Authorization header value.
// It tolerates a missing header, a bare token with no scheme, and a
// case-insensitive "Bearer" prefix.
func ExtractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

// ResolveSession validates the credential against the identity provider and
// maps the result into the canonical session shape. An empty credential or
// an unknown token yields a nil session with no error; errors are provider
// transport failures.
func (r *Resolver) ResolveSession(ctx context.Context, credential string) (*domain.AuthenticatedSession, error) {
	if strings.TrimSpace(credential) == "" {
		return nil, nil
	}
	session, err := r.provider.GetSession(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	user, err := r.provider.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve user %s: %w", session.UserID, err)
	}
	email := ""
	var metadata map[string]any
	if user != nil {
		email = user.Email
		metadata = user.Metadata
	}
	return &domain.AuthenticatedSession{
		SessionID: session.ID,
		User:      buildUser(session.UserID, email, metadata),
	}, nil
}

// RequireSession resolves the credential and fails with ErrUnauthenticated
// when no session results. Used by protected operations.
func (r *Resolver) RequireSession(ctx context.Context, credential string) (*domain.AuthenticatedSession, error) {
	session, err := r.ResolveSession(ctx, credential)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthenticated
	}
	return session, nil
}

// RequireRole resolves the credential and additionally fails with
// ErrForbidden unless the user's role matches exactly.
func (r *Resolver) RequireRole(ctx context.Context, role domain.Role, credential string) (*domain.AuthenticatedSession, error) {
	session, err := r.RequireSession(ctx, credential)
	if err != nil {
		return nil, err
	}
	if session.User.Role != role {
		return nil, fmt.Errorf("%w: requires role %s", domain.ErrForbidden, role)
	}
	return session, nil
}

// LookupUser loads an arbitrary user by id through the provider and maps it
// into the canonical shape. Returns ErrNotFound when the provider has no
// such user.
func (r *Resolver) LookupUser(ctx context.Context, userID string) (*domain.AuthenticatedUser, error) {
	user, err := r.provider.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lookup user %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}
	mapped := buildUser(user.ID, user.Email, user.Metadata)
	return &mapped, nil
}

// buildUser maps untrusted provider metadata into the canonical user shape.
// Every field degrades to a safe default on malformed input: USER role,
// "free" plan, empty override map. It never fails.
func buildUser(userID, email string, metadata map[string]any) domain.AuthenticatedUser {
	role := domain.RoleUser
	if raw, ok := metadata["role"].(string); ok {
		if parsed, known := domain.ParseRole(raw); known {
			role = parsed
		}
	}
	planID := "free"
	if raw, ok := metadata["planId"].(string); ok {
		planID = raw
	}
	return domain.AuthenticatedUser{
		ID:       userID,
		Email:    email,
		Role:     role,
		PlanID:   planID,
		Features: parseFeatureMap(metadata["features"]),
	}
}

// parseFeatureMap coerces the raw overrides blob into a FeatureMap. Entries
// that are neither booleans nor numbers are dropped; a malformed blob yields
// an empty map.
func parseFeatureMap(raw any) domain.FeatureMap {
	values, ok := raw.(map[string]any)
	if !ok {
		return domain.FeatureMap{}
	}
	out := make(domain.FeatureMap, len(values))
	for key, value := range values {
		switch v := value.(type) {
		case bool:
			out[key] = domain.BoolValue(v)
		case float64:
			out[key] = domain.NumberValue(v)
		case int:
			out[key] = domain.NumberValue(float64(v))
		}
	}
	return out
}
