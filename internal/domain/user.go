package domain

// Role enumerates supported account roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a raw role string onto a known Role. Unrecognized values
// report ok=false and the caller falls back to RoleUser.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleUser, RoleAdmin:
		return Role(raw), true
	}
	return RoleUser, false
}

// FeatureValue is a single per-user override attached to a feature or limit
// key. Overrides arrive from untrusted provider metadata where feature keys
// carry booleans and limit keys carry numbers, so both shapes are kept.
type FeatureValue struct {
	boolean bool
	number  float64
	numeric bool
}

// BoolValue builds a boolean override.
func BoolValue(v bool) FeatureValue {
	return FeatureValue{boolean: v}
}

// NumberValue builds a numeric override.
func NumberValue(n float64) FeatureValue {
	return FeatureValue{number: n, numeric: true}
}

// Truthy reports whether the override grants a feature. Numeric overrides
// count as granted when non-zero.
func (v FeatureValue) Truthy() bool {
	if v.numeric {
		return v.number != 0
	}
	return v.boolean
}

// Limit returns the override as an integer limit. Boolean overrides are not
// numeric overrides, even when true; presence of a number is the signal,
// so an explicit zero is a zero limit.
func (v FeatureValue) Limit() (int, bool) {
	if !v.numeric {
		return 0, false
	}
	return int(v.number), true
}

// Raw returns the underlying value for serialization.
func (v FeatureValue) Raw() any {
	if v.numeric {
		return v.number
	}
	return v.boolean
}

// FeatureMap holds per-user overrides layered on top of the user's plan.
type FeatureMap map[string]FeatureValue

// AuthenticatedUser is the canonical identity shape the rest of the service
// consumes. It is built fresh per request from provider metadata and never
// mutated afterwards.
type AuthenticatedUser struct {
	ID       string
	Email    string
	Role     Role
	PlanID   string
	Features FeatureMap
}

// AuthenticatedSession is the verified result of resolving a caller's
// credential. It owns its user for the lifetime of one request and is not
// persisted beyond it.
type AuthenticatedSession struct {
	SessionID string
	User      AuthenticatedUser
}
