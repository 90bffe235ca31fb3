package auth

import "context"

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID   uint
	Username string
	IsAdmin  bool
}

type ctxKey string

const identityKey ctxKey = "identity"

// WithIdentity returns a context carrying the caller identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the identity placed by the middleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
