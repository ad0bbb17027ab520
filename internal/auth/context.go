package auth

import "context"

type contextKey struct{}

// NewContext returns a context carrying validated session claims.
func NewContext(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// FromContext extracts the session claims stored by the auth middleware.
func FromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(Claims)
	return claims, ok
}
