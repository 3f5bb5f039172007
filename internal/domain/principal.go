package domain

import "context"

// Principal is the identity proven by a verified token. It lives for one request.
type Principal struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
}

// PrincipalFromContext returns the principal stored by the auth middleware.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(Principal)
	return p, ok
}

// ContextWithPrincipal stores p on ctx.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}
