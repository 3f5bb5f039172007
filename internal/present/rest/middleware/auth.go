package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tunedeck/tunedeck/internal/domain"
)

var tracer = otel.Tracer("auth")

// Verifier checks an Authorization header value.
type Verifier interface {
	Verify(ctx context.Context, authHeader string) (domain.Principal, error)
}

type AuthMiddleware struct {
	auth Verifier
}

func NewAuthMiddleware(auth Verifier) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// RequireAuth rejects the request with domain.ErrUnauthenticated unless it
// carries a valid bearer token, and stores the principal on the context.
func (s *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireAuth")
		defer span.End()

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)

		principal, err := s.auth.Verify(ctx, authHeader)
		if err != nil {
			span.RecordError(errors.Wrap(err, "AuthMiddleware.RequireAuth: s.auth.Verify failed"))
			return domain.ErrUnauthenticated
		}

		ctx = domain.ContextWithPrincipal(ctx, principal)
		span.SetAttributes(attribute.String("RequesterId", principal.UserID))

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
