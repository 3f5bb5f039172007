package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tunedeck/tunedeck/internal/domain"
	"github.com/tunedeck/tunedeck/jwt"
)

var tracer = otel.Tracer("auth")

type AuthService struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source used for issuing and expiry checks.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Issue signs a token for the account, valid for the configured TTL.
func (s *AuthService) Issue(name, userID string) (string, error) {
	return jwt.Create(name, userID, s.now(), s.ttl, s.secret)
}

// Verify checks an Authorization header value of the form "Bearer <token>".
// Every failure is reported as domain.ErrUnauthenticated.
func (s *AuthService) Verify(ctx context.Context, authHeader string) (domain.Principal, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Verify")
	defer span.End()

	if s.secret == "" {
		span.RecordError(fmt.Errorf("jwt secret is not configured"))
		return domain.Principal{}, domain.ErrUnauthenticated
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" || strings.Contains(token, " ") {
		span.RecordError(fmt.Errorf("invalid authentication header"))
		return domain.Principal{}, domain.ErrUnauthenticated
	}

	claims, err := jwt.Validate(token, s.secret, s.now())
	if err != nil {
		span.RecordError(errors.Wrap(err, "jwt validation failed"))
		return domain.Principal{}, domain.ErrUnauthenticated
	}

	span.SetAttributes(attribute.String("RequesterId", claims.UserID))
	return domain.Principal{UserID: claims.UserID, Name: claims.Name}, nil
}
