package jwt

import (
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token.
type Claims struct {
	Name   string `json:"name"`
	UserID string `json:"userid"`
	gojwt.RegisteredClaims
}

// Create creates a server signed HS256 JWT for the given principal.
func Create(name, userID string, issuedAt time.Time, ttl time.Duration, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret is empty")
	}

	claims := Claims{
		Name:   name,
		UserID: userID,
		RegisteredClaims: gojwt.RegisteredClaims{
			IssuedAt:  gojwt.NewNumericDate(issuedAt),
			ExpiresAt: gojwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Validate checks is jwt signature valid and not expired
func Validate(token string, secret string, now time.Time) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}

	var claims Claims
	parsed, err := gojwt.ParseWithClaims(
		token,
		&claims,
		func(t *gojwt.Token) (any, error) {
			return []byte(secret), nil
		},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid jwt")
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("jwt has no userid claim")
	}

	// all checks passed
	return &claims, nil
}
