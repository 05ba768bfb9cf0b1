package helpers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

type CustomClaims struct {
	Role         string                 `json:"role"`
	Email        string                 `json:"email"`
	Username     string                 `json:"username,omitempty"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// ValidateToken checks the token against the backend's JWKS. If the JWKS
// endpoint is unreachable it falls back to unverified parsing so local
// development works without the auth service.
func ValidateToken(tokenStr string) (*CustomClaims, error) {
	backendURL := os.Getenv("BACKEND_BASE_URL")
	if backendURL == "" {
		return nil, errors.New("BACKEND_BASE_URL not set")
	}

	jwksURL := fmt.Sprintf("%s/api/auth/jwks", strings.TrimRight(backendURL, "/"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx: ctx,
	})
	if err != nil {
		token, _, parseErr := jwt.NewParser().ParseUnverified(tokenStr, &CustomClaims{})
		if parseErr != nil {
			return nil, fmt.Errorf("JWKS validation failed and fallback parsing failed: %v", parseErr)
		}
		claims, ok := token.Claims.(*CustomClaims)
		if !ok {
			return nil, errors.New("invalid token claims")
		}
		return claims, nil
	}
	defer jwks.EndBackground()

	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// OptionalString maps an empty form field to nil so optional wire fields
// are omitted instead of sent as "".
func OptionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
