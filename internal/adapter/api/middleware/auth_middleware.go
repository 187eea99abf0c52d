package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ideanest/internal/usecase"
)

// AuthMiddleware gates routes behind a verified bearer token. The core
// never reads ambient session state; handlers receive the identity that
// was resolved here.
type AuthMiddleware struct {
	verifiers []usecase.TokenVerifier
}

func NewAuthMiddleware(verifiers ...usecase.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifiers: verifiers,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		identity, err := m.Verify(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("identity", identity)

		return next(c)
	}
}

// Verify tries each configured verifier in order. In development the dev
// token verifier sits in front of Firebase.
func (m *AuthMiddleware) Verify(ctx context.Context, token string) (*usecase.Identity, error) {
	var lastErr error
	for _, verifier := range m.verifiers {
		identity, err := verifier.VerifyToken(ctx, token)
		if err == nil {
			return identity, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// IdentityFrom pulls the authenticated identity a handler can rely on.
func IdentityFrom(c echo.Context) *usecase.Identity {
	identity, _ := c.Get("identity").(*usecase.Identity)
	return identity
}
