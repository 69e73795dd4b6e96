package middleware

import (
	"fmt"
	"strings"

	deliverycontext "ledger/internal/delivery/context"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the bearer token.
// Every rejection carries a WWW-Authenticate challenge with the configured
// realm and surfaces as the same unauthorized outcome.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return m.reject(c)
		}

		principal, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return m.reject(c)
		}

		// Make the caller available to handlers and to the usecase layer.
		deliverycontext.SetUserID(c, principal.UserID)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, fmt.Sprintf("Bearer realm=%q", m.tokenSvc.Realm()))

	return domainerrors.ErrUnauthorized
}
