package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

// AuthMiddleware verifies the Bearer token on every admin route and stashes
// the authenticated username on the context.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return response.Error(c, apperrors.Unauthorized("Missing authorization header", nil))
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return response.Error(c, apperrors.Unauthorized("Invalid authorization header", nil))
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, apperrors.Unauthorized("Unexpected signing method", nil)
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			return response.Error(c, apperrors.Unauthorized("Invalid or expired token", err))
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set("username", sub)
		}
		return next(c)
	}
}
