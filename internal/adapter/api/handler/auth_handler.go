package handler

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"portalcms/pkg/config"
	apperrors "portalcms/pkg/errors"
	"portalcms/pkg/response"
)

// AuthHandler issues the admin session token. The tool has a single staff
// account configured through the environment.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
	Username  string `json:"username"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if h.cfg.AdminPassword == "" || !userOK || !passOK {
		return response.Error(c, apperrors.Unauthorized("Invalid username or password", nil))
	}

	expiresAt := time.Now().Add(time.Duration(h.cfg.JWTExpiry) * time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Username,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		return response.Error(c, apperrors.Internal("Failed to sign token", err))
	}

	return response.Success(c, LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt.Unix(),
		Username:  req.Username,
	})
}

// Me returns the authenticated username, used by the UI to restore a
// session on reload.
func (h *AuthHandler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)
	return response.Success(c, map[string]string{"username": username})
}
