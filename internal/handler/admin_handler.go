package handler

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/pubnicaragua/investi-documentacion2/internal/config"
	"github.com/pubnicaragua/investi-documentacion2/internal/handler/dto"
)

// AdminHandler owns dashboard authentication. The dashboard has a single
// operator account configured as a bcrypt hash; there is no admin user
// table to manage.
type AdminHandler struct {
	authMiddleware *jwt.HertzJWTMiddleware
	logger         *slog.Logger
}

// NewAdminHandler creates the admin handler and its JWT middleware
func NewAdminHandler(cfg config.AdminConfig, logger *slog.Logger) *AdminHandler {
	authMiddleware, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "investi-admin",
		Key:         []byte(cfg.JWTSecret),
		Timeout:     time.Hour * 24,
		MaxRefresh:  time.Hour * 24 * 7,
		IdentityKey: "admin_user",

		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var loginReq dto.AdminLoginRequest
			if err := c.BindJSON(&loginReq); err != nil {
				return nil, jwt.ErrMissingLoginValues
			}

			usernameOK := subtle.ConstantTimeCompare([]byte(loginReq.Username), []byte(cfg.Username)) == 1
			passwordErr := bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(loginReq.Password))
			if !usernameOK || passwordErr != nil {
				logger.Warn("admin login rejected", "username", loginReq.Username)
				return nil, jwt.ErrFailedAuthentication
			}

			return loginReq.Username, nil
		},

		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if username, ok := data.(string); ok {
				return jwt.MapClaims{"admin_user": username}
			}
			return jwt.MapClaims{}
		},

		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			if username, ok := claims["admin_user"].(string); ok {
				c.Set("admin_user", username)
				return username
			}
			return ""
		},

		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			username, ok := data.(string)
			return ok && username != ""
		},

		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"code":    "UNAUTHORIZED",
				"message": message,
			})
		},

		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			c.JSON(consts.StatusOK, Response{
				Code:    "SUCCESS",
				Message: "operation successful",
				Data: dto.AdminLoginResponse{
					Token:  token,
					Expire: expire.Format(time.RFC3339),
				},
			})
		},

		TokenLookup:   "header: Authorization",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
	})
	if err != nil {
		logger.Error("failed to create jwt middleware", "error", err)
		panic(err)
	}

	return &AdminHandler{authMiddleware: authMiddleware, logger: logger}
}

// Login handles the dashboard login
// @Summary Admin login
// @Description Exchanges operator credentials for a dashboard token
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} Response{data=dto.AdminLoginResponse}
// @Failure 401 {object} Response
// @Router /api/v1/admin/login [post]
func (h *AdminHandler) Login(ctx context.Context, c *app.RequestContext) {
	h.authMiddleware.LoginHandler(ctx, c)
}

// AuthMiddleware returns the JWT validation middleware for admin routes
func (h *AdminHandler) AuthMiddleware() app.HandlerFunc {
	return h.authMiddleware.MiddlewareFunc()
}
