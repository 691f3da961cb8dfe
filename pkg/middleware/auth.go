package middleware

import (
	"context"

	"engagement-tracker/internal/authz"
	"engagement-tracker/pkg/contextkeys"
	apperrors "engagement-tracker/pkg/errors"
	"engagement-tracker/pkg/service"
	"engagement-tracker/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionGate answers the per-request session questions: has this token
// been revoked, and what role does the user hold right now.
type SessionGate interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	ResolveRole(ctx context.Context, userID uint64) (string, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	gate       SessionGate
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtService service.JWTService, gate SessionGate, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, gate: gate, logger: logger}
}

const sessionCookieName = "jwt"

// Auth authenticates the session cookie and loads the subject into the
// request context. The role comes from a fresh user read, not from the
// token, so promotions apply without re-login.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			return utils.ErrorResponse(c, apperrors.ErrTokenMissing, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(cookie.Value)
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}

		revoked, err := m.gate.IsTokenRevoked(c.Request().Context(), claims.ID)
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		if revoked {
			return utils.ErrorResponse(c, apperrors.ErrTokenRevoked, m.logger)
		}

		role, err := m.gate.ResolveRole(c.Request().Context(), claims.UserID)
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// AdminOnly must run after Auth.
func (m *AuthMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, err := utils.GetUserRoleFromCtx(c.Request().Context())
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		if role != authz.RoleAdmin {
			return utils.ErrorResponse(c, apperrors.ErrAdminsOnly, m.logger)
		}
		return next(c)
	}
}
