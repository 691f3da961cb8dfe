package controllers

import (
	"net/http"
	"strconv"
	"time"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/dto"
	"engagement-tracker/internal/services"
	"engagement-tracker/pkg/config"
	apperrors "engagement-tracker/pkg/errors"
	"engagement-tracker/pkg/service"
	"engagement-tracker/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const sessionCookieName = "jwt"

type AuthController struct {
	authService services.AuthServiceInterface
	userService services.UserServiceInterface
	jwtService  service.JWTService
	cfg         *config.Config
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	userService services.UserServiceInterface,
	jwtService service.JWTService,
	cfg *config.Config,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		userService: userService,
		jwtService:  jwtService,
		cfg:         cfg,
		logger:      logger,
	}
}

func (ctrl *AuthController) Signup(c echo.Context) error {
	var payload dto.SignupDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.authService.Signup(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.issueSession(c, user.ID); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusCreated, user)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.ErrBadRequest, ctrl.logger)
	}
	if err := c.Validate(payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.issueSession(c, user.ID); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, user)
}

// Logout revokes the presented session server side and clears the cookie.
// An absent or already invalid cookie still logs out cleanly.
func (ctrl *AuthController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if claims, err := ctrl.jwtService.ValidateToken(cookie.Value); err == nil {
			if err := ctrl.authService.RevokeToken(c.Request().Context(), claims); err != nil {
				return utils.ErrorResponse(c, err, ctrl.logger)
			}
		}
	}
	ctrl.clearSession(c)
	return utils.MessageResponse(c, http.StatusOK, "logged out successfully")
}

func (ctrl *AuthController) Check(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	user, err := ctrl.authService.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, user)
}

func (ctrl *AuthController) GetUsers(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	users, err := ctrl.userService.GetUsers(c.Request().Context(), subject)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, users)
}

func (ctrl *AuthController) Promote(c echo.Context) error {
	subject, err := authz.SubjectFromContext(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("invalid user id"), ctrl.logger)
	}

	user, err := ctrl.userService.PromoteUser(c.Request().Context(), subject, targetID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.JSON(http.StatusOK, user)
}

func (ctrl *AuthController) issueSession(c echo.Context, userID uint64) error {
	token, err := ctrl.jwtService.GenerateToken(userID)
	if err != nil {
		return err
	}
	c.SetCookie(ctrl.sessionCookie(token, ctrl.jwtService.GetSessionTTL()))
	return nil
}

func (ctrl *AuthController) clearSession(c echo.Context) {
	cookie := ctrl.sessionCookie("", 0)
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)
}

func (ctrl *AuthController) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if ctrl.cfg.IsProduction() {
		cookie.SameSite = http.SameSiteNoneMode
		cookie.Secure = true
	}
	return cookie
}
