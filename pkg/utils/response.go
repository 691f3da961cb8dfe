package utils

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "engagement-tracker/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MessageBody is the uniform shape for error responses and for successes
// that carry no resource.
type MessageBody struct {
	Message string `json:"message"`
}

var errorStatusList = []struct {
	err  error
	code int
}{
	{apperrors.ErrNotFound, http.StatusNotFound},
	{apperrors.ErrForbidden, http.StatusForbidden},
	{apperrors.ErrAdminsOnly, http.StatusForbidden},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{apperrors.ErrTokenMissing, http.StatusUnauthorized},
	{apperrors.ErrInvalidToken, http.StatusUnauthorized},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized},
	{apperrors.ErrTokenRevoked, http.StatusUnauthorized},
	{apperrors.ErrEmailTaken, http.StatusBadRequest},
	{apperrors.ErrBadRequest, http.StatusBadRequest},
}

func MessageResponse(c echo.Context, code int, format string, args ...interface{}) error {
	return c.JSON(code, MessageBody{Message: fmt.Sprintf(format, args...)})
}

// ErrorResponse converts any error into the client-facing {message} shape.
// Unknown errors become a generic 500; their details go to the log only.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("request failed", zap.Int("status", httpErr.Code), zap.Error(httpErr.Err))
		}
		return c.JSON(httpErr.Code, MessageBody{Message: httpErr.Message})
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.JSON(http.StatusBadRequest, MessageBody{Message: "all required fields must be provided"})
	}

	for _, entry := range errorStatusList {
		if errors.Is(err, entry.err) {
			return c.JSON(entry.code, MessageBody{Message: entry.err.Error()})
		}
	}

	logger.Error("unhandled internal error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, MessageBody{Message: "internal server error"})
}
