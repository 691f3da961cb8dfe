package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// JWT and session tokens
	ErrInvalidSigningMethod = errors.New("unexpected token signing method")
	ErrInvalidToken         = errors.New("not authenticated, token invalid")
	ErrTokenExpired         = errors.New("not authenticated, token expired")
	ErrTokenRevoked         = errors.New("not authenticated, token revoked")
	ErrTokenMissing         = errors.New("not authenticated, token required")

	// Authentication / authorization
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("not authenticated")
	ErrForbidden          = errors.New("unauthorized")
	ErrAdminsOnly         = errors.New("access denied: admins only")

	// Common
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("invalid request")
	ErrEmailTaken = errors.New("email is already registered")
)

// HttpError carries an explicit HTTP status alongside the client-facing
// message. The wrapped error stays server-side: it is logged but never
// sent to the client.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string { return e.Message }

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}
