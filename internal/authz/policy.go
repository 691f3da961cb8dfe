// Package authz centralizes the single recurring access rule: an admin
// sees and modifies everything, a regular user only what they own.
package authz

import (
	"context"

	"engagement-tracker/pkg/contextkeys"
	apperrors "engagement-tracker/pkg/errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Subject is the authenticated caller of a request, as resolved by the
// auth middleware.
type Subject struct {
	UserID uint64
	Role   string
}

func (s Subject) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// SubjectFromContext reads the identity the auth middleware stored on the
// request context.
func SubjectFromContext(ctx context.Context) (Subject, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		return Subject{}, apperrors.ErrUnauthorized
	}
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok || role == "" {
		return Subject{}, apperrors.ErrUnauthorized
	}
	return Subject{UserID: userID, Role: role}, nil
}

// ReadScope returns the owner constraint for list queries: nil means the
// subject may see everything, otherwise results must be limited to the
// returned owner id.
func ReadScope(s Subject) *uint64 {
	if s.IsAdmin() {
		return nil
	}
	owner := s.UserID
	return &owner
}

// CanMutate decides whether the subject may update or delete a record with
// the given owner. A nil owner is allowed through: the record is orphaned
// and the caller is expected to claim it (ownership back-fill). Must be
// called only after the record's existence has been established, so that a
// missing record yields NotFound rather than Forbidden.
func CanMutate(s Subject, ownerID *uint64) error {
	if s.IsAdmin() {
		return nil
	}
	if ownerID == nil || *ownerID == s.UserID {
		return nil
	}
	return apperrors.ErrForbidden
}

// CanPromote gates the role-promotion operation.
func CanPromote(s Subject) error {
	if !s.IsAdmin() {
		return apperrors.ErrAdminsOnly
	}
	return nil
}
