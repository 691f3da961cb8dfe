package authz

import (
	"context"
	"testing"

	"engagement-tracker/pkg/contextkeys"
	apperrors "engagement-tracker/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, uint64(42))
	ctx = context.WithValue(ctx, contextkeys.UserRoleKey, RoleAdmin)

	subject, err := SubjectFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), subject.UserID)
	assert.True(t, subject.IsAdmin())

	_, err = SubjectFromContext(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestReadScope(t *testing.T) {
	user := Subject{UserID: 7, Role: RoleUser}
	admin := Subject{UserID: 1, Role: RoleAdmin}

	scope := ReadScope(user)
	require.NotNil(t, scope)
	assert.Equal(t, uint64(7), *scope)

	assert.Nil(t, ReadScope(admin))
}

func TestCanMutate(t *testing.T) {
	ownID := uint64(7)
	otherID := uint64(8)

	tests := []struct {
		name    string
		subject Subject
		ownerID *uint64
		wantErr error
	}{
		{"owner can mutate own record", Subject{UserID: 7, Role: RoleUser}, &ownID, nil},
		{"user cannot mutate another's record", Subject{UserID: 7, Role: RoleUser}, &otherID, apperrors.ErrForbidden},
		{"anyone can claim an ownerless record", Subject{UserID: 7, Role: RoleUser}, nil, nil},
		{"admin can mutate any record", Subject{UserID: 1, Role: RoleAdmin}, &otherID, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanMutate(tt.subject, tt.ownerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanPromote(t *testing.T) {
	assert.NoError(t, CanPromote(Subject{UserID: 1, Role: RoleAdmin}))
	assert.ErrorIs(t, CanPromote(Subject{UserID: 7, Role: RoleUser}), apperrors.ErrAdminsOnly)
}
