package repositories

import (
	"context"
	"testing"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/entities"
	apperrors "engagement-tracker/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserRepository_Integration_CreateUser(t *testing.T) {
	require.NotNil(t, testPool)
	cleanupTables(t, testPool)
	repo := NewUserRepository(testPool, zap.NewNop())

	user, err := repo.CreateUser(context.Background(), "new@example.com", "hash", "New User")
	require.NoError(t, err)
	assert.Equal(t, authz.RoleUser, user.Role)
	assert.Equal(t, "new@example.com", user.Email)

	_, err = repo.CreateUser(context.Background(), "new@example.com", "hash", "Duplicate")
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestUserRepository_Integration_FindByEmailAndID(t *testing.T) {
	cleanupTables(t, testPool)
	repo := NewUserRepository(testPool, zap.NewNop())

	created, err := repo.CreateUser(context.Background(), "find@example.com", "hash", "Find Me")
	require.NoError(t, err)

	byEmail, err := repo.FindUserByEmail(context.Background(), "find@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindUserByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "find@example.com", byID.Email)

	_, err = repo.FindUserByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_Integration_PromoteToAdmin(t *testing.T) {
	cleanupTables(t, testPool)
	repo := NewUserRepository(testPool, zap.NewNop())

	created, err := repo.CreateUser(context.Background(), "promote@example.com", "hash", "Soon Admin")
	require.NoError(t, err)

	promoted, err := repo.PromoteToAdmin(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleAdmin, promoted.Role)

	_, err = repo.PromoteToAdmin(context.Background(), 999999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGeoRepository_Integration_BulkInsertAndCascade(t *testing.T) {
	cleanupTables(t, testPool)
	repo := NewGeoRepository(testPool)

	code := "P3"
	states, err := repo.BulkInsertStates(context.Background(), []entities.State{
		{ID: 3, Name: "Bagmati", NameNep: "बागमती", Code: &code},
		{ID: 1, Name: "Koshi", NameNep: "कोशी"},
	})
	require.NoError(t, err)
	assert.Len(t, states, 2)

	_, err = repo.BulkInsertDistricts(context.Background(), []entities.District{
		{ID: 27, StateID: 3, Name: "Kathmandu", NameNep: "काठमाडौं"},
		{ID: 26, StateID: 3, Name: "Lalitpur", NameNep: "ललितपुर"},
		{ID: 1, StateID: 1, Name: "Taplejung", NameNep: "ताप्लेजुङ"},
	})
	require.NoError(t, err)

	all, err := repo.GetStates(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)

	bagmati := int64(3)
	districts, err := repo.GetDistricts(context.Background(), &bagmati)
	require.NoError(t, err)
	require.Len(t, districts, 2)
	assert.Equal(t, "Lalitpur", districts[0].Name)

	everyDistrict, err := repo.GetDistricts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, everyDistrict, 3)
}

func TestGeoRepository_Integration_DuplicateID(t *testing.T) {
	cleanupTables(t, testPool)
	repo := NewGeoRepository(testPool)

	_, err := repo.BulkInsertStates(context.Background(), []entities.State{
		{ID: 1, Name: "Koshi", NameNep: "कोशी"},
	})
	require.NoError(t, err)

	_, err = repo.BulkInsertStates(context.Background(), []entities.State{
		{ID: 1, Name: "Koshi", NameNep: "कोशी"},
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}
