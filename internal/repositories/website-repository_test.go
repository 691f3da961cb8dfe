package repositories

import (
	"context"
	"testing"
	"time"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/dto"
	apperrors "engagement-tracker/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }
func u64Ptr(v uint64) *uint64 { return &v }

func newWebsiteDTO() dto.CreateWebsiteDTO {
	return dto.CreateWebsiteDTO{
		Software:   "Palika ERP",
		StartDate:  "2026-01-15",
		EndDate:    "2027-01-14",
		StateID:    3,
		DistrictID: 27,
		PalikaID:   301,
	}
}

func TestWebsiteRepository_Integration_CreateAndFind(t *testing.T) {
	require.NotNil(t, testPool)
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewWebsiteRepository(testPool)

	created, err := repo.CreateWebsite(context.Background(), ownerID, newWebsiteDTO())
	require.NoError(t, err)
	require.NotNil(t, created.UserID)
	assert.Equal(t, ownerID, *created.UserID)
	assert.Equal(t, "Palika ERP", created.Software)
	assert.Equal(t, "2026-01-15", created.StartDate.Format("2006-01-02"))

	found, err := repo.FindWebsite(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestWebsiteRepository_Integration_OwnerScope(t *testing.T) {
	cleanupTables(t, testPool)
	aliceID := seedUser(t, testPool, "alice@example.com", authz.RoleUser)
	bobID := seedUser(t, testPool, "bob@example.com", authz.RoleUser)
	repo := NewWebsiteRepository(testPool)

	_, err := repo.CreateWebsite(context.Background(), aliceID, newWebsiteDTO())
	require.NoError(t, err)
	_, err = repo.CreateWebsite(context.Background(), bobID, newWebsiteDTO())
	require.NoError(t, err)

	scoped, err := repo.GetWebsites(context.Background(), &aliceID, false)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, aliceID, *scoped[0].UserID)
	assert.Nil(t, scoped[0].Owner)

	all, err := repo.GetWebsites(context.Background(), nil, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.NotNil(t, all[0].Owner)
	assert.Equal(t, "alice@example.com", all[0].Owner.Email)
}

func TestWebsiteRepository_Integration_MergePatch(t *testing.T) {
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewWebsiteRepository(testPool)

	created, err := repo.CreateWebsite(context.Background(), ownerID, newWebsiteDTO())
	require.NoError(t, err)

	updated, err := repo.UpdateWebsite(context.Background(), created.ID, dto.UpdateWebsiteDTO{
		Software: strPtr("Sifaris Portal"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Sifaris Portal", updated.Software)
	assert.Equal(t, created.StartDate, updated.StartDate)
	assert.Equal(t, created.StateID, updated.StateID)

	// An empty patch must not error and must not touch row content.
	same, err := repo.UpdateWebsite(context.Background(), created.ID, dto.UpdateWebsiteDTO{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Sifaris Portal", same.Software)
}

func TestWebsiteRepository_Integration_ClaimOrphanedRecord(t *testing.T) {
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewWebsiteRepository(testPool)

	var orphanID uint64
	err := testPool.QueryRow(context.Background(),
		`INSERT INTO websites (software, start_date, end_date, state_id, district_id)
		 VALUES ('Legacy CMS', '2020-01-01', '2021-01-01', 1, 1) RETURNING id`).Scan(&orphanID)
	require.NoError(t, err)

	updated, err := repo.UpdateWebsite(context.Background(), orphanID, dto.UpdateWebsiteDTO{
		Software: strPtr("Legacy CMS v2"),
	}, u64Ptr(ownerID))
	require.NoError(t, err)
	require.NotNil(t, updated.UserID)
	assert.Equal(t, ownerID, *updated.UserID)
	assert.Nil(t, updated.PalikaID)
}

func TestWebsiteRepository_Integration_UpdatedAtMoves(t *testing.T) {
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewWebsiteRepository(testPool)

	created, err := repo.CreateWebsite(context.Background(), ownerID, newWebsiteDTO())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	updated, err := repo.UpdateWebsite(context.Background(), created.ID, dto.UpdateWebsiteDTO{
		StateID: i64Ptr(5),
	}, nil)
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestWebsiteRepository_Integration_DeleteAndNotFound(t *testing.T) {
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewWebsiteRepository(testPool)

	created, err := repo.CreateWebsite(context.Background(), ownerID, newWebsiteDTO())
	require.NoError(t, err)

	require.NoError(t, repo.DeleteWebsite(context.Background(), created.ID))

	err = repo.DeleteWebsite(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.FindWebsite(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
