package repositories

import (
	"context"
	"testing"

	"engagement-tracker/internal/authz"
	"engagement-tracker/internal/dto"
	"engagement-tracker/internal/entities"
	apperrors "engagement-tracker/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInquiryDTO(software string) dto.CreateInquiryDTO {
	return dto.CreateInquiryDTO{
		InquirerName:       "Kathmandu Metro",
		ContactPerson:      "Sita Sharma",
		ContactPersonEmail: "sita@example.com",
		PhoneNumber:        "+977-9800000000",
		Address:            "Kathmandu",
		Date:               "2026-03-01",
		Software:           software,
		Status:             entities.InquiryStatusInTalks,
		Activities:         []string{"initial call"},
		Comments:           "",
	}
}

func TestInquiryRepository_Integration_CreateAndFind(t *testing.T) {
	require.NotNil(t, testPool)
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewInquiryRepository(testPool)

	created, err := repo.CreateInquiry(context.Background(), ownerID, newInquiryDTO("Palika ERP"))
	require.NoError(t, err)
	assert.Equal(t, entities.InquiryStatusInTalks, created.Status)
	assert.Equal(t, []string{"initial call"}, created.Activities)

	found, err := repo.FindInquiry(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kathmandu Metro", found.InquirerName)
	assert.Equal(t, "2026-03-01", found.Date.Format("2006-01-02"))
}

func TestInquiryRepository_Integration_StatusFilterAndScope(t *testing.T) {
	cleanupTables(t, testPool)
	aliceID := seedUser(t, testPool, "alice@example.com", authz.RoleUser)
	bobID := seedUser(t, testPool, "bob@example.com", authz.RoleUser)
	repo := NewInquiryRepository(testPool)

	first, err := repo.CreateInquiry(context.Background(), aliceID, newInquiryDTO("Palika ERP"))
	require.NoError(t, err)
	_, err = repo.CreateInquiry(context.Background(), aliceID, newInquiryDTO("Sifaris Portal"))
	require.NoError(t, err)
	_, err = repo.CreateInquiry(context.Background(), bobID, newInquiryDTO("Palika ERP"))
	require.NoError(t, err)

	_, err = repo.UpdateInquiry(context.Background(), first.ID, dto.UpdateInquiryDTO{
		Status: strPtr(entities.InquiryStatusConfirmed),
	}, nil)
	require.NoError(t, err)

	confirmed, err := repo.GetInquiries(context.Background(), &aliceID, entities.InquiryStatusConfirmed, false)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, first.ID, confirmed[0].ID)

	aliceAll, err := repo.GetInquiries(context.Background(), &aliceID, "", false)
	require.NoError(t, err)
	assert.Len(t, aliceAll, 2)

	adminView, err := repo.GetInquiries(context.Background(), nil, "", true)
	require.NoError(t, err)
	require.Len(t, adminView, 3)
	require.NotNil(t, adminView[2].Owner)
	assert.Equal(t, "bob@example.com", adminView[2].Owner.Email)
}

func TestInquiryRepository_Integration_MergePatchActivities(t *testing.T) {
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewInquiryRepository(testPool)

	created, err := repo.CreateInquiry(context.Background(), ownerID, newInquiryDTO("Palika ERP"))
	require.NoError(t, err)

	activities := []string{"initial call", "demo scheduled"}
	updated, err := repo.UpdateInquiry(context.Background(), created.ID, dto.UpdateInquiryDTO{
		Activities: &activities,
		Comments:   strPtr("waiting on budget approval"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, activities, updated.Activities)
	assert.Equal(t, "waiting on budget approval", updated.Comments)
	assert.Equal(t, created.InquirerName, updated.InquirerName)
}

func TestInquiryRepository_Integration_DistinctSoftware(t *testing.T) {
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewInquiryRepository(testPool)

	for _, software := range []string{"Palika ERP", "Sifaris Portal", "Palika ERP"} {
		_, err := repo.CreateInquiry(context.Background(), ownerID, newInquiryDTO(software))
		require.NoError(t, err)
	}

	names, err := repo.DistinctSoftware(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Palika ERP", "Sifaris Portal"}, names)
}

func TestInquiryRepository_Integration_ActionLog(t *testing.T) {
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewInquiryRepository(testPool)

	created, err := repo.CreateInquiry(context.Background(), ownerID, newInquiryDTO("Palika ERP"))
	require.NoError(t, err)

	first, err := repo.AppendAction(context.Background(), created.ID, "call", "left a voicemail")
	require.NoError(t, err)
	assert.Equal(t, created.ID, first.InquiryID)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = repo.AppendAction(context.Background(), created.ID, "demo", "")
	require.NoError(t, err)

	actions, err := repo.GetActions(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "call", actions[0].Type)
	assert.Equal(t, "demo", actions[1].Type)
}

func TestInquiryRepository_Integration_DeleteCascadesActions(t *testing.T) {
	cleanupTables(t, testPool)
	ownerID := seedUser(t, testPool, "owner@example.com", authz.RoleUser)
	repo := NewInquiryRepository(testPool)

	created, err := repo.CreateInquiry(context.Background(), ownerID, newInquiryDTO("Palika ERP"))
	require.NoError(t, err)
	_, err = repo.AppendAction(context.Background(), created.ID, "note", "to be cascaded")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteInquiry(context.Background(), created.ID))

	var count int
	err = testPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM inquiry_actions WHERE inquiry_id = $1", created.ID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	err = repo.DeleteInquiry(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
