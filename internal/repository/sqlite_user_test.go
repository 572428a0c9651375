package repository

import (
	"context"
	"testing"

	"github.com/rmaldonado/sapo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	u := testutil.NewTestUser(testutil.WithUserName("Carla"))
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.WhatsAppNumber, byID.WhatsAppNumber)
	assert.Equal(t, "Carla", byID.Name)

	byNumber, err := repo.GetByNumber(ctx, u.WhatsAppNumber)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byNumber.ID)
}

func TestUserRepo_GetByNumber_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)

	_, err := repo.GetByNumber(context.Background(), "56900000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_Upsert_NewUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	u := testutil.NewTestUser()
	require.NoError(t, repo.Upsert(ctx, u))

	fetched, err := repo.GetByNumber(ctx, u.WhatsAppNumber)
	require.NoError(t, err)
	assert.Equal(t, u.ID, fetched.ID)
}

func TestUserRepo_Upsert_ExistingNumberKeepsIdentity(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	first := testutil.NewTestUser(testutil.WithUserName("Carla"))
	require.NoError(t, repo.Upsert(ctx, first))

	// Duplicate delivery for the same number with a fresh candidate id.
	second := testutil.NewTestUser(
		testutil.WithNumber(first.WhatsAppNumber),
		testutil.WithUserName("Carla M."),
	)
	require.NoError(t, repo.Upsert(ctx, second))

	assert.Equal(t, first.ID, second.ID, "existing number must keep its id")
	assert.Equal(t, "Carla M.", second.Name, "non-empty name refreshes the stored one")

	// Empty name must not erase the stored name.
	third := testutil.NewTestUser(
		testutil.WithNumber(first.WhatsAppNumber),
		testutil.WithUserName(""),
	)
	require.NoError(t, repo.Upsert(ctx, third))
	assert.Equal(t, "Carla M.", third.Name)
}
