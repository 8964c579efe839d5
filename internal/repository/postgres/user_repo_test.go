package postgres_test

import (
	"context"
	"testing"

	"github.com/DucTam2411/blog-server/internal/domain"
	"github.com/DucTam2411/blog-server/internal/repository/postgres"
	"github.com/DucTam2411/blog-server/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUser(username string) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: "$2a$04$notarealhashbutlongenoughtostore1234567890abcdef",
	}
}

func newProfile() *domain.Profile {
	return &domain.Profile{
		ID:          uuid.New(),
		Name:        "Repo Test User",
		Email:       "repo@example.com",
		PhoneNumber: "+14155550100",
	}
}

func TestUserRepository_CreateWithProfile(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := newUser("repouser")
	err := repo.CreateWithProfile(ctx, user, newProfile())
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "repouser", found.Username)

	// The profile lands in the same transaction, linked to the user
	var profile domain.Profile
	err = testDB.DB.First(&profile, "user_id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, "Repo Test User", profile.Name)
}

func TestUserRepository_CreateWithProfile_DuplicateUsername(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	first := newUser("taken")
	require.NoError(t, repo.CreateWithProfile(ctx, first, newProfile()))

	// The unique index rejects the second insert and the translated error
	// lets callers tell the collision apart from other failures
	second := newUser("taken")
	err := repo.CreateWithProfile(ctx, second, newProfile())
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// The failed transaction leaves no orphan profile behind
	var count int64
	require.NoError(t, testDB.DB.Model(&domain.Profile{}).Where("user_id = ?", second.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user := newUser("findme")
	require.NoError(t, repo.CreateWithProfile(ctx, user, newProfile()))

	found, err := repo.GetByUsername(ctx, "findme")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.GetByUsername(ctx, "nosuchuser")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
