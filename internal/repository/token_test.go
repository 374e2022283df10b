package repository

import (
	"fmt"
	"testing"

	"beulynk/internal/database"
	"beulynk/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestIssueAndResolve(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	user := createTestUser(t, db, "ann")

	token, err := repo.Issue(t.Context(), user.ID)
	require.NoError(t, err)
	assert.Len(t, token.Key, 40)

	resolved, err := repo.Resolve(t.Context(), token.Key)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "ann", resolved.Username)
}

func TestIssueReplacesExistingToken(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	user := createTestUser(t, db, "bob")

	first, err := repo.Issue(t.Context(), user.ID)
	require.NoError(t, err)
	second, err := repo.Issue(t.Context(), user.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Key, second.Key)

	// At most one token row per user.
	var count int64
	require.NoError(t, db.Model(&models.AuthToken{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The superseded credential is dead.
	resolved, err := repo.Resolve(t.Context(), first.Key)
	require.NoError(t, err)
	assert.Nil(t, resolved)

	resolved, err = repo.Resolve(t.Context(), second.Key)
	require.NoError(t, err)
	require.NotNil(t, resolved)
}

func TestResolveUnknownKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)

	resolved, err := repo.Resolve(t.Context(), "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestRevoke(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	user := createTestUser(t, db, "carl")

	token, err := repo.Issue(t.Context(), user.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Revoke(t.Context(), token.Key))

	resolved, err := repo.Resolve(t.Context(), token.Key)
	require.NoError(t, err)
	assert.Nil(t, resolved)

	// Revoking an already-absent key is not an error.
	require.NoError(t, repo.Revoke(t.Context(), token.Key))
}

func TestCreateWithProfileDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	role := models.RoleVolunteer
	err := repo.CreateWithProfile(t.Context(),
		&models.User{Username: "dora", Email: "dora@example.com", Password: "x"},
		&models.Profile{Role: role})
	require.NoError(t, err)

	err = repo.CreateWithProfile(t.Context(),
		&models.User{Username: "dora", Email: "other@example.com", Password: "x"},
		&models.Profile{Role: role})
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Contains(t, appErr.Fields, "username")

	// The failed transaction left no orphan profile.
	var profiles int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&profiles).Error)
	assert.Equal(t, int64(1), profiles)
}
