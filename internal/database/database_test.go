package database

import (
	"fmt"
	"testing"

	"beulynk/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrateCreatesAllTables(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, Migrate(db))

	for _, model := range []any{
		&models.User{},
		&models.Profile{},
		&models.AuthToken{},
		&models.NGOInfo{},
		&models.VolunteerRequest{},
		&models.DonorRequest{},
		&models.HelpRequest{},
		&models.ContactMessage{},
		&models.Post{},
	} {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}

	// Running again against an up-to-date schema is a no-op.
	require.NoError(t, Migrate(db))
}
