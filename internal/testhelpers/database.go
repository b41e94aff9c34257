package testhelpers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aureapp/aure-backend/internal/models"
)

// SetupTestDatabase opens an in-memory sqlite database with the full schema
// migrated. Queries that need postgres-only features fall back to their
// portable forms, so service logic is testable without a container.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Perfume{},
		&models.UserPerfume{},
		&models.Session{},
		&models.WearLogEntry{},
		&models.Vibe{},
		&models.UserPreference{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}
