package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/models"
)

// RunMigrations brings the schema up to date. On Postgres the pgvector
// extension is created first so the perfume embedding column migrates
// cleanly.
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return err
		}
	}

	log.Printf("Running schema migrations")
	return db.AutoMigrate(
		&models.User{},
		&models.Perfume{},
		&models.UserPerfume{},
		&models.Session{},
		&models.WearLogEntry{},
		&models.Vibe{},
		&models.UserPreference{},
	)
}
