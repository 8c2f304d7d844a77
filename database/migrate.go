package database

import (
	"gorm.io/gorm"

	"joblink_backend/internal/models"
)

// Migrate applies the schema. Order matters: jobs reference
// organizations, ledger records reference candidates and jobs.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.Candidate{},
		&models.Organization{},
		&models.Recruiter{},
		&models.Admin{},
		&models.Job{},
		&models.JobApplication{},
	)
}
