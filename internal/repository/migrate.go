package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table this package
// owns. Used by cmd/api, cmd/seed and the test suites.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&companyModel{},
		&logoModel{},
		&brandKitModel{},
		&submissionModel{},
		&submissionFileModel{},
		&apiKeyModel{},
	)
}
