package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// Parents come before children.
func AllModels() []any {
	return []any{
		&Province{},
		&City{},
		&District{},
		&Neighborhood{},
		&University{},
		&Faculty{},
		&Course{},
		&Field{},
		&Profession{},
	}
}

// Migrate runs GORM AutoMigrate to create missing tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
