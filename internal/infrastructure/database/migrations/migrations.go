package migrations

import (
	"github.com/aarlint/wokeometer-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate creates or updates the assessments and comments tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Assessment{},
		&entities.Comment{},
	)
}

// AddIndexes adds indexes the aggregation and owner-list queries depend on.
func AddIndexes(db *gorm.DB) error {
	// Title is the aggregation join key; every aggregate view filters on it
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_assessments_show_name ON assessments (show_name)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_assessments_user_created ON assessments (user_id, created_at DESC)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_show_name ON comments (show_name)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_comments_user_id ON comments (user_id)").Error; err != nil {
		return err
	}
	return nil
}
