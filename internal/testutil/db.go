package testutil

import (
	"earlyledge_backend/internal/model"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB opens an in-memory SQLite database with the full schema.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Child{},
		&model.SkillCategory{},
		&model.Activity{},
		&model.ActivitySkill{},
		&model.Suggestion{},
		&model.Subscription{},
		&model.Reflection{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}
