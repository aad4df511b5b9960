package services

import (
	"testing"

	"github.com/meghk47/FindWorker/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Worker{},
		&entity.BookingRequest{},
		&entity.Feedback{},
		&entity.Session{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
