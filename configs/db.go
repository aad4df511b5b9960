package configs

import (
	"github.com/meghk47/FindWorker/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema; a no-op for tables that already exist
	db.AutoMigrate(
		&entity.User{},
		&entity.Worker{},
		&entity.BookingRequest{},
		&entity.Feedback{},
		&entity.Session{},
	)
}
