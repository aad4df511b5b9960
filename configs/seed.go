package configs

import (
	"log"

	"github.com/meghk47/FindWorker/entity"
)

// SeedAdmin creates the single built-in admin account on first launch.
// Re-running against an existing database is a silent no-op.
func SeedAdmin() error {
	var count int64
	db.Model(&entity.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		log.Println("admin already exists")
		return nil
	}

	admin := entity.User{
		Username: "admin",
		Password: "admin123",
		Role:     "admin",
		Phone:    "0000000000",
	}
	return db.Create(&admin).Error
}

// SeedWorkers inserts the three demo worker records, skipping any that
// are already present.
func SeedWorkers() error {
	demos := []entity.Worker{
		{Name: "Ramesh Patil", Category: "Electrician", Experience: "10 Yrs", Rate: "₹300/hr", Phone: "9890011223", Address: "Shivaji Nagar, Pune", Availability: "9 AM - 6 PM", Rating: "4.8"},
		{Name: "Suresh Kale", Category: "Plumber", Experience: "5 Yrs", Rate: "₹200/hr", Phone: "9988776655", Address: "Satara Road", Availability: "10 AM - 5 PM", Rating: "4.5"},
		{Name: "Sunita Deshmukh", Category: "Farm Helper", Experience: "8 Yrs", Rate: "₹500/day", Phone: "8877665544", Address: "Village Zone 2", Availability: "6 AM - 2 PM", Rating: "4.9"},
	}

	for _, w := range demos {
		var existing entity.Worker
		if err := db.Where("name = ?", w.Name).First(&existing).Error; err != nil {
			if err := db.Create(&w).Error; err != nil {
				return err
			}
		}
	}
	log.Println("demo workers seeded")
	return nil
}
