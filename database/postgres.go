package database

import (
	"log"
	"volunteermatch-backend/config"
	"volunteermatch-backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect() {
	var err error
	DB, err = gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("✅ Database connected successfully")

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database migrated successfully")
}

// Migrate runs the schema migration for every entity the service persists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Volunteer{},
		&models.Organization{},
		&models.VolunteerType{},
		&models.VolunteerRequest{},
		&models.VolunteerInvitation{},
		&models.VolunteerReview{},
		&models.InvitationStatusChange{},
	)
}
