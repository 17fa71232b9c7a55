package database

import (
	"log"

	"myadvisor/config"
	"myadvisor/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database handle used by the GORM repositories.
var DB *gorm.DB

// InitDB initializes the Postgres connection and runs schema migrations.
func InitDB() {
	logLevel := logger.Warn
	if !config.IsProduction() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.InvestorProfile{},
		&models.AdvisorProfile{},
		&models.ServiceType{},
		&models.ShiftSchedule{},
		&models.Appointment{},
		&models.Review{},
		&models.Message{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	DB = db
	seedServiceTypes(db)
	log.Println("Connected to Postgres successfully!")
}

// seedServiceTypes inserts the built-in advisory categories if missing.
func seedServiceTypes(db *gorm.DB) {
	names := []string{
		"Retirement Planning",
		"Investment Management",
		"Tax Planning",
		"Estate Planning",
		"Insurance Advisory",
	}
	for _, name := range names {
		if err := db.Where(models.ServiceType{Name: name}).
			FirstOrCreate(&models.ServiceType{Name: name}).Error; err != nil {
			log.Printf("failed to seed service type %q: %v", name, err)
		}
	}
}
