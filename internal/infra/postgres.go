package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"globetrotter/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Surface driver constraint violations as gorm.ErrDuplicatedKey and
		// friends so services can map them to conflicts.
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

// Migrate creates or updates the schema. FK cascades and check constraints
// come from the model tags and back up the application-level validation.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.UserProfile{},
		&db_models.Trip{},
		&db_models.TripStop{},
		&db_models.Activity{},
		&db_models.Budget{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed")
	}
}
