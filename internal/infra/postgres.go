package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"clinicrm/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.User{},
		&db_models.CustomerStatus{},
		&db_models.Customer{},
		&db_models.CustomerNote{},
		&db_models.HistoryEntry{},
		&db_models.OperationType{},
		&db_models.FollowupPlan{},
		&db_models.Meeting{},
		&db_models.Language{},
		&db_models.Translation{},
	)
	if err != nil {
		log.Fatalf("Error running migrations: %v", err)
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
		log.Println("PostgreSQL database connection closed successfully")
	}
}
