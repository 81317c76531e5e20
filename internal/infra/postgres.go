package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pulso/internal/models/db_models"
)

// InitPostgresql opens the connection pool used by all repositories.
// TranslateError lets repositories match unique-index violations with
// gorm.ErrDuplicatedKey instead of driver-specific error codes.
func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Tenant{},
		&db_models.Employee{},
		&db_models.Survey{},
		&db_models.Question{},
		&db_models.SurveyResponse{},
		&db_models.SurveyAnswer{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
