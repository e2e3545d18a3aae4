package storage

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.WeekendPlan{},
	)

	// At most one non-terminal plan per (user, weekend). Completed and
	// cancelled plans fall outside the index so replanned weekends keep
	// their history. GORM cannot express a partial unique index.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_active_plan_per_weekend
		ON weekend_plans (user_id, weekend_date)
		WHERE status NOT IN ('completed', 'cancelled') AND deleted_at IS NULL;`)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	return db
}
