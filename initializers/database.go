package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nmapp/checkbackend/models"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}
}

// ConnectToDatabase opens the postgres connection and migrates the schema.
// TranslateError makes unique-index violations observable as
// gorm.ErrDuplicatedKey, which the repository maps to ErrDuplicate.
func ConnectToDatabase() *gorm.DB {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL is not set in environment variables")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to the database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.DownloadHistory{},
	); err != nil {
		log.Fatalf("failed to migrate database schema: %v", err)
	}
	log.Println("database connected and migrated")

	return db
}
