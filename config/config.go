package config

import (
	"fmt"
	"log"
	"os"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate is split out so tests can run it against their own DB.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RevokedToken{},
		&models.Category{},
		&models.ExtraCategory{},
		&models.ExtraItem{},
		&models.Dish{},
		&models.Cart{},
		&models.CartItem{},
		&models.CartItemExtra{},
		&models.Order{},
		&models.OrderLine{},
		&models.Booking{},
		&models.Recipe{},
		&models.Lesson{},
		&models.LessonBooking{},
		&models.Review{},
		&models.Contact{},
	)
}
