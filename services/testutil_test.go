package services

import (
	"fmt"
	"testing"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	t.Cleanup(func() { config.DB = nil })
}

func createTestUser(t *testing.T, email, role string) *models.User {
	t.Helper()
	user := models.User{
		Email:     email,
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		Verified:  true,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return &user
}

func createTestDish(t *testing.T, name string, price float64) *models.Dish {
	t.Helper()
	cat := models.Category{Name: "Mains", Slug: "mains-" + name, Active: true}
	require.NoError(t, config.DB.Create(&cat).Error)

	dish := models.Dish{
		Name:        name,
		Slug:        name,
		Description: "test dish",
		Price:       price,
		CategoryID:  cat.ID,
		Available:   true,
	}
	require.NoError(t, config.DB.Create(&dish).Error)
	return &dish
}
