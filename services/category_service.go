package services

import (
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"
)

func ListActiveCategories() ([]models.Category, error) {
	var categories []models.Category
	err := config.DB.Where("active = ?", true).Order("name").Find(&categories).Error
	return categories, err
}

func CreateCategory(name, description, imageURL string) (*models.Category, error) {
	slug := utils.UniqueSlug(utils.Slugify(name), categorySlugTaken)
	cat := models.Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		ImageURL:    imageURL,
		Active:      true,
	}
	if err := config.DB.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func categorySlugTaken(slug string) bool {
	var count int64
	config.DB.Unscoped().Model(&models.Category{}).Where("slug = ?", slug).Count(&count)
	return count > 0
}
