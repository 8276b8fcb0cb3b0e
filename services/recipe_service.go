package services

import (
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"
)

type RecipeParams struct {
	Title        string  `json:"title" binding:"required"`
	Summary      string  `json:"summary"`
	Ingredients  string  `json:"ingredients" binding:"required"`
	Instructions string  `json:"instructions" binding:"required"`
	PrepMinutes  int     `json:"prep_minutes"`
	CookMinutes  int     `json:"cook_minutes"`
	Servings     int     `json:"servings"`
	ImageURL     string  `json:"image"`
	Published    *bool   `json:"published"`
	DishID       *uint   `json:"dish_id"`
}

func ListPublishedRecipes() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := config.DB.Where("published = ?", true).Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

func GetRecipeBySlug(slug string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := config.DB.Where("slug = ? AND published = ?", slug, true).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func CreateRecipe(p RecipeParams) (*models.Recipe, error) {
	published := false
	if p.Published != nil {
		published = *p.Published
	}
	recipe := models.Recipe{
		Title:        p.Title,
		Slug:         utils.UniqueSlug(utils.Slugify(p.Title), recipeSlugTaken),
		Summary:      p.Summary,
		Ingredients:  p.Ingredients,
		Instructions: p.Instructions,
		PrepMinutes:  p.PrepMinutes,
		CookMinutes:  p.CookMinutes,
		Servings:     p.Servings,
		ImageURL:     p.ImageURL,
		Published:    published,
		DishID:       p.DishID,
	}
	if err := config.DB.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func UpdateRecipe(id uint, p RecipeParams) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := config.DB.First(&recipe, id).Error; err != nil {
		return nil, err
	}

	if recipe.Title != p.Title {
		recipe.Slug = utils.UniqueSlug(utils.Slugify(p.Title), recipeSlugTaken)
	}
	recipe.Title = p.Title
	recipe.Summary = p.Summary
	recipe.Ingredients = p.Ingredients
	recipe.Instructions = p.Instructions
	recipe.PrepMinutes = p.PrepMinutes
	recipe.CookMinutes = p.CookMinutes
	recipe.Servings = p.Servings
	if p.ImageURL != "" {
		recipe.ImageURL = p.ImageURL
	}
	if p.Published != nil {
		recipe.Published = *p.Published
	}
	recipe.DishID = p.DishID

	if err := config.DB.Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func DeleteRecipe(id uint) error {
	var recipe models.Recipe
	if err := config.DB.First(&recipe, id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&recipe).Error
}

func recipeSlugTaken(slug string) bool {
	var count int64
	config.DB.Unscoped().Model(&models.Recipe{}).Where("slug = ?", slug).Count(&count)
	return count > 0
}
