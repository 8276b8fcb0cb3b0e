package services

import (
	"errors"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
)

var ErrBadRating = errors.New("rating must be between 1 and 5")

func ListDishReviews(categorySlug, dishSlug string) ([]models.Review, error) {
	dish, err := findReviewedDish(categorySlug, dishSlug)
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	err = config.DB.Preload("User").
		Where("dish_id = ?", dish.ID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// UpsertReview writes the user's review of a dish, replacing any
// earlier one.
func UpsertReview(categorySlug, dishSlug string, userID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrBadRating
	}
	dish, err := findReviewedDish(categorySlug, dishSlug)
	if err != nil {
		return nil, err
	}

	var review models.Review
	err = config.DB.Where("dish_id = ? AND user_id = ?", dish.ID, userID).First(&review).Error
	if err == nil {
		review.Rating = rating
		review.Comment = comment
		if err := config.DB.Save(&review).Error; err != nil {
			return nil, err
		}
		return &review, nil
	}

	review = models.Review{DishID: dish.ID, UserID: userID, Rating: rating, Comment: comment}
	if err := config.DB.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// findReviewedDish resolves the same category+slug pair the dish detail
// page uses, so review URLs 404 under the wrong category.
func findReviewedDish(categorySlug, dishSlug string) (*models.Dish, error) {
	var dish models.Dish
	err := config.DB.
		Joins("JOIN categories ON categories.id = dishes.category_id").
		Where("categories.slug = ? AND dishes.slug = ?", categorySlug, dishSlug).
		First(&dish).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}
