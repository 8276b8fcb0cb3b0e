package services

import (
	"errors"
	"math/rand"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"
)

var ErrNotEnoughDishes = errors.New("not enough available dishes to feature")

type DishParams struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Price           float64  `json:"price" binding:"required,gt=0"`
	CategoryID      uint     `json:"category_id" binding:"required"`
	ImageURL        string   `json:"image"`
	Available       *bool    `json:"is_available"`
	AllowedExtraIDs []uint   `json:"allowed_extra_ids"`
	PairingIDs      []uint   `json:"pairing_ids"`
}

// ListAvailableDishes returns the menu, optionally narrowed to a
// category slug.
func ListAvailableDishes(categorySlug string) ([]models.Dish, error) {
	q := config.DB.Preload("Category").Where("available = ?", true)
	if categorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = dishes.category_id").
			Where("categories.slug = ?", categorySlug)
	}
	var dishes []models.Dish
	err := q.Order("dishes.name").Find(&dishes).Error
	return dishes, err
}

// GetDishDetail loads a dish by category and slug with everything the
// detail page needs.
func GetDishDetail(categorySlug, dishSlug string) (*models.Dish, error) {
	var dish models.Dish
	err := config.DB.
		Preload("Category").
		Preload("AllowedExtras.Extras", "available = ?", true).
		Preload("SuggestedPairings", "available = ?", true).
		Joins("JOIN categories ON categories.id = dishes.category_id").
		Where("categories.slug = ? AND dishes.slug = ?", categorySlug, dishSlug).
		First(&dish).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// FeaturedDishes picks 3 random available dishes, refusing when the menu
// is too small to sample.
func FeaturedDishes() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := config.DB.Preload("Category").Where("available = ?", true).Find(&dishes).Error; err != nil {
		return nil, err
	}
	if len(dishes) < 3 {
		return nil, ErrNotEnoughDishes
	}
	rand.Shuffle(len(dishes), func(i, j int) { dishes[i], dishes[j] = dishes[j], dishes[i] })
	return dishes[:3], nil
}

func CreateDish(p DishParams) (*models.Dish, error) {
	available := true
	if p.Available != nil {
		available = *p.Available
	}
	dish := models.Dish{
		Name:        p.Name,
		Slug:        utils.UniqueSlug(utils.Slugify(p.Name), dishSlugTaken),
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		Available:   available,
	}
	if err := config.DB.Create(&dish).Error; err != nil {
		return nil, err
	}
	if err := setDishRelations(&dish, p.AllowedExtraIDs, p.PairingIDs); err != nil {
		return nil, err
	}
	return reloadDish(dish.ID)
}

func UpdateDish(id uint, p DishParams) (*models.Dish, error) {
	var dish models.Dish
	if err := config.DB.First(&dish, id).Error; err != nil {
		return nil, err
	}

	if dish.Name != p.Name {
		dish.Slug = utils.UniqueSlug(utils.Slugify(p.Name), dishSlugTaken)
	}
	dish.Name = p.Name
	dish.Description = p.Description
	dish.Price = p.Price
	dish.CategoryID = p.CategoryID
	if p.ImageURL != "" {
		dish.ImageURL = p.ImageURL
	}
	if p.Available != nil {
		dish.Available = *p.Available
	}
	if err := config.DB.Save(&dish).Error; err != nil {
		return nil, err
	}
	if err := setDishRelations(&dish, p.AllowedExtraIDs, p.PairingIDs); err != nil {
		return nil, err
	}
	return reloadDish(dish.ID)
}

// DeleteDish soft-deletes; order lines keep their snapshots.
func DeleteDish(id uint) error {
	var dish models.Dish
	if err := config.DB.First(&dish, id).Error; err != nil {
		return err
	}
	return config.DB.Delete(&dish).Error
}

func setDishRelations(dish *models.Dish, extraIDs, pairingIDs []uint) error {
	if extraIDs != nil {
		var extras []models.ExtraCategory
		if err := config.DB.Find(&extras, extraIDs).Error; err != nil {
			return err
		}
		if err := config.DB.Model(dish).Association("AllowedExtras").Replace(extras); err != nil {
			return err
		}
	}
	if pairingIDs != nil {
		var pairings []models.Dish
		if err := config.DB.Find(&pairings, pairingIDs).Error; err != nil {
			return err
		}
		if err := config.DB.Model(dish).Association("SuggestedPairings").Replace(pairings); err != nil {
			return err
		}
	}
	return nil
}

func reloadDish(id uint) (*models.Dish, error) {
	var dish models.Dish
	err := config.DB.
		Preload("Category").
		Preload("AllowedExtras").
		Preload("SuggestedPairings").
		First(&dish, id).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// Unscoped: a soft-deleted dish still owns its slug in the unique index.
func dishSlugTaken(slug string) bool {
	var count int64
	config.DB.Unscoped().Model(&models.Dish{}).Where("slug = ?", slug).Count(&count)
	return count > 0
}
