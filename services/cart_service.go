package services

import (
	"errors"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"

	"github.com/google/uuid"
)

var ErrCartInactive = errors.New("cart is no longer active")

type AddItemParams struct {
	CartCode           uuid.UUID
	DishID             uint
	Quantity           int
	SpecialInstruction string
	ExtraItemIDs       []uint
	UserID             *uint
	OrderType          string
}

// AddItem drops a dish into the cart identified by CartCode, creating
// the cart on first use. Adding a dish already in the cart bumps its
// quantity instead of duplicating the row.
func AddItem(p AddItemParams) (*models.CartItem, error) {
	if p.Quantity <= 0 {
		p.Quantity = 1
	}

	var dish models.Dish
	if err := config.DB.First(&dish, p.DishID).Error; err != nil {
		return nil, err
	}

	cart, err := getOrCreateCart(p.CartCode, p.UserID, p.OrderType)
	if err != nil {
		return nil, err
	}
	if !cart.Active {
		return nil, ErrCartInactive
	}

	var item models.CartItem
	err = config.DB.Where("cart_id = ? AND dish_id = ?", cart.ID, dish.ID).First(&item).Error
	if err == nil {
		item.Quantity += p.Quantity
		if p.SpecialInstruction != "" {
			item.SpecialInstruction = p.SpecialInstruction
		}
		if err := config.DB.Save(&item).Error; err != nil {
			return nil, err
		}
	} else {
		item = models.CartItem{
			CartID:             cart.ID,
			DishID:             dish.ID,
			Quantity:           p.Quantity,
			SpecialInstruction: p.SpecialInstruction,
		}
		if err := config.DB.Create(&item).Error; err != nil {
			return nil, err
		}
	}

	for _, extraID := range p.ExtraItemIDs {
		var extra models.ExtraItem
		if err := config.DB.First(&extra, extraID).Error; err != nil {
			return nil, err
		}
		var cie models.CartItemExtra
		err := config.DB.Where("cart_item_id = ? AND extra_id = ?", item.ID, extra.ID).First(&cie).Error
		if err == nil {
			cie.Quantity++
			if err := config.DB.Save(&cie).Error; err != nil {
				return nil, err
			}
			continue
		}
		cie = models.CartItemExtra{CartItemID: item.ID, ExtraID: extra.ID, Quantity: 1}
		if err := config.DB.Create(&cie).Error; err != nil {
			return nil, err
		}
	}

	var populated models.CartItem
	if err := config.DB.Preload("Dish").Preload("Extras.Extra").First(&populated, item.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

type CartStats struct {
	CartCode  uuid.UUID `json:"cart_code"`
	ItemCount int       `json:"item_count"`
	Total     float64   `json:"total"`
}

// GetCartStats is the lightweight header-badge query.
func GetCartStats(cartCode uuid.UUID) (*CartStats, error) {
	cart, err := loadCart(cartCode)
	if err != nil {
		return nil, err
	}
	stats := &CartStats{CartCode: cart.CartCode}
	for _, item := range cart.Items {
		stats.ItemCount += item.Quantity
		stats.Total += lineTotal(&item)
	}
	return stats, nil
}

func GetCart(cartCode uuid.UUID) (*models.Cart, error) {
	return loadCart(cartCode)
}

func UpdateItemQuantity(cartCode uuid.UUID, itemID uint, quantity int) (*models.CartItem, error) {
	item, err := findCartItem(cartCode, itemID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		if err := removeItem(item); err != nil {
			return nil, err
		}
		return nil, nil
	}
	item.Quantity = quantity
	if err := config.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func RemoveItem(cartCode uuid.UUID, itemID uint) error {
	item, err := findCartItem(cartCode, itemID)
	if err != nil {
		return err
	}
	return removeItem(item)
}

func getOrCreateCart(code uuid.UUID, userID *uint, orderType string) (*models.Cart, error) {
	var cart models.Cart
	err := config.DB.Where("cart_code = ?", code).First(&cart).Error
	if err == nil {
		// Claim a guest cart once the user signs in.
		if cart.UserID == nil && userID != nil {
			cart.UserID = userID
			if err := config.DB.Save(&cart).Error; err != nil {
				return nil, err
			}
		}
		return &cart, nil
	}

	if orderType != models.OrderTypePickup {
		orderType = models.OrderTypeDelivery
	}
	cart = models.Cart{CartCode: code, UserID: userID, Active: true, OrderType: orderType}
	if err := config.DB.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func loadCart(cartCode uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := config.DB.
		Preload("Items.Dish").
		Preload("Items.Extras.Extra").
		Where("cart_code = ?", cartCode).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func findCartItem(cartCode uuid.UUID, itemID uint) (*models.CartItem, error) {
	var cart models.Cart
	if err := config.DB.Where("cart_code = ?", cartCode).First(&cart).Error; err != nil {
		return nil, err
	}
	var item models.CartItem
	if err := config.DB.Preload("Extras.Extra").Preload("Dish").
		Where("id = ? AND cart_id = ?", itemID, cart.ID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func removeItem(item *models.CartItem) error {
	if err := config.DB.Where("cart_item_id = ?", item.ID).Delete(&models.CartItemExtra{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(item).Error
}

func lineTotal(item *models.CartItem) float64 {
	total := item.Dish.Price * float64(item.Quantity)
	for _, e := range item.Extras {
		total += e.Extra.Price * float64(e.Quantity)
	}
	return total
}
