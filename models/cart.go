package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

// Cart is keyed by a client-generated UUID code so guests can shop
// before signing in.
type Cart struct {
	gorm.Model
	CartCode  uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"cart_code"`
	UserID    *uint      `gorm:"index" json:"user_id,omitempty"`
	Active    bool       `gorm:"default:true" json:"is_active"`
	Paid      bool       `gorm:"default:false" json:"paid"`
	OrderType string     `gorm:"size:10;default:delivery" json:"order_type"`
	Items     []CartItem `json:"items,omitempty"`
}

type CartItem struct {
	gorm.Model
	CartID             uint            `gorm:"index;not null" json:"cart_id"`
	DishID             uint            `gorm:"index;not null" json:"dish_id"`
	Dish               Dish            `json:"dish,omitempty"`
	Quantity           int             `gorm:"default:1" json:"quantity"`
	SpecialInstruction string          `gorm:"type:text" json:"special_instruction,omitempty"`
	Extras             []CartItemExtra `json:"extras,omitempty"`
}

type CartItemExtra struct {
	gorm.Model
	CartItemID uint      `gorm:"index;not null" json:"cart_item_id"`
	ExtraID    uint      `gorm:"not null" json:"extra_id"`
	Extra      ExtraItem `gorm:"foreignKey:ExtraID" json:"extra,omitempty"`
	Quantity   int       `gorm:"default:1" json:"quantity"`
}
