package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDeclined  = "declined"
	OrderStatusDelivered = "delivered"
)

// Order is a checked-out cart. Lines snapshot name and price so later
// menu edits don't rewrite history.
type Order struct {
	gorm.Model
	OrderID   uuid.UUID   `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	UserID    *uint       `gorm:"index" json:"user_id,omitempty"`
	CartID    uint        `gorm:"index;not null" json:"cart_id"`
	OrderType string      `gorm:"size:10" json:"order_type"`
	Status    string      `gorm:"size:20;default:pending" json:"status"`
	Total     float64     `json:"total"`
	Lines     []OrderLine `json:"lines,omitempty"`
}

type OrderLine struct {
	gorm.Model
	OrderID   uint    `gorm:"index;not null" json:"order_id"`
	DishID    uint    `json:"dish_id"`
	DishName  string  `gorm:"size:100" json:"dish_name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	// Extras priced into the line at checkout time.
	ExtrasTotal float64 `json:"extras_total"`
	LineTotal   float64 `json:"line_total"`
}
