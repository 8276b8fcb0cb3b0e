package models

import "gorm.io/gorm"

// Review holds a 1-5 star rating and comment on a dish. One review per
// user per dish, enforced by the composite index.
type Review struct {
	gorm.Model
	DishID  uint   `gorm:"not null;uniqueIndex:idx_review_dish_user" json:"dish_id"`
	UserID  uint   `gorm:"not null;uniqueIndex:idx_review_dish_user" json:"user_id"`
	User    User   `json:"user,omitempty"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`
}
