package models

import "gorm.io/gorm"

// ExtraCategory is a group of add-ons (proteins, sides, sauces) that a
// dish may allow.
type ExtraCategory struct {
	gorm.Model
	Name   string      `gorm:"size:50;not null" json:"name"`
	Extras []ExtraItem `gorm:"foreignKey:ExtraCategoryID" json:"extras,omitempty"`
}

type ExtraItem struct {
	gorm.Model
	Name            string  `gorm:"size:100;not null" json:"name"`
	Price           float64 `gorm:"not null" json:"price"`
	ExtraCategoryID uint    `gorm:"index;not null" json:"extra_category_id"`
	Available       bool    `gorm:"default:true" json:"is_available"`
}

type Dish struct {
	gorm.Model
	Name        string  `gorm:"size:100;index;not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `json:"image,omitempty"`
	CategoryID  uint    `gorm:"index;not null" json:"category_id"`
	Category    Category `json:"category,omitempty"`
	Available   bool    `gorm:"default:true" json:"is_available"`

	// Extras the customer may add, and dishes that pair well with this one.
	AllowedExtras     []ExtraCategory `gorm:"many2many:dish_allowed_extras" json:"allowed_extras,omitempty"`
	SuggestedPairings []Dish          `gorm:"many2many:dish_pairings;joinForeignKey:DishID;joinReferences:PairedDishID" json:"suggested_pairings,omitempty"`
}
