package models

import "gorm.io/gorm"

// Category groups dishes on the menu (mains, desserts, drinks, ...).
type Category struct {
	gorm.Model
	Name        string `gorm:"size:255;not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	ImageURL    string `json:"image,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Active      bool   `gorm:"default:true" json:"is_active"`
}
