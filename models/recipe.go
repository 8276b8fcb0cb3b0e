package models

import "gorm.io/gorm"

// Recipe is editorial content: how a dish (or something like it) is made.
type Recipe struct {
	gorm.Model
	Title        string `gorm:"size:150;not null" json:"title"`
	Slug         string `gorm:"uniqueIndex;not null" json:"slug"`
	Summary      string `gorm:"type:text" json:"summary,omitempty"`
	Ingredients  string `gorm:"type:text;not null" json:"ingredients"`
	Instructions string `gorm:"type:text;not null" json:"instructions"`
	PrepMinutes  int    `json:"prep_minutes"`
	CookMinutes  int    `json:"cook_minutes"`
	Servings     int    `json:"servings"`
	ImageURL     string `json:"image,omitempty"`
	Published    bool   `gorm:"default:false" json:"published"`
	DishID       *uint  `gorm:"index" json:"dish_id,omitempty"`
}
