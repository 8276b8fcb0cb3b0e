package models

import "gorm.io/gorm"

// Contact is a message from the site's contact form.
type Contact struct {
	gorm.Model
	Name        string `gorm:"size:200;not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	Subject     string `gorm:"size:100" json:"subject,omitempty"`
	Message     string `gorm:"type:text;not null" json:"message"`
}
