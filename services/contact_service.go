package services

import (
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
)

func SubmitContactMessage(name, email, phone, subject, message string) (*models.Contact, error) {
	contact := models.Contact{
		Name:        name,
		Email:       email,
		PhoneNumber: phone,
		Subject:     subject,
		Message:     message,
	}
	if err := config.DB.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func ListContactMessages() ([]models.Contact, error) {
	var messages []models.Contact
	err := config.DB.Order("created_at DESC").Find(&messages).Error
	return messages, err
}
