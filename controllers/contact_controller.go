package controllers

import (
	"net/http"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/services"

	"github.com/gin-gonic/gin"
)

type ContactInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number"`
	Subject     string `json:"subject"`
	Message     string `json:"message" binding:"required"`
}

func SubmitContactMessage(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := services.SubmitContactMessage(
		input.Name, input.Email, input.PhoneNumber, input.Subject, input.Message,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Your message was sent successfully!"})
}

func ListContactMessages(c *gin.Context) {
	messages, err := services.ListContactMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}
