package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingInput struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	PhoneNumber     string `json:"phone_number" binding:"required"`
	EventType       string `json:"event_type" binding:"required"`
	EventDate       string `json:"event_date" binding:"required"`
	NumberOfGuests  string `json:"number_of_guests" binding:"required"`
	VenueLocation   string `json:"venue_location" binding:"required"`
	SpecialRequests string `json:"special_requests"`
	AdditionalInfo  string `json:"additional_info"`
}

func CreateBooking(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eventDate, err := time.Parse("2006-01-02", input.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
		return
	}

	booking, err := services.CreateBooking(services.BookingParams{
		FullName:        input.FullName,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		EventType:       input.EventType,
		EventDate:       eventDate,
		NumberOfGuests:  input.NumberOfGuests,
		VenueLocation:   input.VenueLocation,
		SpecialRequests: input.SpecialRequests,
		AdditionalInfo:  input.AdditionalInfo,
		UserID:          currentUserID(c),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Catering Request Submitted Successfully",
		"data":    booking,
	})
}

// BookingChoices feeds the booking-form dropdowns.
func BookingChoices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"event_types":      models.EventTypes,
		"number_of_guests": models.GuestBuckets,
	})
}

func ListBookings(c *gin.Context) {
	bookings, err := services.ListBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func UpdateBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := services.SetBookingStatus(bookingID, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, services.ErrBadBookingStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}
