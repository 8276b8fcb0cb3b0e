package services

import (
	"errors"
	"time"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"

	"github.com/google/uuid"
)

var ErrBadBookingStatus = errors.New("invalid booking status")

type BookingParams struct {
	FullName        string
	Email           string
	PhoneNumber     string
	EventType       string
	EventDate       time.Time
	NumberOfGuests  string
	VenueLocation   string
	SpecialRequests string
	AdditionalInfo  string
	UserID          *uint
}

func CreateBooking(p BookingParams) (*models.Booking, error) {
	if !models.ValidEventType(p.EventType) {
		return nil, errors.New("unknown event type")
	}
	if !models.ValidGuestBucket(p.NumberOfGuests) {
		return nil, errors.New("unknown guest count")
	}

	booking := models.Booking{
		BookingID:       uuid.New(),
		UserID:          p.UserID,
		FullName:        p.FullName,
		Email:           p.Email,
		PhoneNumber:     p.PhoneNumber,
		EventType:       p.EventType,
		EventDate:       p.EventDate,
		NumberOfGuests:  p.NumberOfGuests,
		VenueLocation:   p.VenueLocation,
		SpecialRequests: p.SpecialRequests,
		AdditionalInfo:  p.AdditionalInfo,
		Status:          models.BookingStatusPending,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		return nil, err
	}

	Events.Broadcast("booking.created", &booking)
	return &booking, nil
}

func ListBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := config.DB.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// SetBookingStatus confirms or declines a pending request. The two
// outcomes are mutually exclusive.
func SetBookingStatus(bookingID uuid.UUID, status string) (*models.Booking, error) {
	if status != models.BookingStatusConfirmed && status != models.BookingStatusDeclined {
		return nil, ErrBadBookingStatus
	}

	var booking models.Booking
	if err := config.DB.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		return nil, err
	}
	booking.Status = status
	if err := config.DB.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}
