package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusDeclined  = "declined"
)

// EventTypes and GuestBuckets back the booking-form dropdowns.
var (
	EventTypes = []string{
		"wedding", "birthday", "corporate", "funeral",
		"anniversary", "graduation", "other",
	}
	GuestBuckets = []string{
		"under50", "50-100", "100-200", "200-300", "300+",
	}
)

// Booking is a catering request for an event. Guests submit without an
// account; UserID is filled when they were signed in.
type Booking struct {
	gorm.Model
	BookingID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`
	UserID          *uint     `gorm:"index" json:"user_id,omitempty"`
	FullName        string    `gorm:"size:255;not null" json:"full_name"`
	Email           string    `gorm:"not null" json:"email"`
	PhoneNumber     string    `gorm:"size:20;not null" json:"phone_number"`
	EventType       string    `gorm:"size:50;not null" json:"event_type"`
	EventDate       time.Time `gorm:"not null" json:"event_date"`
	NumberOfGuests  string    `gorm:"size:50;not null" json:"number_of_guests"`
	VenueLocation   string    `gorm:"size:255;not null" json:"venue_location"`
	SpecialRequests string    `gorm:"type:text" json:"special_requests,omitempty"`
	AdditionalInfo  string    `gorm:"type:text" json:"additional_info,omitempty"`
	Status          string    `gorm:"size:20;default:pending" json:"status"`
}

func ValidEventType(t string) bool {
	for _, v := range EventTypes {
		if v == t {
			return true
		}
	}
	return false
}

func ValidGuestBucket(b string) bool {
	for _, v := range GuestBuckets {
		if v == b {
			return true
		}
	}
	return false
}
