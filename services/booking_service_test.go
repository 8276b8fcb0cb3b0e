package services

import (
	"testing"
	"time"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookingParams() BookingParams {
	return BookingParams{
		FullName:       "Ada Obi",
		Email:          "ada@example.com",
		PhoneNumber:    "08000000000",
		EventType:      "wedding",
		EventDate:      time.Now().AddDate(0, 1, 0),
		NumberOfGuests: "100-200",
		VenueLocation:  "Uyo",
	}
}

func TestCreateBooking(t *testing.T) {
	setupTestDB(t)

	booking, err := CreateBooking(validBookingParams())
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.NotEqual(t, booking.BookingID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestCreateBookingValidatesChoices(t *testing.T) {
	setupTestDB(t)

	p := validBookingParams()
	p.EventType = "book-club"
	_, err := CreateBooking(p)
	assert.Error(t, err)

	p = validBookingParams()
	p.NumberOfGuests = "42"
	_, err = CreateBooking(p)
	assert.Error(t, err)
}

func TestSetBookingStatus(t *testing.T) {
	setupTestDB(t)

	booking, err := CreateBooking(validBookingParams())
	require.NoError(t, err)

	confirmed, err := SetBookingStatus(booking.BookingID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, confirmed.Status)

	_, err = SetBookingStatus(booking.BookingID, "maybe")
	assert.ErrorIs(t, err, ErrBadBookingStatus)
}
