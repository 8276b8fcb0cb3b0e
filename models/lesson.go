package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lesson is a scheduled cooking class with a fixed number of seats.
type Lesson struct {
	gorm.Model
	Title           string    `gorm:"size:150;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	StartsAt        time.Time `gorm:"index;not null" json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Capacity        int       `gorm:"not null" json:"capacity"`
	SeatsBooked     int       `gorm:"default:0" json:"seats_booked"`
	Price           float64   `json:"price"`
	Active          bool      `gorm:"default:true" json:"is_active"`
}

func (l *Lesson) SeatsLeft() int {
	return l.Capacity - l.SeatsBooked
}

type LessonBooking struct {
	gorm.Model
	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"booking_id"`
	LessonID  uint      `gorm:"index;not null" json:"lesson_id"`
	Lesson    Lesson    `json:"lesson,omitempty"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Seats     int       `gorm:"default:1" json:"seats"`
	Note      string    `gorm:"type:text" json:"note,omitempty"`
	Status    string    `gorm:"size:20;default:confirmed" json:"status"`
}
