package services

import (
	"errors"
	"time"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrLessonFull = errors.New("not enough seats left for this lesson")

type LessonParams struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	StartsAt        time.Time `json:"starts_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Capacity        int       `json:"capacity" binding:"required,gt=0"`
	Price           float64   `json:"price"`
}

// ListUpcomingLessons returns active lessons that haven't started yet,
// soonest first.
func ListUpcomingLessons() ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := config.DB.
		Where("active = ? AND starts_at > ?", true, time.Now()).
		Order("starts_at").
		Find(&lessons).Error
	return lessons, err
}

func CreateLesson(p LessonParams) (*models.Lesson, error) {
	lesson := models.Lesson{
		Title:           p.Title,
		Description:     p.Description,
		StartsAt:        p.StartsAt,
		DurationMinutes: p.DurationMinutes,
		Capacity:        p.Capacity,
		Price:           p.Price,
		Active:          true,
	}
	if err := config.DB.Create(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// BookLesson reserves seats. The capacity check and the increment are a
// single conditional UPDATE so two concurrent bookings can't both take
// the last seat under read-committed isolation.
func BookLesson(lessonID, userID uint, seats int, note string) (*models.LessonBooking, error) {
	if seats <= 0 {
		seats = 1
	}

	var booking *models.LessonBooking
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Lesson{}).
			Where("id = ? AND active = ? AND capacity - seats_booked >= ?", lessonID, true, seats).
			Update("seats_booked", gorm.Expr("seats_booked + ?", seats))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// no lesson, or not enough seats
			var lesson models.Lesson
			if err := tx.Where("id = ? AND active = ?", lessonID, true).First(&lesson).Error; err != nil {
				return err
			}
			return ErrLessonFull
		}

		b := models.LessonBooking{
			BookingID: uuid.New(),
			LessonID:  lessonID,
			UserID:    userID,
			Seats:     seats,
			Note:      note,
			Status:    "confirmed",
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		booking = &b
		return nil
	})
	if err != nil {
		return nil, err
	}

	var populated models.LessonBooking
	if err := config.DB.Preload("Lesson").First(&populated, booking.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func ListLessonBookings(userID uint) ([]models.LessonBooking, error) {
	var bookings []models.LessonBooking
	err := config.DB.Preload("Lesson").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// CancelLessonBooking frees the seats and removes the booking. Only the
// owner can cancel.
func CancelLessonBooking(bookingID, userID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.LessonBooking
		if err := tx.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error; err != nil {
			return err
		}

		err := tx.Model(&models.Lesson{}).
			Where("id = ?", booking.LessonID).
			Update("seats_booked", gorm.Expr(
				"CASE WHEN seats_booked >= ? THEN seats_booked - ? ELSE 0 END",
				booking.Seats, booking.Seats)).Error
		if err != nil {
			return err
		}

		return tx.Delete(&booking).Error
	})
}
