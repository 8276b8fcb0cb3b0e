package services

import (
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
)

type ProfileUpdate struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
}

func GetUserProfile(email string) (*models.User, error) {
	return FindUserByEmail(email)
}

// UpdateUserProfile applies a partial update; nil fields stay untouched.
func UpdateUserProfile(email string, upd ProfileUpdate) (*models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.PhoneNumber != nil {
		user.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Address != nil {
		user.Address = *upd.Address
	}
	if upd.City != nil {
		user.City = *upd.City
	}
	if upd.State != nil {
		user.State = *upd.State
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
