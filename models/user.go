package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Vendors manage dishes and fulfil orders, admins get
// everything.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
)

type User struct {
	gorm.Model
	PublicID    uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"public_id"`
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	FirstName   string     `gorm:"size:50" json:"first_name"`
	LastName    string     `gorm:"size:50" json:"last_name"`
	PhoneNumber string     `gorm:"size:20" json:"phone_number"`
	Address     string     `gorm:"size:255" json:"address"`
	City        string     `gorm:"size:100" json:"city"`
	State       string     `gorm:"size:50" json:"state"`
	Role        string     `gorm:"size:20;default:customer" json:"role"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`

	// Verified flips when the emailed code is confirmed.
	Verified   bool   `gorm:"default:false" json:"is_verified"`
	VerifyCode string `gorm:"size:12" json:"-"`

	ResetToken    string    `gorm:"size:12" json:"-"`
	ResetTokenExp time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.PublicID == uuid.Nil {
		u.PublicID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
