package models

import "time"

// RevokedToken blacklists a refresh token's jti after logout. Rows past
// ExpiresAt are dead weight and get purged on the next insert.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey"`
	JTI       string    `gorm:"size:36;uniqueIndex;not null"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}
