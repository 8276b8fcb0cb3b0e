package services

import (
	"errors"
	"time"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken      = errors.New("an account with this email already exists")
	ErrNotVerified     = errors.New("email is not verified")
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrAlreadyVerified = errors.New("account already verified")
)

type RegisterParams struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
	City        string
	State       string
}

// RegisterUser creates the account and emails a verification code. The
// email send is best-effort; the code can be regenerated later.
func RegisterUser(p RegisterParams) (*models.User, error) {
	hashed, err := utils.HashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:       p.Email,
		Password:    hashed,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		VerifyCode:  utils.GenerateRandomToken(6),
	}
	// the unique index decides, so a concurrent duplicate can't slip
	// past a check-then-create
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	_ = utils.SendVerificationEmail(user.Email, user.VerifyCode)
	return &user, nil
}

// AuthenticateUser checks credentials and verification state, returning
// an access/refresh pair.
func AuthenticateUser(email, password string) (*models.User, string, string, error) {
	user, err := FindUserByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", "", ErrBadCredentials
	}
	if !user.Verified {
		return nil, "", "", ErrNotVerified
	}

	access, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := utils.GenerateRefreshToken(user.Email, user.ID)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyEmail matches the emailed code and marks the account verified.
func VerifyEmail(email, code string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	if user.Verified {
		return ErrAlreadyVerified
	}
	if code == "" || user.VerifyCode != code {
		return errors.New("invalid verification code")
	}
	user.Verified = true
	user.VerifyCode = ""
	return config.DB.Save(user).Error
}

// RegenerateVerifyCode issues a fresh code for an unverified account.
func RegenerateVerifyCode(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	if user.Verified {
		return ErrAlreadyVerified
	}
	user.VerifyCode = utils.GenerateRandomToken(6)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}
	return utils.SendVerificationEmail(user.Email, user.VerifyCode)
}

// RefreshAccessToken exchanges a refresh token for a new access token,
// refusing revoked jtis.
func RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	jti, _ := claims["jti"].(string)
	var revoked models.RevokedToken
	if err := config.DB.Where("jti = ?", jti).First(&revoked).Error; err == nil {
		return "", errors.New("refresh token revoked")
	}

	email, _ := claims["email"].(string)
	user, err := FindUserByEmail(email)
	if err != nil {
		return "", errors.New("user not found")
	}
	return utils.GenerateJWT(user.Email, user.ID, user.Role)
}

// RevokeRefreshToken blacklists the token's jti until it would have
// expired anyway.
func RevokeRefreshToken(refreshToken string) error {
	claims, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	jti, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)

	var userID uint
	if v, ok := claims["userId"].(float64); ok {
		userID = uint(v)
	}

	// Expired entries only waste index space, drop them while we're here.
	config.DB.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{})

	rec := models.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: time.Unix(int64(exp), 0),
	}
	return config.DB.Create(&rec).Error
}

// StartPasswordReset stores a short-lived code and emails it. Callers
// answer 200 regardless so the endpoint can't enumerate accounts.
func StartPasswordReset(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	user.ResetToken = utils.GenerateRandomToken(6)
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, user.ResetToken)
}

func ResetPassword(token, newPassword string) error {
	if token == "" {
		return errors.New("invalid or expired token")
	}
	var user models.User
	if err := config.DB.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return errors.New("invalid or expired token")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return config.DB.Save(&user).Error
}
