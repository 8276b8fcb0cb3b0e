package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = time.Hour * 2
	RefreshTokenTTL = time.Hour * 24 * 7
)

// GenerateJWT returns an access token for the given account.
func GenerateJWT(email string, userID uint, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":  email,
		"userId": userID,
		"role":   role,
		"type":   "access",
		"exp":    time.Now().Add(AccessTokenTTL).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// GenerateRefreshToken returns a refresh token carrying a jti so logout
// can blacklist it.
func GenerateRefreshToken(email string, userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":  email,
		"userId": userID,
		"type":   "refresh",
		"jti":    uuid.NewString(),
		"exp":    time.Now().Add(RefreshTokenTTL).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return nil, errors.New("JWT_SECRET not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// ParseRefreshToken rejects anything that is not a refresh token.
func ParseRefreshToken(tokenString string) (jwt.MapClaims, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if typ, _ := claims["type"].(string); typ != "refresh" {
		return nil, errors.New("not a refresh token")
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		return nil, errors.New("refresh token missing jti")
	}
	return claims, nil
}
