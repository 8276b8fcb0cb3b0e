package middlewares

import (
	"net/http"
	"strings"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid Bearer access token and loads the
// account into the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if !attachUser(c, tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present but never
// rejects. Guest flows (cart, bookings) use it.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			attachUser(c, strings.TrimPrefix(authHeader, "Bearer "))
		}
		c.Next()
	}
}

// AdminMiddleware runs after AuthMiddleware and gates staff endpoints.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleAdmin && role != models.RoleVendor {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not Authorized"})
			return
		}
		c.Next()
	}
}

func attachUser(c *gin.Context, tokenString string) bool {
	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return false
	}
	if typ, _ := claims["type"].(string); typ != "access" {
		return false
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return false
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return false
	}

	c.Set("userID", user.ID)
	c.Set("email", email)
	c.Set("role", user.Role)
	return true
}
