package controllers

import (
	"net/http"
	"time"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/services"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

// AdminEventsWS streams order/booking events to admin dashboards.
// Browsers can't set headers on websocket dials, so the token rides the
// query string.
func AdminEventsWS(c *gin.Context) {
	claims, err := utils.ParseToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if typ, _ := claims["type"].(string); typ != "access" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	email, _ := claims["email"].(string)

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	if user.Role != models.RoleAdmin && user.Role != models.RoleVendor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not Authorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{Conn: conn}
	services.Events.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				services.Events.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error, then unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			services.Events.Unregister(cl)
			return
		}
	}
}
