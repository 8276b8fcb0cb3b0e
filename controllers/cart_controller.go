package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	CartCode           string `json:"cart_code" binding:"required,uuid"`
	DishID             uint   `json:"dish_id" binding:"required"`
	Quantity           int    `json:"quantity"`
	SpecialInstruction string `json:"special_instruction"`
	ExtraItemIDs       []uint `json:"extra_item_ids"`
	OrderType          string `json:"order_type"`
}

func AddCartItem(c *gin.Context) {
	var input AddCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cartCode, err := uuid.Parse(input.CartCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart code"})
		return
	}

	item, err := services.AddItem(services.AddItemParams{
		CartCode:           cartCode,
		DishID:             input.DishID,
		Quantity:           input.Quantity,
		SpecialInstruction: input.SpecialInstruction,
		ExtraItemIDs:       input.ExtraItemIDs,
		UserID:             currentUserID(c),
		OrderType:          input.OrderType,
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		case errors.Is(err, services.ErrCartInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "item": item})
}

func GetCartStat(c *gin.Context) {
	cartCode, ok := cartCodeFromQuery(c)
	if !ok {
		return
	}

	stats, err := services.GetCartStats(cartCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func GetCartItems(c *gin.Context) {
	cartCode, ok := cartCodeFromQuery(c)
	if !ok {
		return
	}

	cart, err := services.GetCart(cartCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func UpdateCartItem(c *gin.Context) {
	cartCode, ok := cartCodeFromQuery(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	// pointer so an explicit 0 (remove the line) survives validation
	var input struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := services.UpdateItemQuantity(cartCode, uint(itemID), *input.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		// quantity <= 0 removes the line
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, item)
}

func RemoveCartItem(c *gin.Context) {
	cartCode, ok := cartCodeFromQuery(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := services.RemoveItem(cartCode, uint(itemID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func cartCodeFromQuery(c *gin.Context) (uuid.UUID, bool) {
	code, err := uuid.Parse(c.Query("cart_code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid 'cart_code' query param"})
		return uuid.Nil, false
	}
	return code, true
}

// currentUserID returns the authenticated user's ID when OptionalAuth
// attached one.
func currentUserID(c *gin.Context) *uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
