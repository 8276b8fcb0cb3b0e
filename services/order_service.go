package services

import (
	"errors"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCartEmpty      = errors.New("cart has no items")
	ErrCartCheckedOut = errors.New("cart already checked out")
	ErrBadOrderStatus = errors.New("invalid order status")
)

// Checkout turns an active cart into an Order, snapshotting prices into
// lines, and deactivates the cart. Runs in one transaction.
func Checkout(cartCode uuid.UUID, userID *uint) (*models.Order, error) {
	var order *models.Order

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items.Dish").Preload("Items.Extras.Extra").
			Where("cart_code = ?", cartCode).First(&cart).Error; err != nil {
			return err
		}
		if !cart.Active || cart.Paid {
			return ErrCartCheckedOut
		}
		if len(cart.Items) == 0 {
			return ErrCartEmpty
		}

		if cart.UserID == nil && userID != nil {
			cart.UserID = userID
		}

		o := models.Order{
			OrderID:   uuid.New(),
			UserID:    cart.UserID,
			CartID:    cart.ID,
			OrderType: cart.OrderType,
			Status:    models.OrderStatusPending,
		}
		for _, item := range cart.Items {
			extrasTotal := 0.0
			for _, e := range item.Extras {
				extrasTotal += e.Extra.Price * float64(e.Quantity)
			}
			line := models.OrderLine{
				DishID:      item.DishID,
				DishName:    item.Dish.Name,
				UnitPrice:   item.Dish.Price,
				Quantity:    item.Quantity,
				ExtrasTotal: extrasTotal,
				LineTotal:   item.Dish.Price*float64(item.Quantity) + extrasTotal,
			}
			o.Total += line.LineTotal
			o.Lines = append(o.Lines, line)
		}

		if err := tx.Create(&o).Error; err != nil {
			return err
		}

		cart.Active = false
		if err := tx.Save(&cart).Error; err != nil {
			return err
		}

		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}

	Events.Broadcast("order.created", order)
	return order, nil
}

func ListOrdersForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := config.DB.Preload("Lines").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func ListAllOrders() ([]models.Order, error) {
	var orders []models.Order
	err := config.DB.Preload("Lines").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func GetOrder(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := config.DB.Preload("Lines").Where("order_id = ?", orderID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func UpdateOrderStatus(orderID uuid.UUID, status string) (*models.Order, error) {
	order, err := GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	// pending orders can be resolved any way; confirmed ones can only be
	// delivered. Declined and delivered are final.
	switch {
	case order.Status == models.OrderStatusPending &&
		(status == models.OrderStatusConfirmed || status == models.OrderStatusDeclined || status == models.OrderStatusDelivered):
	case order.Status == models.OrderStatusConfirmed && status == models.OrderStatusDelivered:
	default:
		return nil, ErrBadOrderStatus
	}
	order.Status = status
	if err := config.DB.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
