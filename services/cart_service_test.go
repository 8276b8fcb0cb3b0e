package services

import (
	"testing"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemCreatesCartAndIncrementsQuantity(t *testing.T) {
	setupTestDB(t)
	dish := createTestDish(t, "jollof-rice", 12.50)
	code := uuid.New()

	item, err := AddItem(AddItemParams{CartCode: code, DishID: dish.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// same dish again bumps the existing line instead of adding one
	item, err = AddItem(AddItemParams{CartCode: code, DishID: dish.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	var count int64
	config.DB.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddItemUnknownDish(t *testing.T) {
	setupTestDB(t)
	_, err := AddItem(AddItemParams{CartCode: uuid.New(), DishID: 999})
	assert.Error(t, err)
}

func TestCartStatsIncludeExtras(t *testing.T) {
	setupTestDB(t)
	dish := createTestDish(t, "egusi-soup", 10)

	extraCat := models.ExtraCategory{Name: "Proteins"}
	require.NoError(t, config.DB.Create(&extraCat).Error)
	extra := models.ExtraItem{Name: "Goat meat", Price: 3, ExtraCategoryID: extraCat.ID, Available: true}
	require.NoError(t, config.DB.Create(&extra).Error)

	code := uuid.New()
	_, err := AddItem(AddItemParams{
		CartCode:     code,
		DishID:       dish.ID,
		Quantity:     2,
		ExtraItemIDs: []uint{extra.ID},
	})
	require.NoError(t, err)

	stats, err := GetCartStats(code)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ItemCount)
	assert.InDelta(t, 23.0, stats.Total, 0.001) // 2*10 + 3
}

func TestUpdateItemQuantityToZeroRemovesLine(t *testing.T) {
	setupTestDB(t)
	dish := createTestDish(t, "moi-moi", 4)
	code := uuid.New()

	item, err := AddItem(AddItemParams{CartCode: code, DishID: dish.ID})
	require.NoError(t, err)

	updated, err := UpdateItemQuantity(code, item.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, updated)

	cart, err := GetCart(code)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutSnapshotsLinesAndClosesCart(t *testing.T) {
	setupTestDB(t)
	dish := createTestDish(t, "fried-rice", 8)
	code := uuid.New()

	_, err := AddItem(AddItemParams{CartCode: code, DishID: dish.ID, Quantity: 3})
	require.NoError(t, err)

	order, err := Checkout(code, nil)
	require.NoError(t, err)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, "fried-rice", order.Lines[0].DishName)
	assert.InDelta(t, 24.0, order.Total, 0.001)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// cart is closed, a second checkout must fail
	_, err = Checkout(code, nil)
	assert.ErrorIs(t, err, ErrCartCheckedOut)

	// and no more items can be added to it
	_, err = AddItem(AddItemParams{CartCode: code, DishID: dish.ID})
	assert.ErrorIs(t, err, ErrCartInactive)
}

func TestCheckoutEmptyCart(t *testing.T) {
	setupTestDB(t)
	dish := createTestDish(t, "pepper-soup", 6)
	code := uuid.New()

	item, err := AddItem(AddItemParams{CartCode: code, DishID: dish.ID})
	require.NoError(t, err)
	require.NoError(t, RemoveItem(code, item.ID))

	_, err = Checkout(code, nil)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestOrderStatusTransitions(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "buyer@example.com", models.RoleCustomer)
	dish := createTestDish(t, "suya", 5)
	code := uuid.New()

	_, err := AddItem(AddItemParams{CartCode: code, DishID: dish.ID, UserID: &user.ID})
	require.NoError(t, err)
	order, err := Checkout(code, &user.ID)
	require.NoError(t, err)

	updated, err := UpdateOrderStatus(order.OrderID, models.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)

	_, err = UpdateOrderStatus(order.OrderID, "paused")
	assert.ErrorIs(t, err, ErrBadOrderStatus)

	// confirmed may only move forward to delivered
	_, err = UpdateOrderStatus(order.OrderID, models.OrderStatusDeclined)
	assert.ErrorIs(t, err, ErrBadOrderStatus)

	updated, err = UpdateOrderStatus(order.OrderID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)

	// delivered is final
	_, err = UpdateOrderStatus(order.OrderID, models.OrderStatusDeclined)
	assert.ErrorIs(t, err, ErrBadOrderStatus)

	orders, err := ListOrdersForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}
