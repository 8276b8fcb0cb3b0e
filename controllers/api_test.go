package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/routes"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
	t.Cleanup(func() { config.DB = nil })

	return routes.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, email, role string) string {
	t.Helper()
	user := models.User{
		Email: email, Password: "hash", Role: role, Verified: true,
		FirstName: "Test", LastName: "User",
	}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	require.NoError(t, err)
	return token
}

func TestSubmitContactMessage(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/contact", gin.H{
		"name":    "Ada Obi",
		"email":   "ada@example.com",
		"message": "Do you cater weddings in Uyo?",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sent successfully")

	var count int64
	config.DB.Model(&models.Contact{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitContactMessageValidation(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/contact", gin.H{"name": "Ada"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingChoicesAndCreate(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/bookings/choices", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wedding")
	assert.Contains(t, w.Body.String(), "300+")

	w = doJSON(t, r, http.MethodPost, "/bookings", gin.H{
		"full_name":        "Ada Obi",
		"email":            "ada@example.com",
		"phone_number":     "08000000000",
		"event_type":       "birthday",
		"event_date":       "2026-12-24",
		"number_of_guests": "under50",
		"venue_location":   "Uyo",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Catering Request Submitted Successfully")

	// unknown event type is rejected
	w = doJSON(t, r, http.MethodPost, "/bookings", gin.H{
		"full_name":        "Ada Obi",
		"email":            "ada@example.com",
		"phone_number":     "08000000000",
		"event_type":       "book-club",
		"event_date":       "2026-12-24",
		"number_of_guests": "under50",
		"venue_location":   "Uyo",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRequireRole(t *testing.T) {
	r := setupRouter(t)

	payload := gin.H{"name": "Desserts"}

	w := doJSON(t, r, http.MethodPost, "/admin/categories", payload, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	customer := tokenFor(t, "cust@example.com", models.RoleCustomer)
	w = doJSON(t, r, http.MethodPost, "/admin/categories", payload, customer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := tokenFor(t, "admin@example.com", models.RoleAdmin)
	w = doJSON(t, r, http.MethodPost, "/admin/categories", payload, admin)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"desserts"`)
}

func TestProfileRoundTrip(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, "me@example.com", models.RoleCustomer)

	w := doJSON(t, r, http.MethodGet, "/account/profile", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "me@example.com")

	w = doJSON(t, r, http.MethodPut, "/account/profile", gin.H{"city": "Uyo"}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"city":"Uyo"`)
}

func TestDishListingAndDetail(t *testing.T) {
	r := setupRouter(t)

	cat := models.Category{Name: "Mains", Slug: "mains", Active: true}
	require.NoError(t, config.DB.Create(&cat).Error)
	dish := models.Dish{
		Name: "Jollof Rice", Slug: "jollof-rice", Description: "classic",
		Price: 10, CategoryID: cat.ID, Available: true,
	}
	require.NoError(t, config.DB.Create(&dish).Error)

	w := doJSON(t, r, http.MethodGet, "/dishes", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jollof Rice")

	w = doJSON(t, r, http.MethodGet, "/dishes/mains/jollof-rice", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/dishes/mains/missing", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCartItemQuantityZeroRemovesLine(t *testing.T) {
	r := setupRouter(t)

	cat := models.Category{Name: "Mains", Slug: "mains", Active: true}
	require.NoError(t, config.DB.Create(&cat).Error)
	dish := models.Dish{
		Name: "Moi Moi", Slug: "moi-moi", Price: 4,
		CategoryID: cat.ID, Available: true,
	}
	require.NoError(t, config.DB.Create(&dish).Error)

	cartCode := "3b51a1e2-8f6d-4f0e-9c5a-1d2e3f4a5b6c"
	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{
		"cart_code": cartCode,
		"dish_id":   dish.ID,
		"quantity":  2,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var added struct {
		Item models.CartItem `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))

	// an explicit zero must reach the removal branch, not fail binding
	path := fmt.Sprintf("/cart/items/%d?cart_code=%s", added.Item.ID, cartCode)
	w = doJSON(t, r, http.MethodPut, path, gin.H{"quantity": 0}, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart/items?cart_code="+cartCode, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestLessonBookingOverCapacityReturnsConflict(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, "student@example.com", models.RoleCustomer)

	admin := tokenFor(t, "admin@example.com", models.RoleAdmin)
	w := doJSON(t, r, http.MethodPost, "/admin/lessons", gin.H{
		"title":     "Knife Skills",
		"starts_at": "2026-12-01T10:00:00Z",
		"capacity":  1,
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code)

	var lesson models.Lesson
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lesson))

	path := fmt.Sprintf("/lessons/%d/book", lesson.ID)
	w = doJSON(t, r, http.MethodPost, path, gin.H{"seats": 1}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, path, gin.H{"seats": 1}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthRegisterLoginFlow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email":            "new@example.com",
		"password":         "supersecret1",
		"confirm_password": "supersecret1",
		"first_name":       "Ada",
		"last_name":        "Obi",
		"phone_number":     "08000000000",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// login blocked until the email is verified
	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email": "new@example.com", "password": "supersecret1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", "new@example.com").First(&user).Error)

	w = doJSON(t, r, http.MethodPost, "/auth/verify", gin.H{
		"email": "new@example.com", "code": user.VerifyCode,
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email": "new@example.com", "password": "supersecret1",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Refresh)

	// refresh works once, then logout revokes it
	w = doJSON(t, r, http.MethodPost, "/auth/refresh", gin.H{"refresh": resp.Refresh}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/logout", gin.H{"refresh": resp.Refresh}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/refresh", gin.H{"refresh": resp.Refresh}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
