package routes

import (
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/controllers"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/refresh", controllers.Refresh)
		auth.POST("/logout", controllers.Logout)
		auth.POST("/verify", controllers.VerifyEmail)
		auth.POST("/regenerate-token", controllers.RegenerateToken)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected account routes
	account := r.Group("/account")
	account.Use(middlewares.AuthMiddleware())
	{
		account.GET("/profile", controllers.GetProfile)
		account.PUT("/profile", controllers.UpdateProfile)
	}

	// Storefront (public)
	r.GET("/categories", controllers.ListCategories)
	r.GET("/dishes", controllers.ListDishes)
	r.GET("/dishes/featured", controllers.FeaturedDishes)
	r.GET("/dishes/:category/:slug", controllers.DishDetail)
	r.GET("/dishes/:category/:slug/reviews", controllers.ListDishReviews)
	r.GET("/recipes", controllers.ListRecipes)
	r.GET("/recipes/:slug", controllers.RecipeDetail)
	r.GET("/lessons", controllers.ListLessons)
	r.GET("/bookings/choices", controllers.BookingChoices)
	r.POST("/bookings", middlewares.OptionalAuth(), controllers.CreateBooking)
	r.POST("/contact", controllers.SubmitContactMessage)

	// Cart works for guests; a signed-in user claims the cart.
	cart := r.Group("/cart")
	cart.Use(middlewares.OptionalAuth())
	{
		cart.POST("/items", controllers.AddCartItem)
		cart.GET("", controllers.GetCartStat)
		cart.GET("/items", controllers.GetCartItems)
		cart.PUT("/items/:id", controllers.UpdateCartItem)
		cart.DELETE("/items/:id", controllers.RemoveCartItem)
	}
	r.POST("/orders", middlewares.OptionalAuth(), controllers.Checkout)

	// Authenticated customer routes
	user := r.Group("/")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/orders", controllers.ListOrders)
		user.POST("/dishes/:category/:slug/reviews", controllers.PostDishReview)
		user.POST("/lessons/:id/book", controllers.BookLesson)
		user.GET("/lessons/bookings", controllers.ListLessonBookings)
		user.DELETE("/lessons/bookings/:id", controllers.CancelLessonBooking)
	}

	// Staff routes
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.POST("/categories", controllers.CreateCategory)
		admin.POST("/dishes", controllers.CreateDish)
		admin.PUT("/dishes/:id", controllers.UpdateDish)
		admin.DELETE("/dishes/:id", controllers.DeleteDish)
		admin.POST("/recipes", controllers.CreateRecipe)
		admin.PUT("/recipes/:id", controllers.UpdateRecipe)
		admin.DELETE("/recipes/:id", controllers.DeleteRecipe)
		admin.POST("/lessons", controllers.CreateLesson)
		admin.GET("/bookings", controllers.ListBookings)
		admin.PATCH("/bookings/:id/status", controllers.UpdateBookingStatus)
		admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
		admin.GET("/contact", controllers.ListContactMessages)
		admin.POST("/uploads/image", controllers.UploadImage)
	}

	// Admin event stream (token via query param)
	r.GET("/ws/admin/events", controllers.AdminEventsWS)

	return r
}
