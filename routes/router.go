package routes

import (
	"cinematix/controllers"
	"cinematix/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/auth/register", controllers.Register)
	r.POST("/auth/login", controllers.Login)

	// Katalog publik buat landing page
	r.GET("/public/movies", controllers.GetMovies)
	r.GET("/public/movies/:id", controllers.GetMovieByID)

	// Movies
	movies := r.Group("/movies")
	movies.Use(middlewares.AuthMiddleware())
	{
		movies.GET("/", controllers.GetMovies)
		movies.GET("/:id", controllers.GetMovieByID)
		movies.GET("/options", controllers.GetBookingOptions)
	}

	// Booking kursi
	booking := r.Group("/booking")
	booking.Use(middlewares.AuthMiddleware())
	{
		booking.POST("/", controllers.StartBooking)
		booking.GET("/summary", controllers.GetBookingSummary)
		booking.POST("/seats/toggle", controllers.ToggleSeat)
		booking.PATCH("/studio", controllers.SetStudio)
		booking.POST("/confirm", controllers.ConfirmBooking)
	}

	// Makanan & keranjang
	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/menu", controllers.GetFoodMenu)
		food.GET("/cart", controllers.GetCart)
		food.POST("/cart", controllers.AddToCart)
		food.PATCH("/cart/:id", controllers.UpdateCartItem)
		food.DELETE("/cart/:id", controllers.RemoveCartItem)
		food.POST("/cart/checkout", controllers.CheckoutCart)
	}

	// Dompet
	wallet := r.Group("/wallet")
	wallet.Use(middlewares.AuthMiddleware())
	{
		wallet.GET("/saldo", controllers.GetSaldo)
		wallet.GET("/topup/options", controllers.GetTopUpOptions)
		wallet.POST("/topup", controllers.TopUp)
	}

	// Riwayat transaksi
	history := r.Group("/history")
	history.Use(middlewares.AuthMiddleware())
	{
		history.GET("/", controllers.GetHistory)
	}

	// Dashboard
	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/", controllers.GetDashboard)
	}
}
