package routes

import (
	"restaurant-booking-api/handlers"
	"restaurant-booking-api/middleware"
	"restaurant-booking-api/models"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full route table explicitly at startup.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	secret := []byte(h.Cfg.JWTSecret)

	// Home page payload is the food list.
	r.GET("/", h.ListFood)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
		// Clearing a cookie needs no identity, so logout works for
		// anonymous callers and expired sessions too.
		public.POST("/auth/logout", h.Logout)
		public.GET("/food", h.ListFood)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(secret))
	{
		auth.GET("/profile", h.GetProfile)
		auth.PUT("/profile", h.UpdateProfile)
		auth.POST("/bookings", h.CreateBooking)
		auth.GET("/food/:id", h.FoodDetail)
		auth.POST("/food/:id/rating", h.RateFood)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(secret), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/food", h.AddFood)
		admin.PUT("/food/:id", h.EditFood)
		admin.DELETE("/food/:id", h.DeleteFood)
		admin.GET("/bookings", h.ListBookings)
	}
}
