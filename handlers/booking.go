package handlers

import (
	"net/http"

	"restaurant-booking-api/middleware"
	"restaurant-booking-api/models"
	"restaurant-booking-api/validation"

	"github.com/gin-gonic/gin"
)

// CreateBooking stores a reservation for the authenticated user and
// returns the submitted values for the confirmation view. The date must
// not be in the past at submission time.
func (h *Handler) CreateBooking(c *gin.Context) {
	var form validation.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form input"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}

	claims := middleware.CurrentUser(c)

	booking := models.Booking{
		Name:            form.Name,
		Date:            form.ParsedDate(),
		Guests:          form.GuestCount(),
		SpecialRequests: form.Comment,
		UserID:          claims.UserID,
	}
	if err := h.DB.Create(&booking).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "booking confirmed",
		"booking": gin.H{
			"id":      booking.ID,
			"name":    booking.Name,
			"date":    form.Date,
			"guests":  booking.Guests,
			"comment": booking.SpecialRequests,
		},
	})
}
