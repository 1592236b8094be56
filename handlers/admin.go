package handlers

import (
	"net/http"

	"restaurant-booking-api/models"
	"restaurant-booking-api/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddFood creates a food item from a multipart form — admin only. The
// image is required and written to the store before the row is created;
// if the create fails the stored file is removed again.
func (h *Handler) AddFood(c *gin.Context) {
	var form validation.FoodForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form input"})
		return
	}
	errs := form.Validate()

	file, err := c.FormFile("image")
	switch {
	case err != nil:
		errs["image"] = "an image is required"
	case !validation.AllowedImage(file.Filename):
		errs["image"] = "only .jpg, .jpeg, .png files are allowed"
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}

	imageName, err := h.Images.Save(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	food := models.Food{
		Name:        form.Name,
		Description: form.Description,
		Image:       imageName,
	}
	if err := h.DB.Create(&food).Error; err != nil {
		if rmErr := h.Images.Remove(imageName); rmErr != nil {
			h.Log.WithError(rmErr).Warn("orphaned image left after failed food create")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add food"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "food added", "food": food})
}

// EditFood updates name and description unconditionally and the image
// only when a new file was uploaded — admin only.
func (h *Handler) EditFood(c *gin.Context) {
	var food models.Food
	if err := h.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	var form validation.FoodForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form input"})
		return
	}
	errs := form.Validate()

	file, fileErr := c.FormFile("image")
	if fileErr == nil && !validation.AllowedImage(file.Filename) {
		errs["image"] = "only .jpg, .jpeg, .png files are allowed"
	}
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}

	updates := map[string]interface{}{
		"name":        form.Name,
		"description": form.Description,
	}

	var imageName string
	if fileErr == nil {
		name, err := h.Images.Save(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		imageName = name
		updates["image"] = name
	}

	if err := h.DB.Model(&food).Updates(updates).Error; err != nil {
		if imageName != "" {
			if rmErr := h.Images.Remove(imageName); rmErr != nil {
				h.Log.WithError(rmErr).Warn("orphaned image left after failed food update")
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update food"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food updated", "food": food})
}

// DeleteFood removes a food item and all its ratings in one transaction —
// admin only.
func (h *Handler) DeleteFood(c *gin.Context) {
	var food models.Food
	if err := h.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", food.ID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&food).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food"})
		return
	}

	if food.Image != "" && food.Image != models.DefaultFoodImage {
		if err := h.Images.Remove(food.Image); err != nil {
			h.Log.WithError(err).Warn("could not remove image of deleted food")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}

// ListBookings returns every booking, newest reservation date first —
// admin only.
func (h *Handler) ListBookings(c *gin.Context) {
	var bookings []models.Booking
	h.DB.Preload("User").Order("date desc").Find(&bookings)
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}
