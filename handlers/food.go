package handlers

import (
	"errors"
	"math"
	"net/http"

	"restaurant-booking-api/middleware"
	"restaurant-booking-api/models"
	"restaurant-booking-api/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListFood returns every food item. Also serves the home page payload.
func (h *Handler) ListFood(c *gin.Context) {
	var foods []models.Food
	h.DB.Find(&foods)
	c.JSON(http.StatusOK, gin.H{"count": len(foods), "foods": foods})
}

// FoodDetail returns one food item with its average rating and the
// caller's own rating for pre-populating the rating form. The average is
// null when nobody has rated the item yet.
func (h *Handler) FoodDetail(c *gin.Context) {
	var food models.Food
	if err := h.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	var ratings []models.Rating
	h.DB.Where("food_id = ?", food.ID).Find(&ratings)

	var average *float64
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Score
		}
		avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10
		average = &avg
	}

	claims := middleware.CurrentUser(c)
	var myScore *int
	var existing models.Rating
	err := h.DB.Where("user_id = ? AND food_id = ?", claims.UserID, food.ID).First(&existing).Error
	if err == nil {
		myScore = &existing.Score
	}

	c.JSON(http.StatusOK, gin.H{
		"food":           food,
		"average_rating": average,
		"rating_count":   len(ratings),
		"my_rating":      myScore,
	})
}

// RateFood records the caller's score for a food item. A second
// submission for the same item overwrites the earlier score, so one
// rating row exists per (user, food) pair.
func (h *Handler) RateFood(c *gin.Context) {
	var form validation.RatingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form input"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	var food models.Food
	if err := h.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	claims := middleware.CurrentUser(c)
	score := form.ScoreValue()

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var rating models.Rating
		err := tx.Where("user_id = ? AND food_id = ?", claims.UserID, food.ID).First(&rating).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&models.Rating{
				Score:  score,
				UserID: claims.UserID,
				FoodID: food.ID,
			}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&rating).Update("score", score).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rating saved", "food_id": food.ID, "score": score})
}
