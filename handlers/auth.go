package handlers

import (
	"net/http"
	"strings"

	"restaurant-booking-api/middleware"
	"restaurant-booking-api/models"
	"restaurant-booking-api/validation"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user account. Registration does not log the user
// in; the client is expected to go through Login next.
func (h *Handler) Register(c *gin.Context) {
	var form validation.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form input"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": registerEcho(&form)})
		return
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))

	// Uniqueness probe so duplicates come back as field errors instead
	// of a constraint violation.
	var count int64
	h.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"errors": validation.Errors{"email": "email already registered"},
			"form":   registerEcho(&form),
		})
		return
	}
	h.DB.Model(&models.User{}).Where("username = ?", form.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"errors": validation.Errors{"username": "username already taken"},
			"form":   registerEcho(&form),
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	role := models.RoleGuest
	if h.Cfg.IsAdminEmail(email) {
		role = models.RoleAdmin
	}

	user := models.User{
		Username:     form.Username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		// A racing duplicate insert still trips the unique index; report
		// it as the same conflict rather than a server error.
		c.JSON(http.StatusConflict, gin.H{
			"errors": validation.Errors{"form": "email or username already registered"},
			"form":   registerEcho(&form),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "account created, please log in",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

func registerEcho(form *validation.RegisterForm) gin.H {
	return gin.H{"username": form.Username, "email": form.Email}
}

// Login authenticates a user, sets the session cookie and returns the
// token. The failure message never reveals whether the email exists.
func (h *Handler) Login(c *gin.Context) {
	var form validation.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form input"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": gin.H{"email": form.Email}})
		return
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(&user, []byte(h.Cfg.JWTSecret), h.Cfg.TokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.Cfg.TokenTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GetProfile returns the fields the profile form is pre-populated with.
func (h *Handler) GetProfile(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	var user models.User
	if err := h.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":                 user.ID,
			"username":           user.Username,
			"email":              user.Email,
			"role":               user.Role,
			"age":                user.Age,
			"gender":             user.Gender,
			"favorite_character": user.FavoriteCharacter,
		},
	})
}

// UpdateProfile overwrites age, gender and favorite character. Username,
// email and role are never editable here.
func (h *Handler) UpdateProfile(c *gin.Context) {
	claims := middleware.CurrentUser(c)

	var form validation.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form input"})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs, "form": form})
		return
	}

	var user models.User
	if err := h.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	err := h.DB.Model(&user).Updates(map[string]interface{}{
		"age":                form.AgeValue(),
		"gender":             form.Gender,
		"favorite_character": form.FavoriteCharacter,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "profile updated",
		"user": gin.H{
			"age":                user.Age,
			"gender":             user.Gender,
			"favorite_character": user.FavoriteCharacter,
		},
	})
}
