package models

import "time"

// DefaultFoodImage is used when a food item has no uploaded image yet.
const DefaultFoodImage = "default_photo.jpg"

type Food struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Image       string    `json:"image" gorm:"default:'default_photo.jpg'"`
	Ratings     []Rating  `json:"ratings,omitempty" gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Rating is one user's 1-5 score for one food item. At most one rating
// exists per (user, food) pair; submitting again overwrites the score.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Score     int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	FoodID    uint      `json:"food_id" gorm:"not null;index"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
