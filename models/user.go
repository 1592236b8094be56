package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleGuest UserRole = "guest"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"uniqueIndex;not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash      string    `json:"-" gorm:"not null"`
	Role              UserRole  `json:"role" gorm:"not null;default:'guest'"`
	Age               int       `json:"age"`
	Gender            string    `json:"gender"`
	FavoriteCharacter string    `json:"favorite_character"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
