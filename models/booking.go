package models

import "time"

type Booking struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	Date            time.Time `json:"date" gorm:"not null"`
	Guests          int       `json:"guests" gorm:"not null"`
	SpecialRequests string    `json:"special_requests"`
	UserID          uint      `json:"user_id" gorm:"not null"`
	User            User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt       time.Time `json:"created_at"`
}
