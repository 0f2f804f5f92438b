package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Username   string    `json:"username" db:"username" example:"admin"`                  // Unique login name
	Email      string    `json:"email" db:"email" example:"admin@school.edu"`             // User's email address
	Password   string    `json:"-" db:"password"`                                         // User's hashed password (excluded from JSON)
	ProfilePic *string   `json:"profilePic,omitempty" db:"profile_pic"`                   // Path of the profile picture (nullable)
	CreatedAt  time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
}
