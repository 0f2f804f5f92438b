package models

import (
	"time"
)

// Student defines the student model based on the 'students' table. Each
// student is owned by exactly one user: the account that created it.
type Student struct {
	ID         int64   `json:"id" db:"id" example:"1"`                          // Internal record identifier
	StudentID  string  `json:"studentId" db:"student_id" example:"2021-00123"`  // Human-readable student number, globally unique
	FirstName  string  `json:"firstName" db:"first_name" example:"Juan"`
	MiddleName *string `json:"middlename,omitempty" db:"middle_name"`           // Optional middle name
	LastName   string  `json:"lastName" db:"last_name" example:"Dela Cruz"`
	Course     string  `json:"course" db:"course" example:"Information Technology"`
	Program    string  `json:"program" db:"program" example:"BS"`
	Year       int     `json:"year" db:"year" example:"1"`
	Email      string  `json:"email" db:"email" example:"juan@school.edu"`      // Globally unique
	UserID     int64   `json:"user" db:"user_id" example:"5"`                   // Owning user account
	ProfilePic *string `json:"profilePic,omitempty" db:"profile_pic"`           // Path of the profile picture (nullable)
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
