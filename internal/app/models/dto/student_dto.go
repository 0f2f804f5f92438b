package dto

import (
	"time"

	"github.com/mcardenas/campuswatch/internal/app/models"
)

// CreateStudentRequest represents the payload for registering a student
type CreateStudentRequest struct {
	StudentID  string  `json:"studentId" binding:"required"`
	FirstName  string  `json:"firstName" binding:"required"`
	MiddleName *string `json:"middlename,omitempty"`
	LastName   string  `json:"lastName" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Course     string  `json:"course" binding:"required"`
	Program    string  `json:"program" binding:"required"`
	Year       int     `json:"year" binding:"required,gt=0"`
	ProfilePic *string `json:"profilePic,omitempty"`
}

// CreateStudentResponse is returned on successful student creation
type CreateStudentResponse struct {
	Success bool            `json:"success"`
	Student *models.Student `json:"student"`
}

// StudentWithViolations is the aggregated read model: a student joined with
// its violations by student number. Derived on every read, never persisted.
type StudentWithViolations struct {
	models.Student
	Violations     []*models.Violation `json:"violations"`
	ViolationCount int                 `json:"violationCount"`
	LastViolation  *time.Time          `json:"lastViolation"`
}
