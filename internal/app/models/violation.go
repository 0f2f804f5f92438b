package models

import (
	"time"
)

// Severity defines the violation gravity level
type Severity string

const (
	SeverityMinor Severity = "Minor"
	SeverityMajor Severity = "Major"
)

// Valid reports whether the severity is one of the accepted values
func (s Severity) Valid() bool {
	return s == SeverityMinor || s == SeverityMajor
}

// Violation defines the violation model based on the 'violations' table.
// StudentID references Student.StudentID, the human-readable student number,
// not the internal record id. The key is denormalized on purpose: it keeps
// the two tables independently writable, and existing rows stay joinable.
// A violation carries no owner of its own; ownership is transitive through
// the student it references.
type Violation struct {
	ID            int64     `json:"id" db:"id" example:"1"`                             // Internal record identifier
	StudentID     string    `json:"studentId" db:"student_id" example:"2021-00123"`     // Join key to students.student_id
	Description   string    `json:"description" db:"description" example:"Late for class"`
	Severity      Severity  `json:"severity" db:"severity" example:"Minor"`             // Minor or Major
	DateCommitted time.Time `json:"dateCommitted" db:"date_committed"`
	CreatedBy     string    `json:"createdBy" db:"created_by" example:"admin"`          // Free-text attribution
	Notes         *string   `json:"notes,omitempty" db:"notes"`                         // Optional notes
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
