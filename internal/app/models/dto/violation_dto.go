package dto

import (
	"time"

	"github.com/mcardenas/campuswatch/internal/app/models"
)

// CreateViolationRequest represents the payload for recording a violation.
// DateCommitted defaults to the current time when omitted; CreatedBy defaults
// to the authenticated user's name.
type CreateViolationRequest struct {
	StudentID     string          `json:"studentId" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Severity      models.Severity `json:"severity" binding:"required"`
	DateCommitted *time.Time      `json:"dateCommitted,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CreatedBy     string          `json:"createdBy,omitempty"`
}

// UpdateViolationRequest carries a partial update; nil fields are left unchanged
type UpdateViolationRequest struct {
	Description   *string          `json:"description,omitempty"`
	Severity      *models.Severity `json:"severity,omitempty"`
	DateCommitted *time.Time       `json:"dateCommitted,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	CreatedBy     *string          `json:"createdBy,omitempty"`
}

// ViolationStatsResponse aggregates the caller's violations. ThisMonth and
// ThisWeek count violations committed on or after the start of the current
// calendar month and Sunday-anchored week respectively; a week can straddle a
// month boundary, so ThisWeek is not necessarily a subset of ThisMonth.
type ViolationStatsResponse struct {
	Total     int `json:"total"`
	Minor     int `json:"minor"`
	Major     int `json:"major"`
	ThisMonth int `json:"thisMonth"`
	ThisWeek  int `json:"thisWeek"`
}
