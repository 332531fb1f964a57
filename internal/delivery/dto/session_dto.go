package dto

import (
	"time"
)

// Request DTOs

type CreateSessionRequest struct {
	PatientID string   `json:"patient_id" validate:"required"`
	Date      string   `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time      string   `json:"time" validate:"required"` // Format: HH:MM
	Notes     string   `json:"notes" validate:"omitempty"`
	Status    string   `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Amount    *float64 `json:"amount" validate:"omitempty,gte=0"`
}

type BulkCreateSessionsRequest struct {
	Sessions []CreateSessionRequest `json:"sessions" validate:"required,min=1,dive"`
}

type UpdateSessionRequest struct {
	Date   *string  `json:"date" validate:"omitempty"` // Format: YYYY-MM-DD
	Time   *string  `json:"time" validate:"omitempty"` // Format: HH:MM
	Notes  *string  `json:"notes" validate:"omitempty"`
	Status *string  `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Amount *float64 `json:"amount" validate:"omitempty,gte=0"`
}

// SessionListQuery mirrors the optional query-string filters of the session
// list endpoint. Completed and IncludeCancelled are tri-state and carried as
// raw strings.
type SessionListQuery struct {
	PatientID        string
	StartDate        string
	EndDate          string
	Completed        string
	IncludeCancelled string
}

// Response DTOs

type SessionResponse struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}
