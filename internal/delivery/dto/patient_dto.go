package dto

import (
	"time"
)

// Request DTOs

type CreatePatientRequest struct {
	Name          string `json:"name" validate:"required,min=1"`
	ContactNumber string `json:"contact_number" validate:"omitempty,min=7,max=20"`
	Age           *int   `json:"age" validate:"required,gte=0,lte=150"`
	Gender        string `json:"gender" validate:"required,oneof=male female other"`
}

type UpdatePatientRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,min=7,max=20"`
	Age           *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=male female other"`
}

// UpdateOpenSessionsRequest carries the bulk edit of a patient's open
// sessions. Only provided fields change.
type UpdateOpenSessionsRequest struct {
	Notes  *string  `json:"notes"`
	Time   *string  `json:"time"` // Format: HH:MM
	Amount *float64 `json:"amount" validate:"omitempty,gte=0"`
}

type ActivePatientsRequest struct {
	PatientIDs []string `json:"patient_ids" validate:"required,min=1"`
}

// Response DTOs

type PatientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type BulkSessionResult struct {
	UpdatedCount int64 `json:"updated_count"`
}

// LastActiveResponse reports the most recent open-session date for a patient.
// Date is null when the patient has no open sessions.
type LastActiveResponse struct {
	Date *string `json:"date"`
}

type ActivePatientsResponse struct {
	PatientIDs []string `json:"patient_ids"`
}
