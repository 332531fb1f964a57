package entity

import (
	"time"
)

// SessionStatus represents the lifecycle state of a therapy session.
// The status replaces the source system's pair of independent completed/
// cancelled booleans: a session is in exactly one of three states, so the
// meaningless "completed and cancelled" combination is unrepresentable.
// Legacy records with both flags set map to cancelled, since cancellation is
// the stronger terminal action and already forces the amount to zero.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// IsValidSessionStatus reports whether s is one of the known status values.
func IsValidSessionStatus(s string) bool {
	switch SessionStatus(s) {
	case SessionStatusPending, SessionStatusCompleted, SessionStatusCancelled:
		return true
	}
	return false
}

// Session is one therapy appointment. The date is a plain YYYY-MM-DD string
// with no timezone, compared lexicographically; the time is HH:MM 24-hour.
// PatientName is a snapshot taken at creation and is not kept in sync with
// the patient record.
type Session struct {
	ID          string        `gorm:"type:char(24);primaryKey" json:"id"`
	UserID      string        `gorm:"type:char(24);not null;index" json:"user_id"`
	PatientID   string        `gorm:"type:char(24);not null;index" json:"patient_id"`
	PatientName string        `gorm:"type:varchar(255);not null" json:"patient_name"`
	SessionDate string        `gorm:"type:char(10);not null;index" json:"date"`
	StartTime   string        `gorm:"type:char(5);not null" json:"time"`
	Notes       string        `gorm:"type:text" json:"notes,omitempty"`
	Status      SessionStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	Amount      float64       `gorm:"not null;default:0" json:"amount"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// IsOpen reports whether the session is still pending (not yet finalized).
func (s *Session) IsOpen() bool {
	return s.Status == SessionStatusPending
}

// IsCompleted reports whether the session was marked completed.
func (s *Session) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// IsCancelled reports whether the session was cancelled.
func (s *Session) IsCancelled() bool {
	return s.Status == SessionStatusCancelled
}

// Complete marks the session completed with the given amount.
func (s *Session) Complete(amount float64) {
	s.Status = SessionStatusCompleted
	s.Amount = amount
}

// Cancel marks the session cancelled. A cancelled session always carries a
// zero amount.
func (s *Session) Cancel() {
	s.Status = SessionStatusCancelled
	s.Amount = 0
}
