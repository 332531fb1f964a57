package repository

import (
	"context"

	"physiodesk/internal/domain/entity"

	"gorm.io/gorm"
)

// SessionChanges carries the optional fields of a bulk open-session update.
// Only non-nil fields are written.
type SessionChanges struct {
	Notes     *string
	StartTime *string
	Amount    *float64
}

type SessionRepository interface {
	Create(ctx context.Context, db *gorm.DB, session *entity.Session) error
	CreateBatch(ctx context.Context, db *gorm.DB, sessions []entity.Session) error
	FindByID(ctx context.Context, db *gorm.DB, userID, id string) (*entity.Session, error)
	FindWithFilter(ctx context.Context, db *gorm.DB, userID string, filter *entity.SessionFilter) ([]entity.Session, error)
	Update(ctx context.Context, db *gorm.DB, session *entity.Session) error
	Delete(ctx context.Context, db *gorm.DB, userID, id string) (int64, error)

	// Read-time classification views
	FindToday(ctx context.Context, db *gorm.DB, userID, today string) ([]entity.Session, error)
	FindUpcoming(ctx context.Context, db *gorm.DB, userID, tomorrow string) ([]entity.Session, error)
	FindPast(ctx context.Context, db *gorm.DB, userID, today string, includeCancelled bool) ([]entity.Session, error)

	// Patient-scoped bulk operations on open sessions
	UpdateOpenByPatient(ctx context.Context, db *gorm.DB, userID, patientID string, changes *SessionChanges) (int64, error)
	CancelOpenByPatient(ctx context.Context, db *gorm.DB, userID, patientID string) (int64, error)
	LastOpenDate(ctx context.Context, db *gorm.DB, userID, patientID string) (string, error)
	PatientIDsWithOpenSessions(ctx context.Context, db *gorm.DB, userID string, patientIDs []string) ([]string, error)

	// Earnings aggregation
	MonthlySummary(ctx context.Context, db *gorm.DB, userID, startDate, endDate string) ([]entity.MonthlyEarnings, error)
	FindCompletedInRange(ctx context.Context, db *gorm.DB, userID, firstDay, lastDay string) ([]entity.Session, error)
}
