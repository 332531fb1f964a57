package repository

import (
	"context"
	"errors"

	"physiodesk/internal/domain/entity"
	domainRepo "physiodesk/internal/domain/repository"

	"gorm.io/gorm"
)

type sessionRepository struct{}

func NewSessionRepository() domainRepo.SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(ctx context.Context, db *gorm.DB, session *entity.Session) error {
	return db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) CreateBatch(ctx context.Context, db *gorm.DB, sessions []entity.Session) error {
	return db.WithContext(ctx).Create(&sessions).Error
}

func (r *sessionRepository) FindByID(ctx context.Context, db *gorm.DB, userID, id string) (*entity.Session, error) {
	var session entity.Session
	err := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// FindWithFilter applies the optional filter criteria on top of the mandatory
// owner match. Date bounds are inclusive and compared as strings.
//
// The cancellation clause is tri-state: "true" places no constraint, "false"
// requires a non-cancelled status, and unset emits a NOT IN clause. Unset and
// "false" differ only in the emitted predicate, never in the result set.
func (r *sessionRepository) FindWithFilter(ctx context.Context, db *gorm.DB, userID string, filter *entity.SessionFilter) ([]entity.Session, error) {
	query := db.WithContext(ctx).Where("user_id = ?", userID)

	if filter != nil {
		if filter.PatientID != "" {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
		if filter.StartDate != "" {
			query = query.Where("session_date >= ?", filter.StartDate)
		}
		if filter.EndDate != "" {
			query = query.Where("session_date <= ?", filter.EndDate)
		}
		if filter.Completed != nil {
			if *filter.Completed {
				query = query.Where("status = ?", entity.SessionStatusCompleted)
			} else {
				query = query.Where("status <> ?", entity.SessionStatusCompleted)
			}
		}
		switch filter.IncludeCancelled {
		case entity.IncludeCancelledTrue:
			// no constraint
		case entity.IncludeCancelledFalse:
			query = query.Where("status <> ?", entity.SessionStatusCancelled)
		default:
			query = query.Where("status NOT IN ?", []entity.SessionStatus{entity.SessionStatusCancelled})
		}
	} else {
		query = query.Where("status <> ?", entity.SessionStatusCancelled)
	}

	var sessions []entity.Session
	err := query.Order("session_date ASC, start_time ASC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) Update(ctx context.Context, db *gorm.DB, session *entity.Session) error {
	return db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepository) Delete(ctx context.Context, db *gorm.DB, userID, id string) (int64, error) {
	result := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Session{})
	return result.RowsAffected, result.Error
}

// FindToday returns every session dated today regardless of status, ordered
// by start time.
func (r *sessionRepository) FindToday(ctx context.Context, db *gorm.DB, userID, today string) ([]entity.Session, error) {
	var sessions []entity.Session
	err := db.WithContext(ctx).
		Where("user_id = ? AND session_date = ?", userID, today).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindUpcoming returns open sessions strictly after today. Sessions dated
// today belong to the today view, never here.
func (r *sessionRepository) FindUpcoming(ctx context.Context, db *gorm.DB, userID, tomorrow string) ([]entity.Session, error) {
	var sessions []entity.Session
	err := db.WithContext(ctx).
		Where("user_id = ? AND session_date >= ? AND status = ?", userID, tomorrow, entity.SessionStatusPending).
		Order("session_date ASC, start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindPast returns completed sessions of any date plus pending sessions whose
// date has already elapsed. The elapsed-but-unmarked case is classified at
// read time; no stored state is flipped. Cancelled sessions only appear when
// includeCancelled is set.
func (r *sessionRepository) FindPast(ctx context.Context, db *gorm.DB, userID, today string, includeCancelled bool) ([]entity.Session, error) {
	query := db.WithContext(ctx).Where("user_id = ?", userID)

	if includeCancelled {
		query = query.Where(
			"status = ? OR status = ? OR (session_date < ? AND status = ?)",
			entity.SessionStatusCompleted, entity.SessionStatusCancelled, today, entity.SessionStatusPending,
		)
	} else {
		query = query.Where(
			"status = ? OR (session_date < ? AND status = ?)",
			entity.SessionStatusCompleted, today, entity.SessionStatusPending,
		)
	}

	var sessions []entity.Session
	err := query.Order("session_date DESC, start_time ASC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateOpenByPatient bulk-updates the provided fields on every open session
// of the patient. Completed and cancelled sessions are immutable via this
// path. Returns the number of sessions mutated.
func (r *sessionRepository) UpdateOpenByPatient(ctx context.Context, db *gorm.DB, userID, patientID string, changes *domainRepo.SessionChanges) (int64, error) {
	updates := map[string]interface{}{}
	if changes.Notes != nil {
		updates["notes"] = *changes.Notes
	}
	if changes.StartTime != nil {
		updates["start_time"] = *changes.StartTime
	}
	if changes.Amount != nil {
		updates["amount"] = *changes.Amount
	}
	if len(updates) == 0 {
		return 0, nil
	}

	result := db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("user_id = ? AND patient_id = ? AND status = ?", userID, patientID, entity.SessionStatusPending).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// CancelOpenByPatient cancels every open session of the patient, forcing the
// amount to zero. A single UPDATE statement, atomic in Postgres.
func (r *sessionRepository) CancelOpenByPatient(ctx context.Context, db *gorm.DB, userID, patientID string) (int64, error) {
	result := db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("user_id = ? AND patient_id = ? AND status = ?", userID, patientID, entity.SessionStatusPending).
		Updates(map[string]interface{}{
			"status": entity.SessionStatusCancelled,
			"amount": 0,
		})
	return result.RowsAffected, result.Error
}

// LastOpenDate returns the most recent open-session date for the patient, or
// "" when the patient has no open sessions.
func (r *sessionRepository) LastOpenDate(ctx context.Context, db *gorm.DB, userID, patientID string) (string, error) {
	var session entity.Session
	err := db.WithContext(ctx).
		Where("user_id = ? AND patient_id = ? AND status = ?", userID, patientID, entity.SessionStatusPending).
		Order("session_date DESC, start_time DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return session.SessionDate, nil
}

// PatientIDsWithOpenSessions returns the subset of patientIDs having at least
// one open session.
func (r *sessionRepository) PatientIDsWithOpenSessions(ctx context.Context, db *gorm.DB, userID string, patientIDs []string) ([]string, error) {
	if len(patientIDs) == 0 {
		return []string{}, nil
	}

	var ids []string
	err := db.WithContext(ctx).
		Model(&entity.Session{}).
		Distinct("patient_id").
		Where("user_id = ? AND patient_id IN ? AND status = ?", userID, patientIDs, entity.SessionStatusPending).
		Pluck("patient_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// MonthlySummary groups completed sessions with a positive amount by the
// calendar year and month parsed from the stored date string, most recent
// month first. Optional bounds are inclusive.
func (r *sessionRepository) MonthlySummary(ctx context.Context, db *gorm.DB, userID, startDate, endDate string) ([]entity.MonthlyEarnings, error) {
	query := db.WithContext(ctx).
		Model(&entity.Session{}).
		Select(`
			CAST(SUBSTRING(session_date FROM 1 FOR 4) AS INTEGER) AS year,
			CAST(SUBSTRING(session_date FROM 6 FOR 2) AS INTEGER) AS month,
			SUM(amount) AS total_earnings,
			COUNT(*) AS session_count
		`).
		Where("user_id = ? AND status = ? AND amount > 0", userID, entity.SessionStatusCompleted)

	if startDate != "" {
		query = query.Where("session_date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("session_date <= ?", endDate)
	}

	var results []entity.MonthlyEarnings
	err := query.
		Group("year, month").
		Order("year DESC, month DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// FindCompletedInRange returns completed sessions with a positive amount
// whose date falls in the inclusive range, sorted date then time ascending.
func (r *sessionRepository) FindCompletedInRange(ctx context.Context, db *gorm.DB, userID, firstDay, lastDay string) ([]entity.Session, error) {
	var sessions []entity.Session
	err := db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND amount > 0 AND session_date >= ? AND session_date <= ?",
			userID, entity.SessionStatusCompleted, firstDay, lastDay).
		Order("session_date ASC, start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
