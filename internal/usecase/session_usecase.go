package usecase

import (
	"context"
	"errors"
	"time"

	"physiodesk/internal/converter"
	"physiodesk/internal/delivery/dto"
	"physiodesk/internal/domain/entity"
	"physiodesk/internal/domain/repository"
	"physiodesk/pkg/dateutil"
	"physiodesk/pkg/objectid"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, userID string, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	CreateSessions(ctx context.Context, userID string, req *dto.BulkCreateSessionsRequest) (*dto.SessionListResponse, error)
	ListSessions(ctx context.Context, userID string, q *dto.SessionListQuery) (*dto.SessionListResponse, error)
	GetTodaySessions(ctx context.Context, userID string) (*dto.SessionListResponse, error)
	GetUpcomingSessions(ctx context.Context, userID string) (*dto.SessionListResponse, error)
	GetPastSessions(ctx context.Context, userID string, includeCancelled bool) (*dto.SessionListResponse, error)
	UpdateSession(ctx context.Context, userID, sessionID string, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, userID, sessionID string) error
}

type sessionUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
	patientRepo repository.PatientRepository
	now         func() time.Time
}

func NewSessionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	patientRepo repository.PatientRepository,
) SessionUsecase {
	return &sessionUsecase{
		db:          db,
		log:         log,
		sessionRepo: sessionRepo,
		patientRepo: patientRepo,
		now:         time.Now,
	}
}

// buildSession validates the request fields and assembles a session entity
// with the patient name snapshotted from the given patient.
func buildSession(userID string, patient *entity.Patient, req *dto.CreateSessionRequest) (*entity.Session, error) {
	if !dateutil.IsValidDate(req.Date) {
		return nil, ErrInvalidDateFormat
	}
	if !dateutil.IsValidTime(req.Time) {
		return nil, ErrInvalidTimeFormat
	}

	session := &entity.Session{
		ID:          objectid.New(),
		UserID:      userID,
		PatientID:   patient.ID,
		PatientName: patient.Name,
		SessionDate: req.Date,
		StartTime:   req.Time,
		Notes:       req.Notes,
		Status:      entity.SessionStatusPending,
	}

	if req.Status != "" {
		session.Status = entity.SessionStatus(req.Status)
	}
	if req.Amount != nil {
		session.Amount = *req.Amount
	}
	if session.Status == entity.SessionStatusCancelled {
		// Cancelled sessions never carry an amount.
		session.Amount = 0
	}

	return session, nil
}

func (u *sessionUsecase) CreateSession(ctx context.Context, userID string, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, userID, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	session, err := buildSession(userID, patient, req)
	if err != nil {
		return nil, err
	}

	if err := u.sessionRepo.Create(ctx, u.db, session); err != nil {
		u.log.Warnf("Failed to create session: %+v", err)
		return nil, err
	}

	return converter.SessionToResponse(session), nil
}

func (u *sessionUsecase) CreateSessions(ctx context.Context, userID string, req *dto.BulkCreateSessionsRequest) (*dto.SessionListResponse, error) {
	// Resolve each referenced patient once; every item must reference a
	// patient owned by the caller.
	patients := make(map[string]*entity.Patient)
	sessions := make([]entity.Session, 0, len(req.Sessions))

	for i := range req.Sessions {
		item := &req.Sessions[i]
		patient, ok := patients[item.PatientID]
		if !ok {
			var err error
			patient, err = u.patientRepo.FindByID(ctx, u.db, userID, item.PatientID)
			if err != nil {
				u.log.Warnf("Failed to find patient: %+v", err)
				return nil, err
			}
			if patient == nil {
				return nil, ErrPatientNotFound
			}
			patients[item.PatientID] = patient
		}

		session, err := buildSession(userID, patient, item)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}

	if err := u.sessionRepo.CreateBatch(ctx, u.db, sessions); err != nil {
		u.log.Warnf("Failed to create sessions in bulk: %+v", err)
		return nil, err
	}

	return converter.SessionsToListResponse(sessions), nil
}

func (u *sessionUsecase) ListSessions(ctx context.Context, userID string, q *dto.SessionListQuery) (*dto.SessionListResponse, error) {
	filter := &entity.SessionFilter{
		PatientID:        q.PatientID,
		StartDate:        q.StartDate,
		EndDate:          q.EndDate,
		IncludeCancelled: q.IncludeCancelled,
	}
	switch q.Completed {
	case "true":
		completed := true
		filter.Completed = &completed
	case "false":
		completed := false
		filter.Completed = &completed
	}

	sessions, err := u.sessionRepo.FindWithFilter(ctx, u.db, userID, filter)
	if err != nil {
		u.log.Warnf("Failed to list sessions: %+v", err)
		return nil, err
	}

	return converter.SessionsToListResponse(sessions), nil
}

func (u *sessionUsecase) GetTodaySessions(ctx context.Context, userID string) (*dto.SessionListResponse, error) {
	today := dateutil.Format(u.now())

	sessions, err := u.sessionRepo.FindToday(ctx, u.db, userID, today)
	if err != nil {
		u.log.Warnf("Failed to find today's sessions: %+v", err)
		return nil, err
	}

	return converter.SessionsToListResponse(sessions), nil
}

func (u *sessionUsecase) GetUpcomingSessions(ctx context.Context, userID string) (*dto.SessionListResponse, error) {
	tomorrow := dateutil.Tomorrow(u.now())

	sessions, err := u.sessionRepo.FindUpcoming(ctx, u.db, userID, tomorrow)
	if err != nil {
		u.log.Warnf("Failed to find upcoming sessions: %+v", err)
		return nil, err
	}

	return converter.SessionsToListResponse(sessions), nil
}

func (u *sessionUsecase) GetPastSessions(ctx context.Context, userID string, includeCancelled bool) (*dto.SessionListResponse, error) {
	today := dateutil.Format(u.now())

	sessions, err := u.sessionRepo.FindPast(ctx, u.db, userID, today, includeCancelled)
	if err != nil {
		u.log.Warnf("Failed to find past sessions: %+v", err)
		return nil, err
	}

	return converter.SessionsToListResponse(sessions), nil
}

func (u *sessionUsecase) UpdateSession(ctx context.Context, userID, sessionID string, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	session, err := u.sessionRepo.FindByID(ctx, u.db, userID, sessionID)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	// Only provided fields change.
	if req.Date != nil {
		if !dateutil.IsValidDate(*req.Date) {
			return nil, ErrInvalidDateFormat
		}
		session.SessionDate = *req.Date
	}
	if req.Time != nil {
		if !dateutil.IsValidTime(*req.Time) {
			return nil, ErrInvalidTimeFormat
		}
		session.StartTime = *req.Time
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}
	if req.Amount != nil {
		session.Amount = *req.Amount
	}
	if req.Status != nil {
		switch entity.SessionStatus(*req.Status) {
		case entity.SessionStatusCancelled:
			session.Cancel()
		case entity.SessionStatusCompleted:
			session.Status = entity.SessionStatusCompleted
		case entity.SessionStatusPending:
			session.Status = entity.SessionStatusPending
		}
	}

	if err := u.sessionRepo.Update(ctx, u.db, session); err != nil {
		u.log.Warnf("Failed to update session: %+v", err)
		return nil, err
	}

	return converter.SessionToResponse(session), nil
}

func (u *sessionUsecase) DeleteSession(ctx context.Context, userID, sessionID string) error {
	affected, err := u.sessionRepo.Delete(ctx, u.db, userID, sessionID)
	if err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}
