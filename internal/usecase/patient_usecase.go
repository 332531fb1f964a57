package usecase

import (
	"context"
	"errors"

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
	ErrPatientNotFound = errors.New("patient not found")
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, userID string) (*dto.PatientListResponse, error)
	CreatePatient(ctx context.Context, userID string, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, userID, patientID string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, userID, patientID string) error
	UpdateOpenSessionDetails(ctx context.Context, userID, patientID string, req *dto.UpdateOpenSessionsRequest) (*dto.BulkSessionResult, error)
	CloseOpenSessions(ctx context.Context, userID, patientID string) (*dto.BulkSessionResult, error)
	LastActiveSessionDate(ctx context.Context, userID, patientID string) (*dto.LastActiveResponse, error)
	FilterActivePatients(ctx context.Context, userID string, req *dto.ActivePatientsRequest) (*dto.ActivePatientsResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	sessionRepo repository.SessionRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	sessionRepo repository.SessionRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		sessionRepo: sessionRepo,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, userID string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAllByUser(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToListResponse(patients), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, userID string, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		ID:            objectid.New(),
		UserID:        userID,
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Age:           *req.Age,
		Gender:        req.Gender,
	}

	if err := u.patientRepo.Create(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, userID, patientID string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Partial field merge: only provided fields change.
	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.ContactNumber != nil {
		patient.ContactNumber = *req.ContactNumber
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != nil {
		patient.Gender = *req.Gender
	}

	if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient hard-deletes the patient. Sessions are deliberately left in
// place; they keep their denormalized patient name.
func (u *patientUsecase) DeletePatient(ctx context.Context, userID, patientID string) error {
	affected, err := u.patientRepo.Delete(ctx, u.db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (u *patientUsecase) UpdateOpenSessionDetails(ctx context.Context, userID, patientID string, req *dto.UpdateOpenSessionsRequest) (*dto.BulkSessionResult, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.Time != nil && !dateutil.IsValidTime(*req.Time) {
		return nil, ErrInvalidTimeFormat
	}

	changes := &repository.SessionChanges{
		Notes:     req.Notes,
		StartTime: req.Time,
		Amount:    req.Amount,
	}

	count, err := u.sessionRepo.UpdateOpenByPatient(ctx, u.db, userID, patientID, changes)
	if err != nil {
		u.log.Warnf("Failed to bulk-update open sessions: %+v", err)
		return nil, err
	}

	return &dto.BulkSessionResult{UpdatedCount: count}, nil
}

func (u *patientUsecase) CloseOpenSessions(ctx context.Context, userID, patientID string) (*dto.BulkSessionResult, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	count, err := u.sessionRepo.CancelOpenByPatient(ctx, u.db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to close open sessions: %+v", err)
		return nil, err
	}

	return &dto.BulkSessionResult{UpdatedCount: count}, nil
}

func (u *patientUsecase) LastActiveSessionDate(ctx context.Context, userID, patientID string) (*dto.LastActiveResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	date, err := u.sessionRepo.LastOpenDate(ctx, u.db, userID, patientID)
	if err != nil {
		u.log.Warnf("Failed to find last open session date: %+v", err)
		return nil, err
	}

	resp := &dto.LastActiveResponse{}
	if date != "" {
		resp.Date = &date
	}
	return resp, nil
}

func (u *patientUsecase) FilterActivePatients(ctx context.Context, userID string, req *dto.ActivePatientsRequest) (*dto.ActivePatientsResponse, error) {
	ids, err := u.sessionRepo.PatientIDsWithOpenSessions(ctx, u.db, userID, req.PatientIDs)
	if err != nil {
		u.log.Warnf("Failed to filter active patients: %+v", err)
		return nil, err
	}

	return &dto.ActivePatientsResponse{PatientIDs: ids}, nil
}
