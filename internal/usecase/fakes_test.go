package usecase

import (
	"context"
	"io"
	"time"

	"physiodesk/internal/domain/entity"
	"physiodesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Function-field fakes so each test configures only the calls it expects.
// Unset fields return zero values.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakePatientRepo struct {
	createFn        func(patient *entity.Patient) error
	findByIDFn      func(userID, id string) (*entity.Patient, error)
	findAllByUserFn func(userID string) ([]entity.Patient, error)
	updateFn        func(patient *entity.Patient) error
	deleteFn        func(userID, id string) (int64, error)
}

func (f *fakePatientRepo) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	if f.createFn != nil {
		return f.createFn(patient)
	}
	return nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, db *gorm.DB, userID, id string) (*entity.Patient, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(userID, id)
	}
	return nil, nil
}

func (f *fakePatientRepo) FindAllByUser(ctx context.Context, db *gorm.DB, userID string) ([]entity.Patient, error) {
	if f.findAllByUserFn != nil {
		return f.findAllByUserFn(userID)
	}
	return nil, nil
}

func (f *fakePatientRepo) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	if f.updateFn != nil {
		return f.updateFn(patient)
	}
	return nil
}

func (f *fakePatientRepo) Delete(ctx context.Context, db *gorm.DB, userID, id string) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(userID, id)
	}
	return 0, nil
}

type fakeSessionRepo struct {
	createFn              func(session *entity.Session) error
	createBatchFn         func(sessions []entity.Session) error
	findByIDFn            func(userID, id string) (*entity.Session, error)
	findWithFilterFn      func(userID string, filter *entity.SessionFilter) ([]entity.Session, error)
	updateFn              func(session *entity.Session) error
	deleteFn              func(userID, id string) (int64, error)
	findTodayFn           func(userID, today string) ([]entity.Session, error)
	findUpcomingFn        func(userID, tomorrow string) ([]entity.Session, error)
	findPastFn            func(userID, today string, includeCancelled bool) ([]entity.Session, error)
	updateOpenByPatientFn func(userID, patientID string, changes *repository.SessionChanges) (int64, error)
	cancelOpenByPatientFn func(userID, patientID string) (int64, error)
	lastOpenDateFn        func(userID, patientID string) (string, error)
	patientIDsWithOpenFn  func(userID string, patientIDs []string) ([]string, error)
	monthlySummaryFn      func(userID, startDate, endDate string) ([]entity.MonthlyEarnings, error)
	findCompletedFn       func(userID, firstDay, lastDay string) ([]entity.Session, error)
}

func (f *fakeSessionRepo) Create(ctx context.Context, db *gorm.DB, session *entity.Session) error {
	if f.createFn != nil {
		return f.createFn(session)
	}
	return nil
}

func (f *fakeSessionRepo) CreateBatch(ctx context.Context, db *gorm.DB, sessions []entity.Session) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(sessions)
	}
	return nil
}

func (f *fakeSessionRepo) FindByID(ctx context.Context, db *gorm.DB, userID, id string) (*entity.Session, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(userID, id)
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindWithFilter(ctx context.Context, db *gorm.DB, userID string, filter *entity.SessionFilter) ([]entity.Session, error) {
	if f.findWithFilterFn != nil {
		return f.findWithFilterFn(userID, filter)
	}
	return nil, nil
}

func (f *fakeSessionRepo) Update(ctx context.Context, db *gorm.DB, session *entity.Session) error {
	if f.updateFn != nil {
		return f.updateFn(session)
	}
	return nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, db *gorm.DB, userID, id string) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(userID, id)
	}
	return 0, nil
}

func (f *fakeSessionRepo) FindToday(ctx context.Context, db *gorm.DB, userID, today string) ([]entity.Session, error) {
	if f.findTodayFn != nil {
		return f.findTodayFn(userID, today)
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindUpcoming(ctx context.Context, db *gorm.DB, userID, tomorrow string) ([]entity.Session, error) {
	if f.findUpcomingFn != nil {
		return f.findUpcomingFn(userID, tomorrow)
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindPast(ctx context.Context, db *gorm.DB, userID, today string, includeCancelled bool) ([]entity.Session, error) {
	if f.findPastFn != nil {
		return f.findPastFn(userID, today, includeCancelled)
	}
	return nil, nil
}

func (f *fakeSessionRepo) UpdateOpenByPatient(ctx context.Context, db *gorm.DB, userID, patientID string, changes *repository.SessionChanges) (int64, error) {
	if f.updateOpenByPatientFn != nil {
		return f.updateOpenByPatientFn(userID, patientID, changes)
	}
	return 0, nil
}

func (f *fakeSessionRepo) CancelOpenByPatient(ctx context.Context, db *gorm.DB, userID, patientID string) (int64, error) {
	if f.cancelOpenByPatientFn != nil {
		return f.cancelOpenByPatientFn(userID, patientID)
	}
	return 0, nil
}

func (f *fakeSessionRepo) LastOpenDate(ctx context.Context, db *gorm.DB, userID, patientID string) (string, error) {
	if f.lastOpenDateFn != nil {
		return f.lastOpenDateFn(userID, patientID)
	}
	return "", nil
}

func (f *fakeSessionRepo) PatientIDsWithOpenSessions(ctx context.Context, db *gorm.DB, userID string, patientIDs []string) ([]string, error) {
	if f.patientIDsWithOpenFn != nil {
		return f.patientIDsWithOpenFn(userID, patientIDs)
	}
	return nil, nil
}

func (f *fakeSessionRepo) MonthlySummary(ctx context.Context, db *gorm.DB, userID, startDate, endDate string) ([]entity.MonthlyEarnings, error) {
	if f.monthlySummaryFn != nil {
		return f.monthlySummaryFn(userID, startDate, endDate)
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindCompletedInRange(ctx context.Context, db *gorm.DB, userID, firstDay, lastDay string) ([]entity.Session, error) {
	if f.findCompletedFn != nil {
		return f.findCompletedFn(userID, firstDay, lastDay)
	}
	return nil, nil
}

type fakeUserRepo struct {
	createFn      func(user *entity.User) error
	findByEmailFn func(email string) (*entity.User, error)
	findByIDFn    func(id string) (*entity.User, error)
	updateFn      func(user *entity.User) error
}

func (f *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	if f.createFn != nil {
		return f.createFn(user)
	}
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(email)
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(id)
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	if f.updateFn != nil {
		return f.updateFn(user)
	}
	return nil
}

type fakeOTPRepo struct {
	createFn    func(otp *entity.OTPCode) error
	findValidFn func(email, code, purpose string, now time.Time) (*entity.OTPCode, error)
	markUsedFn  func(id string) error
	deleteFn    func(now time.Time) (int64, error)
}

func (f *fakeOTPRepo) Create(ctx context.Context, db *gorm.DB, otp *entity.OTPCode) error {
	if f.createFn != nil {
		return f.createFn(otp)
	}
	return nil
}

func (f *fakeOTPRepo) FindValid(ctx context.Context, db *gorm.DB, email, code, purpose string, now time.Time) (*entity.OTPCode, error) {
	if f.findValidFn != nil {
		return f.findValidFn(email, code, purpose, now)
	}
	return nil, nil
}

func (f *fakeOTPRepo) MarkUsed(ctx context.Context, db *gorm.DB, id string) error {
	if f.markUsedFn != nil {
		return f.markUsedFn(id)
	}
	return nil
}

func (f *fakeOTPRepo) DeleteExpiredOrUsed(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(now)
	}
	return 0, nil
}

type fakeMailer struct {
	sendOTPFn func(toEmail, code, purpose string) error
}

func (f *fakeMailer) SendOTP(toEmail, code, purpose string) error {
	if f.sendOTPFn != nil {
		return f.sendOTPFn(toEmail, code, purpose)
	}
	return nil
}
