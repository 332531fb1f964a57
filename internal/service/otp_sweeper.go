package service

import (
	"context"
	"time"

	"physiodesk/internal/domain/repository"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const sweepTimeout = 30 * time.Second

// OTPSweeper removes expired and consumed verification codes. It runs once
// at startup and then hourly; failures are logged and never surfaced to any
// request.
type OTPSweeper struct {
	db        *gorm.DB
	log       *logrus.Logger
	otpRepo   repository.OTPRepository
	scheduler *gocron.Scheduler
}

func NewOTPSweeper(db *gorm.DB, log *logrus.Logger, otpRepo repository.OTPRepository) *OTPSweeper {
	return &OTPSweeper{
		db:        db,
		log:       log,
		otpRepo:   otpRepo,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start runs an immediate sweep and schedules the hourly job.
func (s *OTPSweeper) Start() {
	s.sweep()

	if _, err := s.scheduler.Every(1).Hour().Do(s.sweep); err != nil {
		s.log.Errorf("Failed to schedule OTP sweep: %+v", err)
		return
	}
	s.scheduler.StartAsync()
	s.log.Info("OTP sweeper started")
}

// Stop halts the scheduler. Safe to call during graceful shutdown.
func (s *OTPSweeper) Stop() {
	s.scheduler.Stop()
	s.log.Info("OTP sweeper stopped")
}

func (s *OTPSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	count, err := s.otpRepo.DeleteExpiredOrUsed(ctx, s.db, time.Now())
	if err != nil {
		s.log.Warnf("OTP sweep failed: %+v", err)
		return
	}
	if count > 0 {
		s.log.Infof("OTP sweep removed %d stale codes", count)
	}
}
