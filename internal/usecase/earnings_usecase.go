package usecase

import (
	"context"
	"errors"

	"physiodesk/internal/converter"
	"physiodesk/internal/delivery/dto"
	"physiodesk/internal/domain/repository"
	"physiodesk/pkg/dateutil"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

type EarningsUsecase interface {
	GetMonthlySummary(ctx context.Context, userID, startDate, endDate string) (*dto.MonthlySummaryResponse, error)
	GetMonthlyDetail(ctx context.Context, userID string, year, month int) (*dto.MonthlyDetailResponse, error)
}

type earningsUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
}

func NewEarningsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
) EarningsUsecase {
	return &earningsUsecase{
		db:          db,
		log:         log,
		sessionRepo: sessionRepo,
	}
}

// GetMonthlySummary groups completed, monetarily-valued sessions by calendar
// month, most recent first. Months without qualifying sessions are omitted.
func (u *earningsUsecase) GetMonthlySummary(ctx context.Context, userID, startDate, endDate string) (*dto.MonthlySummaryResponse, error) {
	if startDate != "" && !dateutil.IsValidDate(startDate) {
		return nil, ErrInvalidDateFormat
	}
	if endDate != "" && !dateutil.IsValidDate(endDate) {
		return nil, ErrInvalidDateFormat
	}

	months, err := u.sessionRepo.MonthlySummary(ctx, u.db, userID, startDate, endDate)
	if err != nil {
		u.log.Warnf("Failed to aggregate monthly earnings: %+v", err)
		return nil, err
	}

	responses := converter.MonthlyEarningsToResponses(months)
	return &dto.MonthlySummaryResponse{
		Months: responses,
		Total:  len(responses),
	}, nil
}

// GetMonthlyDetail returns the total, count and full sorted list of
// qualifying sessions within one calendar month.
func (u *earningsUsecase) GetMonthlyDetail(ctx context.Context, userID string, year, month int) (*dto.MonthlyDetailResponse, error) {
	firstDay, lastDay, err := dateutil.MonthBounds(year, month)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	sessions, err := u.sessionRepo.FindCompletedInRange(ctx, u.db, userID, firstDay, lastDay)
	if err != nil {
		u.log.Warnf("Failed to find sessions for %d-%02d: %+v", year, month, err)
		return nil, err
	}

	var total float64
	for i := range sessions {
		total += sessions[i].Amount
	}

	list := converter.SessionsToListResponse(sessions)
	return &dto.MonthlyDetailResponse{
		Year:          year,
		Month:         month,
		TotalEarnings: total,
		SessionCount:  len(sessions),
		Sessions:      list.Sessions,
	}, nil
}
