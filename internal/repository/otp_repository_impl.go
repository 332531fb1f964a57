package repository

import (
	"context"
	"errors"
	"time"

	"physiodesk/internal/domain/entity"
	domainRepo "physiodesk/internal/domain/repository"

	"gorm.io/gorm"
)

type otpRepository struct{}

func NewOTPRepository() domainRepo.OTPRepository {
	return &otpRepository{}
}

func (r *otpRepository) Create(ctx context.Context, db *gorm.DB, otp *entity.OTPCode) error {
	return db.WithContext(ctx).Create(otp).Error
}

// FindValid returns the newest unused, unexpired code matching email, code
// and purpose, or nil when none exists.
func (r *otpRepository) FindValid(ctx context.Context, db *gorm.DB, email, code, purpose string, now time.Time) (*entity.OTPCode, error) {
	var otp entity.OTPCode
	err := db.WithContext(ctx).
		Where("email = ? AND code = ? AND purpose = ? AND used = ? AND expires_at > ?", email, code, purpose, false, now).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &otp, nil
}

func (r *otpRepository) MarkUsed(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Model(&entity.OTPCode{}).
		Where("id = ?", id).
		Update("used", true).Error
}

// DeleteExpiredOrUsed removes codes that can never be redeemed again.
func (r *otpRepository) DeleteExpiredOrUsed(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Where("expires_at <= ? OR used = ?", now, true).
		Delete(&entity.OTPCode{})
	return result.RowsAffected, result.Error
}
