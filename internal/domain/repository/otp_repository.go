package repository

import (
	"context"
	"time"

	"physiodesk/internal/domain/entity"

	"gorm.io/gorm"
)

type OTPRepository interface {
	Create(ctx context.Context, db *gorm.DB, otp *entity.OTPCode) error
	FindValid(ctx context.Context, db *gorm.DB, email, code, purpose string, now time.Time) (*entity.OTPCode, error)
	MarkUsed(ctx context.Context, db *gorm.DB, id string) error
	DeleteExpiredOrUsed(ctx context.Context, db *gorm.DB, now time.Time) (int64, error)
}
