package repository

import (
	"context"

	"physiodesk/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*entity.User, error)
	Update(ctx context.Context, db *gorm.DB, user *entity.User) error
}
