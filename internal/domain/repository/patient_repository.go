package repository

import (
	"context"

	"physiodesk/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, userID, id string) (*entity.Patient, error)
	FindAllByUser(ctx context.Context, db *gorm.DB, userID string) ([]entity.Patient, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, userID, id string) (int64, error)
}
