package repository

import (
	"context"
	"errors"

	"physiodesk/internal/domain/entity"
	domainRepo "physiodesk/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

// FindByID looks up a patient by id scoped to its owner. The owner id is part
// of the predicate, so a patient owned by someone else is indistinguishable
// from a missing one.
func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, userID, id string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAllByUser(ctx context.Context, db *gorm.DB, userID string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Save(patient).Error
}

// Delete hard-deletes the patient. Sessions are left untouched; they keep
// their denormalized patient name.
func (r *patientRepository) Delete(ctx context.Context, db *gorm.DB, userID, id string) (int64, error) {
	result := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}
