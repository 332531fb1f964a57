package converter

import (
	"physiodesk/internal/delivery/dto"
	"physiodesk/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO.
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            patient.ID,
		Name:          patient.Name,
		ContactNumber: patient.ContactNumber,
		Age:           patient.Age,
		Gender:        patient.Gender,
		CreatedAt:     patient.CreatedAt,
		UpdatedAt:     patient.UpdatedAt,
	}
}

// PatientsToListResponse converts a slice of patients to a list response.
func PatientsToListResponse(patients []entity.Patient) *dto.PatientListResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}
}
