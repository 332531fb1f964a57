package converter

import (
	"physiodesk/internal/delivery/dto"
	"physiodesk/internal/domain/entity"
)

// SessionToResponse converts a Session entity to its response DTO.
func SessionToResponse(session *entity.Session) *dto.SessionResponse {
	if session == nil {
		return nil
	}

	return &dto.SessionResponse{
		ID:          session.ID,
		PatientID:   session.PatientID,
		PatientName: session.PatientName,
		Date:        session.SessionDate,
		Time:        session.StartTime,
		Notes:       session.Notes,
		Status:      string(session.Status),
		Amount:      session.Amount,
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   session.UpdatedAt,
	}
}

// SessionsToListResponse converts a slice of sessions to a list response.
func SessionsToListResponse(sessions []entity.Session) *dto.SessionListResponse {
	responses := make([]dto.SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = *SessionToResponse(&sessions[i])
	}
	return &dto.SessionListResponse{
		Sessions: responses,
		Total:    len(responses),
	}
}

// MonthlyEarningsToResponses converts aggregation buckets to DTOs.
func MonthlyEarningsToResponses(months []entity.MonthlyEarnings) []dto.MonthlyEarningsResponse {
	responses := make([]dto.MonthlyEarningsResponse, len(months))
	for i, m := range months {
		responses[i] = dto.MonthlyEarningsResponse{
			Year:          m.Year,
			Month:         m.Month,
			TotalEarnings: m.TotalEarnings,
			SessionCount:  m.SessionCount,
		}
	}
	return responses
}
