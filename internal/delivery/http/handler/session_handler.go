package handler

import (
	"encoding/json"
	"net/http"

	"physiodesk/internal/delivery/dto"
	"physiodesk/internal/delivery/http/middleware"
	"physiodesk/internal/usecase"
	"physiodesk/pkg/objectid"
	"physiodesk/pkg/response"
	"physiodesk/pkg/validator"

	"github.com/gorilla/mux"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	params := r.URL.Query()
	query := &dto.SessionListQuery{
		PatientID:        params.Get("patientId"),
		StartDate:        params.Get("startDate"),
		EndDate:          params.Get("endDate"),
		Completed:        params.Get("completed"),
		IncludeCancelled: params.Get("includeCancelled"),
	}

	if query.PatientID != "" && !objectid.IsValid(query.PatientID) {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	sessions, err := h.sessionUsecase.ListSessions(r.Context(), userID, query)
	if err != nil {
		response.InternalServerError(w, "Failed to get sessions")
		return
	}

	response.Success(w, http.StatusOK, "Sessions retrieved successfully", sessions)
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if !objectid.IsValid(req.PatientID) {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	session, err := h.sessionUsecase.CreateSession(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to create session")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Session created successfully", session)
}

func (h *SessionHandler) CreateSessionsBulk(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.BulkCreateSessionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	for _, item := range req.Sessions {
		if !objectid.IsValid(item.PatientID) {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
	}

	sessions, err := h.sessionUsecase.CreateSessions(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to create sessions")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Sessions created successfully", sessions)
}

func (h *SessionHandler) GetTodaySessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	sessions, err := h.sessionUsecase.GetTodaySessions(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get today's sessions")
		return
	}

	response.Success(w, http.StatusOK, "Today's sessions retrieved successfully", sessions)
}

func (h *SessionHandler) GetUpcomingSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	sessions, err := h.sessionUsecase.GetUpcomingSessions(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get upcoming sessions")
		return
	}

	response.Success(w, http.StatusOK, "Upcoming sessions retrieved successfully", sessions)
}

func (h *SessionHandler) GetPastSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	includeCancelled := r.URL.Query().Get("includeCancelled") == "true"

	sessions, err := h.sessionUsecase.GetPastSessions(r.Context(), userID, includeCancelled)
	if err != nil {
		response.InternalServerError(w, "Failed to get past sessions")
		return
	}

	response.Success(w, http.StatusOK, "Past sessions retrieved successfully", sessions)
}

func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	sessionID := mux.Vars(r)["id"]
	if !objectid.IsValid(sessionID) {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	var req dto.UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	session, err := h.sessionUsecase.UpdateSession(r.Context(), userID, sessionID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSessionNotFound:
			response.NotFound(w, "Session not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to update session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Session updated successfully", session)
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	sessionID := mux.Vars(r)["id"]
	if !objectid.IsValid(sessionID) {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	if err := h.sessionUsecase.DeleteSession(r.Context(), userID, sessionID); err != nil {
		if err == usecase.ErrSessionNotFound {
			response.NotFound(w, "Session not found")
			return
		}
		response.InternalServerError(w, "Failed to delete session")
		return
	}

	response.Success(w, http.StatusOK, "Session deleted successfully", nil)
}
