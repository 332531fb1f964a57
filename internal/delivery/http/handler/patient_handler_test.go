package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"physiodesk/internal/delivery/dto"
	"physiodesk/internal/delivery/http/middleware"
	"physiodesk/internal/usecase"
	"physiodesk/pkg/response"
	"physiodesk/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestUserID = "6578d2a1f3e9b0c4a1d2e3f4"

// fakePatientUsecase lets handler tests script usecase outcomes without a
// database.
type fakePatientUsecase struct {
	listFn   func(userID string) (*dto.PatientListResponse, error)
	createFn func(userID string, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	updateFn func(userID, patientID string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	deleteFn func(userID, patientID string) error
}

func (f *fakePatientUsecase) ListPatients(ctx context.Context, userID string) (*dto.PatientListResponse, error) {
	if f.listFn != nil {
		return f.listFn(userID)
	}
	return &dto.PatientListResponse{Patients: []dto.PatientResponse{}}, nil
}

func (f *fakePatientUsecase) CreatePatient(ctx context.Context, userID string, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if f.createFn != nil {
		return f.createFn(userID, req)
	}
	return &dto.PatientResponse{}, nil
}

func (f *fakePatientUsecase) UpdatePatient(ctx context.Context, userID, patientID string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if f.updateFn != nil {
		return f.updateFn(userID, patientID, req)
	}
	return &dto.PatientResponse{}, nil
}

func (f *fakePatientUsecase) DeletePatient(ctx context.Context, userID, patientID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(userID, patientID)
	}
	return nil
}

func (f *fakePatientUsecase) UpdateOpenSessionDetails(ctx context.Context, userID, patientID string, req *dto.UpdateOpenSessionsRequest) (*dto.BulkSessionResult, error) {
	return &dto.BulkSessionResult{}, nil
}

func (f *fakePatientUsecase) CloseOpenSessions(ctx context.Context, userID, patientID string) (*dto.BulkSessionResult, error) {
	return &dto.BulkSessionResult{}, nil
}

func (f *fakePatientUsecase) LastActiveSessionDate(ctx context.Context, userID, patientID string) (*dto.LastActiveResponse, error) {
	return &dto.LastActiveResponse{}, nil
}

func (f *fakePatientUsecase) FilterActivePatients(ctx context.Context, userID string, req *dto.ActivePatientsRequest) (*dto.ActivePatientsResponse, error) {
	return &dto.ActivePatientsResponse{}, nil
}

func authenticated(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, handlerTestUserID)
	return r.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestCreatePatientSuccess(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		createFn: func(userID string, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
			assert.Equal(t, handlerTestUserID, userID)
			return &dto.PatientResponse{ID: "507f1f77bcf86cd799439011", Name: req.Name}, nil
		},
	}, validator.NewValidator())

	body := `{"name":"Jane Doe","age":34,"gender":"female"}`
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.CreatePatient(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Patient created successfully", envelope.Message)
	assert.NotNil(t, envelope.Data)
}

func TestCreatePatientValidationFailure(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	body := `{"name":"Jane Doe","age":200,"gender":"female"}`
	req := authenticated(httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body)))
	rec := httptest.NewRecorder()

	h.CreatePatient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Validation failed", envelope.Message)
	assert.NotNil(t, envelope.Error)
}

func TestCreatePatientUnauthenticated(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	body := `{"name":"Jane Doe","age":34,"gender":"female"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreatePatient(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdatePatientMalformedID(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	req := authenticated(httptest.NewRequest(http.MethodPut, "/api/v1/patients/not-a-valid-id", strings.NewReader(`{}`)))
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-valid-id"})
	rec := httptest.NewRecorder()

	h.UpdatePatient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid patient ID", envelope.Message)
}

func TestDeletePatientNotFound(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		deleteFn: func(userID, patientID string) error { return usecase.ErrPatientNotFound },
	}, validator.NewValidator())

	req := authenticated(httptest.NewRequest(http.MethodDelete, "/api/v1/patients/507f1f77bcf86cd799439011", nil))
	req = mux.SetURLVars(req, map[string]string{"id": "507f1f77bcf86cd799439011"})
	rec := httptest.NewRecorder()

	h.DeletePatient(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Patient not found", envelope.Message)
}

func TestListPatientsEnvelope(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		listFn: func(userID string) (*dto.PatientListResponse, error) {
			return &dto.PatientListResponse{
				Patients: []dto.PatientResponse{{ID: "507f1f77bcf86cd799439011", Name: "Jane Doe"}},
				Total:    1,
			}, nil
		},
	}, validator.NewValidator())

	req := authenticated(httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))
	rec := httptest.NewRecorder()

	h.ListPatients(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["total"])
}
