package dto

import (
	"testing"

	"physiodesk/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestCreatePatientRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	tests := []struct {
		name    string
		req     CreatePatientRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreatePatientRequest{Name: "Jane Doe", ContactNumber: "5551234567", Age: intPtr(34), Gender: "female"},
		},
		{
			name: "age zero allowed",
			req:  CreatePatientRequest{Name: "Newborn", Age: intPtr(0), Gender: "other"},
		},
		{
			name: "age upper bound",
			req:  CreatePatientRequest{Name: "Elder", Age: intPtr(150), Gender: "male"},
		},
		{
			name:    "age above bound",
			req:     CreatePatientRequest{Name: "Elder", Age: intPtr(151), Gender: "male"},
			wantErr: true,
		},
		{
			name:    "negative age",
			req:     CreatePatientRequest{Name: "Jane", Age: intPtr(-1), Gender: "female"},
			wantErr: true,
		},
		{
			name:    "missing name",
			req:     CreatePatientRequest{Age: intPtr(30), Gender: "female"},
			wantErr: true,
		},
		{
			name:    "missing age",
			req:     CreatePatientRequest{Name: "Jane", Gender: "female"},
			wantErr: true,
		},
		{
			name:    "unknown gender",
			req:     CreatePatientRequest{Name: "Jane", Age: intPtr(30), Gender: "unknown"},
			wantErr: true,
		},
		{
			name:    "contact number too short",
			req:     CreatePatientRequest{Name: "Jane", ContactNumber: "555", Age: intPtr(30), Gender: "female"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateSessionRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	valid := CreateSessionRequest{
		PatientID: "507f1f77bcf86cd799439011",
		Date:      "2024-03-07",
		Time:      "09:30",
	}
	assert.NoError(t, v.Validate(&valid))

	withStatus := valid
	withStatus.Status = "completed"
	withStatus.Amount = floatPtr(150)
	assert.NoError(t, v.Validate(&withStatus))

	badStatus := valid
	badStatus.Status = "done"
	assert.Error(t, v.Validate(&badStatus))

	negativeAmount := valid
	negativeAmount.Amount = floatPtr(-10)
	assert.Error(t, v.Validate(&negativeAmount))

	missingPatient := valid
	missingPatient.PatientID = ""
	assert.Error(t, v.Validate(&missingPatient))
}

func TestBulkCreateSessionsRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	empty := BulkCreateSessionsRequest{}
	assert.Error(t, v.Validate(&empty))

	oneBad := BulkCreateSessionsRequest{Sessions: []CreateSessionRequest{
		{PatientID: "507f1f77bcf86cd799439011", Date: "2024-03-07", Time: "09:30"},
		{PatientID: "", Date: "2024-03-08", Time: "10:00"},
	}}
	assert.Error(t, v.Validate(&oneBad))

	allGood := BulkCreateSessionsRequest{Sessions: []CreateSessionRequest{
		{PatientID: "507f1f77bcf86cd799439011", Date: "2024-03-07", Time: "09:30"},
		{PatientID: "507f1f77bcf86cd799439012", Date: "2024-03-08", Time: "10:00"},
	}}
	assert.NoError(t, v.Validate(&allGood))
}

func TestRegisterRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	valid := RegisterRequest{
		Email:    "pt@example.com",
		Phone:    "5551234567",
		Password: "secret1",
		OTP:      "123456",
	}
	assert.NoError(t, v.Validate(&valid))

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, v.Validate(&badEmail))

	shortPassword := valid
	shortPassword.Password = "abc"
	assert.Error(t, v.Validate(&shortPassword))

	shortOTP := valid
	shortOTP.OTP = "123"
	assert.Error(t, v.Validate(&shortOTP))
}

func TestRequestOTPRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.Validate(&RequestOTPRequest{Email: "pt@example.com", Purpose: "register"}))
	assert.NoError(t, v.Validate(&RequestOTPRequest{Email: "pt@example.com", Purpose: "reset"}))
	assert.Error(t, v.Validate(&RequestOTPRequest{Email: "pt@example.com", Purpose: "login"}))
	assert.Error(t, v.Validate(&RequestOTPRequest{Purpose: "register"}))
}

func TestUpdateOpenSessionsRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.Validate(&UpdateOpenSessionsRequest{}))
	assert.NoError(t, v.Validate(&UpdateOpenSessionsRequest{Amount: floatPtr(0)}))
	assert.Error(t, v.Validate(&UpdateOpenSessionsRequest{Amount: floatPtr(-5)}))
}

func TestActivePatientsRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	assert.Error(t, v.Validate(&ActivePatientsRequest{}))
	assert.Error(t, v.Validate(&ActivePatientsRequest{PatientIDs: []string{}}))
	assert.NoError(t, v.Validate(&ActivePatientsRequest{PatientIDs: []string{"507f1f77bcf86cd799439011"}}))
}
