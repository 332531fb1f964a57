package entity

import (
	"time"
)

// OTP purposes
const (
	OTPPurposeRegister = "register"
	OTPPurposeReset    = "reset"
)

// OTPCode is an ephemeral verification code keyed by email. Codes expire
// after a configured window and are consumed on first use; expired and used
// rows are removed by the hourly sweep.
type OTPCode struct {
	ID        string    `gorm:"type:char(24);primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Code      string    `gorm:"type:char(6);not null" json:"-"`
	Purpose   string    `gorm:"type:varchar(10);not null" json:"purpose"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (OTPCode) TableName() string {
	return "otp_codes"
}
