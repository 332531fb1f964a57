package entity

import (
	"time"
)

// User is an authenticated account. Patients and sessions are always scoped
// to their owning user.
type User struct {
	ID           string    `gorm:"type:char(24);primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	Password     string    `gorm:"type:text;not null" json:"-"`
	ProfileImage string    `gorm:"type:text" json:"profile_image,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patients []Patient `gorm:"foreignKey:UserID" json:"patients,omitempty"`
	Sessions []Session `gorm:"foreignKey:UserID" json:"sessions,omitempty"`
}

func (User) TableName() string {
	return "users"
}
