package entity

import (
	"time"
)

// Gender values accepted for patients
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Patient is a person under a user's care. Every patient belongs to exactly
// one user; all reads and writes filter by that owner.
type Patient struct {
	ID            string    `gorm:"type:char(24);primaryKey" json:"id"`
	UserID        string    `gorm:"type:char(24);not null;index" json:"user_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactNumber string    `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
	Age           int       `gorm:"not null" json:"age"`
	Gender        string    `gorm:"type:varchar(10);not null" json:"gender"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships. Deleting a patient does not cascade to sessions;
	// orphaned sessions keep their denormalized patient name.
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
