package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is an investor's rating of an advisor after an appointment.
type Review struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	AdvisorID     uint           `gorm:"index;not null" json:"advisor_id"`
	InvestorID    uint           `gorm:"index;not null" json:"investor_id"`
	AppointmentID uint           `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Rating        int            `gorm:"not null" json:"rating"` // 1..5
	ReviewText    string         `json:"review_text"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
