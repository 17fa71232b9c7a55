// models/advisor.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// AdvisorProfile holds advisor-side profile details.
type AdvisorProfile struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	ExperienceYrs int            `json:"experience_years"`
	ContactInfo   string         `json:"contact_information"`
	OfficeAddress string         `json:"office_address"`
	Verified      bool           `gorm:"default:false" json:"verified"`
	AverageRating float64        `gorm:"default:0" json:"average_rating"`
	ServiceTypes  []ServiceType  `gorm:"many2many:advisor_service_types;" json:"service_types"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
