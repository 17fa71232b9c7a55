// models/appointment.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment statuses.
const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCanceled  = "canceled"
)

// Appointment represents a booked interval between an investor and an advisor.
// Timestamps are full date-times in one consistent zone (UTC). Invariant:
// StartTime < EndTime.
//
// The partial unique index on (advisor_id, start_time) backstops concurrent
// bookings that both pass the availability check; soft-deleted rows are
// excluded so deleting an appointment frees its start instant.
type Appointment struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Reference  string         `gorm:"uniqueIndex;size:36" json:"reference"`
	AdvisorID  uint           `gorm:"index;not null;uniqueIndex:uniq_advisor_start,where:deleted_at IS NULL" json:"advisor_id"`
	InvestorID uint           `gorm:"index;not null" json:"investor_id"`
	StartTime  time.Time      `gorm:"index;not null;uniqueIndex:uniq_advisor_start,where:deleted_at IS NULL" json:"start_time"`
	EndTime    time.Time      `gorm:"not null" json:"end_time"`
	Status     string         `gorm:"index;default:'scheduled'" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
