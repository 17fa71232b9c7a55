// models/shift.go
package models

import "time"

// ShiftSchedule defines an advisor's daily working hours as time-of-day
// values ("HH:MM", no date component). Shift 1 is mandatory; shift 2 is
// optional and must not overlap shift 1.
type ShiftSchedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AdvisorID   uint      `gorm:"uniqueIndex;not null" json:"advisor_id"`
	Shift1Start string    `gorm:"not null" json:"shift_1_start"`
	Shift1End   string    `gorm:"not null" json:"shift_1_end"`
	Shift2Start *string   `json:"shift_2_start,omitempty"`
	Shift2End   *string   `json:"shift_2_end,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasSecondShift reports whether both bounds of shift 2 are configured.
func (s ShiftSchedule) HasSecondShift() bool {
	return s.Shift2Start != nil && s.Shift2End != nil
}
