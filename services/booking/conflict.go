// services/booking/conflict.go
package booking

import (
	"time"

	"myadvisor/models"
)

// CanBook decides whether a new appointment for the advisor may be created at
// the requested start. It refuses only when an existing appointment for the
// same advisor starts at exactly the same instant; it is not an interval
// overlap check. Pure decision function: the caller performs the subsequent
// insert and any atomicity it needs around it.
func CanBook(advisorID uint, requestedStart time.Time, existing []models.Appointment) bool {
	for _, appt := range existing {
		if appt.AdvisorID == advisorID && appt.StartTime.Equal(requestedStart) {
			return false
		}
	}
	return true
}
