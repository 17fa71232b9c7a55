package booking

import (
	"testing"
	"time"

	"myadvisor/models"
)

func TestCanBook_ExactStartMatchRefused(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	existing := []models.Appointment{
		{AdvisorID: 7, StartTime: start, EndTime: start.Add(time.Hour)},
	}

	if CanBook(7, start, existing) {
		t.Fatal("expected booking at an already-taken start to be refused")
	}
}

func TestCanBook_OffsetStartAllowed(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	existing := []models.Appointment{
		{AdvisorID: 7, StartTime: start, EndTime: start.Add(time.Hour)},
	}

	// Exact-equality semantics: one minute into the existing booking passes.
	if !CanBook(7, start.Add(time.Minute), existing) {
		t.Fatal("expected booking one minute later to be allowed")
	}
}

func TestCanBook_OtherAdvisorIgnored(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	existing := []models.Appointment{
		{AdvisorID: 8, StartTime: start, EndTime: start.Add(time.Hour)},
	}

	if !CanBook(7, start, existing) {
		t.Fatal("expected another advisor's appointment not to block the booking")
	}
}

func TestCanBook_NoAppointments(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	if !CanBook(7, start, nil) {
		t.Fatal("expected booking with no existing appointments to be allowed")
	}
}
