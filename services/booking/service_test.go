package booking

import (
	"errors"
	"testing"
	"time"

	"myadvisor/database/repository"
	"myadvisor/models"
)

// fakeAdvisorRepo and fakeAppointmentRepo stub the repository interfaces;
// methods a test does not exercise panic via the embedded nil interface.
type fakeAdvisorRepo struct {
	repository.AdvisorRepository
	schedule *models.ShiftSchedule
	profile  *models.AdvisorProfile
}

func (f *fakeAdvisorRepo) GetShiftSchedule(advisorID uint) (*models.ShiftSchedule, error) {
	if f.schedule == nil {
		return nil, errors.New("no shift schedule")
	}
	return f.schedule, nil
}

func (f *fakeAdvisorRepo) GetByID(id uint) (*models.AdvisorProfile, error) {
	if f.profile == nil {
		return nil, errors.New("advisor not found")
	}
	return f.profile, nil
}

type fakeAppointmentRepo struct {
	repository.AppointmentRepository
	appointments []models.Appointment
	created      *models.Appointment
}

func (f *fakeAppointmentRepo) ListByAdvisorRange(advisorID uint, rangeStart, rangeEnd time.Time) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) ListByAdvisorStart(advisorID uint, start time.Time) ([]models.Appointment, error) {
	var matched []models.Appointment
	for _, appt := range f.appointments {
		if appt.AdvisorID == advisorID && appt.StartTime.Equal(start) {
			matched = append(matched, appt)
		}
	}
	return matched, nil
}

func (f *fakeAppointmentRepo) Create(appointment *models.Appointment) error {
	appointment.ID = uint(len(f.appointments) + 1)
	f.appointments = append(f.appointments, *appointment)
	f.created = appointment
	return nil
}

func newTestService(advisors *fakeAdvisorRepo, appointments *fakeAppointmentRepo) *DefaultBookingService {
	return &DefaultBookingService{
		AppointmentRepo: appointments,
		AdvisorRepo:     advisors,
		Now:             func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) },
	}
}

func TestGetFreeWindows_InvertedRangeRejected(t *testing.T) {
	svc := newTestService(&fakeAdvisorRepo{}, &fakeAppointmentRepo{})

	start := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.GetFreeWindows(1, start, end)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestGetFreeWindows_RangeCapRejected(t *testing.T) {
	svc := newTestService(&fakeAdvisorRepo{}, &fakeAppointmentRepo{})

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 11)
	_, err := svc.GetFreeWindows(1, start, end)
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for an 11-day range, got %v", err)
	}
}

func TestGetFreeWindows_MissingSchedule(t *testing.T) {
	svc := newTestService(&fakeAdvisorRepo{}, &fakeAppointmentRepo{})

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.GetFreeWindows(1, day, day)
	if !errors.Is(err, ErrMissingSchedule) {
		t.Fatalf("expected ErrMissingSchedule, got %v", err)
	}
}

func TestGetFreeWindows_ComputesFromStoredState(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	advisors := &fakeAdvisorRepo{
		schedule: &models.ShiftSchedule{AdvisorID: 1, Shift1Start: "09:00", Shift1End: "12:00"},
	}
	appointments := &fakeAppointmentRepo{
		appointments: []models.Appointment{
			{AdvisorID: 1, StartTime: day.Add(10 * time.Hour), EndTime: day.Add(11 * time.Hour)},
		},
	}
	svc := newTestService(advisors, appointments)

	windows, err := svc.GetFreeWindows(1, day, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(windows["2026-03-02"]); got != 4 {
		t.Fatalf("expected 4 free slots, got %d", got)
	}
}

func TestBookAppointment_ConflictRefused(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	advisors := &fakeAdvisorRepo{profile: &models.AdvisorProfile{ID: 1}}
	appointments := &fakeAppointmentRepo{
		appointments: []models.Appointment{
			{AdvisorID: 1, StartTime: start, EndTime: start.Add(time.Hour)},
		},
	}
	svc := newTestService(advisors, appointments)

	_, err := svc.BookAppointment(9, BookingRequest{AdvisorID: 1, StartTime: start, EndTime: start.Add(time.Hour)})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestBookAppointment_CreatesScheduled(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	advisors := &fakeAdvisorRepo{profile: &models.AdvisorProfile{ID: 1}}
	appointments := &fakeAppointmentRepo{}
	svc := newTestService(advisors, appointments)

	created, err := svc.BookAppointment(9, BookingRequest{AdvisorID: 1, StartTime: start, EndTime: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != models.AppointmentScheduled {
		t.Errorf("expected status %q, got %q", models.AppointmentScheduled, created.Status)
	}
	if appointments.created == nil {
		t.Fatal("expected the appointment to be persisted")
	}
	if created.InvestorID != 9 || created.AdvisorID != 1 {
		t.Errorf("unexpected ownership: investor %d advisor %d", created.InvestorID, created.AdvisorID)
	}
}

func TestBookAppointment_EndBeforeStartRejected(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeAdvisorRepo{profile: &models.AdvisorProfile{ID: 1}}, &fakeAppointmentRepo{})

	_, err := svc.BookAppointment(9, BookingRequest{AdvisorID: 1, StartTime: start, EndTime: start.Add(-time.Hour)})
	if err == nil {
		t.Fatal("expected an error for end before start")
	}
}
