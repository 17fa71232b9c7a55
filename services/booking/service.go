// services/booking/service.go
package booking

import (
	"fmt"
	"time"

	"myadvisor/database/repository"
	"myadvisor/models"
	"myadvisor/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxRangeDays caps a free-window request; longer ranges are rejected before
// the calculator runs, bounding work to O(days x slots per day).
const MaxRangeDays = 10

// BookingRequest is the payload for creating an appointment.
type BookingRequest struct {
	AdvisorID uint      `json:"advisor_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// BookingService defines the interface for appointment booking operations.
type BookingService interface {
	GetFreeWindows(advisorID uint, rangeStart, rangeEnd time.Time) (models.FreeWindowSet, error)
	BookAppointment(investorID uint, req BookingRequest) (*models.Appointment, error)
	ListAppointmentsFor(actor models.User) ([]models.Appointment, error)
	ConfirmAppointment(actor models.User, appointmentID uint) (*models.Appointment, error)
	CancelAppointment(actor models.User, appointmentID uint) (*models.Appointment, error)
	DeleteAppointment(actor models.User, appointmentID uint) error
	CompletePastAppointments() (int64, error)
}

// DefaultBookingService implements BookingService on top of the GORM
// repositories.
type DefaultBookingService struct {
	AppointmentRepo repository.AppointmentRepository
	AdvisorRepo     repository.AdvisorRepository
	SlotDuration    time.Duration
	MaxRangeDays    int
	Now             func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DefaultBookingService) slotDuration() time.Duration {
	if s.SlotDuration > 0 {
		return s.SlotDuration
	}
	return DefaultSlotDuration
}

func (s *DefaultBookingService) maxRangeDays() int {
	if s.MaxRangeDays > 0 {
		return s.MaxRangeDays
	}
	return MaxRangeDays
}

// ValidateRange checks the requested date range before the calculator runs.
func (s *DefaultBookingService) ValidateRange(rangeStart, rangeEnd time.Time) error {
	if rangeEnd.Before(rangeStart) {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidRange,
			rangeEnd.Format("2006-01-02"), rangeStart.Format("2006-01-02"))
	}
	if rangeEnd.Sub(rangeStart) > time.Duration(s.maxRangeDays())*24*time.Hour {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidRange, s.maxRangeDays())
	}
	return nil
}

// GetFreeWindows loads the advisor's shift configuration and booked
// appointments, then computes the bookable slots for every day in the range.
// Results reflect the appointment state at call time and are never cached.
func (s *DefaultBookingService) GetFreeWindows(advisorID uint, rangeStart, rangeEnd time.Time) (models.FreeWindowSet, error) {
	if err := s.ValidateRange(rangeStart, rangeEnd); err != nil {
		return nil, err
	}

	schedule, err := s.AdvisorRepo.GetShiftSchedule(advisorID)
	if err != nil {
		return nil, fmt.Errorf("%w: advisor %d", ErrMissingSchedule, advisorID)
	}

	// rangeStart at 00:00:00, rangeEnd at 23:59:59 of their calendar days.
	loc := rangeStart.Location()
	dayStart := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, loc)
	dayEnd := time.Date(rangeEnd.Year(), rangeEnd.Month(), rangeEnd.Day(), 23, 59, 59, 0, loc)

	appointments, err := s.AppointmentRepo.ListByAdvisorRange(advisorID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for advisor %d: %w", advisorID, err)
	}

	return ComputeFreeWindows(*schedule, appointments, dayStart, dayEnd, s.slotDuration()), nil
}

// BookAppointment runs the conflict check against the advisor's persisted
// appointments and creates the booking when the slot is free. The read and
// the insert are two storage operations; the unique index on
// (advisor_id, start_time) is the storage-layer backstop for concurrent
// bookings that both pass the check.
func (s *DefaultBookingService) BookAppointment(investorID uint, req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("appointment end must be after start")
	}
	if _, err := s.AdvisorRepo.GetByID(req.AdvisorID); err != nil {
		return nil, fmt.Errorf("advisor %d not found: %w", req.AdvisorID, err)
	}

	existing, err := s.AppointmentRepo.ListByAdvisorStart(req.AdvisorID, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check advisor availability: %w", err)
	}
	if !CanBook(req.AdvisorID, req.StartTime, existing) {
		return nil, ErrSlotTaken
	}

	appointment := &models.Appointment{
		Reference:  uuid.NewString(),
		AdvisorID:  req.AdvisorID,
		InvestorID: investorID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     models.AppointmentScheduled,
	}
	if err := s.AppointmentRepo.Create(appointment); err != nil {
		return nil, err
	}

	logger.Info("appointment booked",
		zap.Uint("appointmentID", appointment.ID),
		zap.Uint("advisorID", req.AdvisorID),
		zap.Uint("investorID", investorID),
		zap.Time("start", req.StartTime))
	return appointment, nil
}

// ListAppointmentsFor returns the actor's appointments, on whichever side of
// the booking they stand.
func (s *DefaultBookingService) ListAppointmentsFor(actor models.User) ([]models.Appointment, error) {
	if actor.Role == models.RoleAdvisor {
		profile, err := s.AdvisorRepo.GetByUserID(actor.ID)
		if err != nil {
			return nil, err
		}
		return s.AppointmentRepo.ListByAdvisor(profile.ID)
	}
	return s.AppointmentRepo.ListByInvestor(actor.ID)
}

// ConfirmAppointment transitions a scheduled appointment to confirmed. Only
// the owning advisor may confirm.
func (s *DefaultBookingService) ConfirmAppointment(actor models.User, appointmentID uint) (*models.Appointment, error) {
	appointment, err := s.AppointmentRepo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if !s.ownsAsAdvisor(actor, appointment) {
		return nil, ErrNotOwner
	}
	if appointment.Status != models.AppointmentScheduled {
		return nil, fmt.Errorf("appointment %d is %s, not %s", appointmentID, appointment.Status, models.AppointmentScheduled)
	}
	appointment.Status = models.AppointmentConfirmed
	if err := s.AppointmentRepo.Update(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// CancelAppointment transitions an appointment to canceled. Either owning
// party may cancel.
func (s *DefaultBookingService) CancelAppointment(actor models.User, appointmentID uint) (*models.Appointment, error) {
	appointment, err := s.AppointmentRepo.GetByID(appointmentID)
	if err != nil {
		return nil, err
	}
	if !s.owns(actor, appointment) {
		return nil, ErrNotOwner
	}
	if appointment.Status == models.AppointmentCompleted || appointment.Status == models.AppointmentCanceled {
		return nil, fmt.Errorf("appointment %d is already %s", appointmentID, appointment.Status)
	}
	appointment.Status = models.AppointmentCanceled
	if err := s.AppointmentRepo.Update(appointment); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("appointment canceled",
		zap.Uint("appointmentID", appointmentID), zap.Uint("actorID", actor.ID))
	return appointment, nil
}

// DeleteAppointment removes an appointment. Either owning party may delete;
// deletion is what frees the start instant for rebooking.
func (s *DefaultBookingService) DeleteAppointment(actor models.User, appointmentID uint) error {
	appointment, err := s.AppointmentRepo.GetByID(appointmentID)
	if err != nil {
		return err
	}
	if !s.owns(actor, appointment) {
		return ErrNotOwner
	}
	return s.AppointmentRepo.Delete(appointmentID)
}

// CompletePastAppointments sweeps scheduled/confirmed appointments whose end
// lies before the current instant into the completed status.
func (s *DefaultBookingService) CompletePastAppointments() (int64, error) {
	swept, err := s.AppointmentRepo.MarkCompletedBefore(s.now())
	if err != nil {
		return 0, err
	}
	if swept > 0 {
		utils.GetLogger().Info("past appointments marked completed", zap.Int64("count", swept))
	}
	return swept, nil
}

func (s *DefaultBookingService) owns(actor models.User, appointment *models.Appointment) bool {
	if appointment.InvestorID == actor.ID {
		return true
	}
	return s.ownsAsAdvisor(actor, appointment)
}

func (s *DefaultBookingService) ownsAsAdvisor(actor models.User, appointment *models.Appointment) bool {
	if actor.Role != models.RoleAdvisor {
		return false
	}
	profile, err := s.AdvisorRepo.GetByUserID(actor.ID)
	if err != nil {
		return false
	}
	return profile.ID == appointment.AdvisorID
}
