// database/repository/appointment.go
package repository

import (
	"fmt"
	"time"

	"myadvisor/database"
	"myadvisor/models"
)

// AppointmentRepository defines the interface for appointment data access.
type AppointmentRepository interface {
	GetByID(id uint) (*models.Appointment, error)
	Create(appointment *models.Appointment) error
	Update(appointment *models.Appointment) error
	Delete(id uint) error
	// ListByAdvisorRange returns the advisor's appointments whose start falls
	// within [rangeStart, rangeEnd].
	ListByAdvisorRange(advisorID uint, rangeStart, rangeEnd time.Time) ([]models.Appointment, error)
	// ListByAdvisorStart returns the advisor's appointments starting exactly
	// at the given instant (feeds the booking conflict check).
	ListByAdvisorStart(advisorID uint, start time.Time) ([]models.Appointment, error)
	ListByAdvisor(advisorID uint) ([]models.Appointment, error)
	ListByInvestor(investorID uint) ([]models.Appointment, error)
	// MarkCompletedBefore transitions scheduled/confirmed appointments that
	// ended before the cutoff to completed, returning the number updated.
	MarkCompletedBefore(cutoff time.Time) (int64, error)
	Count() (int64, error)
}

// GormAppointmentRepo implements AppointmentRepository using GORM.
type GormAppointmentRepo struct{}

func NewGormAppointmentRepo() AppointmentRepository {
	return &GormAppointmentRepo{}
}

// GetByID retrieves an appointment by its ID.
func (repo *GormAppointmentRepo) GetByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := database.DB.First(&appointment, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("appointment with id %d not found: %w", id, err)
	}
	return &appointment, nil
}

// Create inserts a new appointment record.
func (repo *GormAppointmentRepo) Create(appointment *models.Appointment) error {
	if err := database.DB.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// Update saves the updated appointment record.
func (repo *GormAppointmentRepo) Update(appointment *models.Appointment) error {
	if err := database.DB.Save(appointment).Error; err != nil {
		return fmt.Errorf("failed to update appointment with id %d: %w", appointment.ID, err)
	}
	return nil
}

// Delete removes the appointment record by ID.
func (repo *GormAppointmentRepo) Delete(id uint) error {
	if err := database.DB.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete appointment with id %d: %w", id, err)
	}
	return nil
}

// ListByAdvisorRange returns the advisor's appointments starting within the range.
func (repo *GormAppointmentRepo) ListByAdvisorRange(advisorID uint, rangeStart, rangeEnd time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.DB.
		Where("advisor_id = ? AND start_time >= ? AND start_time <= ?", advisorID, rangeStart, rangeEnd).
		Order("start_time").
		Find(&appointments).Error
	return appointments, err
}

// ListByAdvisorStart returns appointments with an exact start match.
func (repo *GormAppointmentRepo) ListByAdvisorStart(advisorID uint, start time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.DB.
		Where("advisor_id = ? AND start_time = ?", advisorID, start).
		Find(&appointments).Error
	return appointments, err
}

// ListByAdvisor returns all of the advisor's appointments, newest first.
func (repo *GormAppointmentRepo) ListByAdvisor(advisorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.DB.
		Where("advisor_id = ?", advisorID).
		Order("start_time DESC").
		Find(&appointments).Error
	return appointments, err
}

// ListByInvestor returns all of the investor's appointments, newest first.
func (repo *GormAppointmentRepo) ListByInvestor(investorID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := database.DB.
		Where("investor_id = ?", investorID).
		Order("start_time DESC").
		Find(&appointments).Error
	return appointments, err
}

// MarkCompletedBefore sweeps past appointments into the completed status.
func (repo *GormAppointmentRepo) MarkCompletedBefore(cutoff time.Time) (int64, error) {
	result := database.DB.Model(&models.Appointment{}).
		Where("status IN ? AND end_time < ?", []string{models.AppointmentScheduled, models.AppointmentConfirmed}, cutoff).
		Update("status", models.AppointmentCompleted)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark past appointments completed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Count returns the number of non-deleted appointments.
func (repo *GormAppointmentRepo) Count() (int64, error) {
	var count int64
	err := database.DB.Model(&models.Appointment{}).Count(&count).Error
	return count, err
}
