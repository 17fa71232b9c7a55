// services/admin/service.go
package admin

import (
	"myadvisor/database/repository"
	"myadvisor/models"
)

// PlatformMetrics summarizes platform activity for the admin dashboard.
type PlatformMetrics struct {
	Investors    int64 `json:"investors"`
	Advisors     int64 `json:"advisors"`
	Appointments int64 `json:"appointments"`
}

// AdminService defines administrative operations.
type AdminService interface {
	GetAllUsers() ([]models.User, error)
	GetAllAdvisors() ([]models.AdvisorProfile, error)
	GetMetrics() (*PlatformMetrics, error)
	DeleteUser(id uint) error
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	UserRepo        repository.UserRepository
	AdvisorRepo     repository.AdvisorRepository
	AppointmentRepo repository.AppointmentRepository
}

// GetAllUsers lists every account.
func (s *DefaultAdminService) GetAllUsers() ([]models.User, error) {
	return s.UserRepo.GetAll()
}

// GetAllAdvisors lists every advisor profile.
func (s *DefaultAdminService) GetAllAdvisors() ([]models.AdvisorProfile, error) {
	return s.AdvisorRepo.GetAll()
}

// GetMetrics aggregates the platform counters.
func (s *DefaultAdminService) GetMetrics() (*PlatformMetrics, error) {
	investors, err := s.UserRepo.CountByRole(models.RoleInvestor)
	if err != nil {
		return nil, err
	}
	advisors, err := s.UserRepo.CountByRole(models.RoleAdvisor)
	if err != nil {
		return nil, err
	}
	appointments, err := s.AppointmentRepo.Count()
	if err != nil {
		return nil, err
	}
	return &PlatformMetrics{
		Investors:    investors,
		Advisors:     advisors,
		Appointments: appointments,
	}, nil
}

// DeleteUser removes an account.
func (s *DefaultAdminService) DeleteUser(id uint) error {
	return s.UserRepo.Delete(id)
}
