// database/repository/advisor.go
package repository

import (
	"fmt"
	"strings"

	"myadvisor/database"
	"myadvisor/models"

	"gorm.io/gorm"
)

// AdvisorRepository defines the interface for advisor profile data access.
type AdvisorRepository interface {
	GetByID(id uint) (*models.AdvisorProfile, error)
	GetByUserID(userID uint) (*models.AdvisorProfile, error)
	GetAll() ([]models.AdvisorProfile, error)
	GetByServiceType(serviceType string) ([]models.AdvisorProfile, error)
	Create(profile *models.AdvisorProfile) error
	Update(profile *models.AdvisorProfile) error
	Delete(id uint) error
	UpdateAverageRating(advisorID uint, rating float64) error

	GetShiftSchedule(advisorID uint) (*models.ShiftSchedule, error)
	SaveShiftSchedule(schedule *models.ShiftSchedule) error

	ListServiceTypes() ([]models.ServiceType, error)
	ReplaceServiceTypes(profile *models.AdvisorProfile, typeIDs []uint) error
}

// GormAdvisorRepo implements AdvisorRepository using GORM.
type GormAdvisorRepo struct{}

func NewGormAdvisorRepo() AdvisorRepository {
	return &GormAdvisorRepo{}
}

// GetByID retrieves an advisor profile by its ID.
func (repo *GormAdvisorRepo) GetByID(id uint) (*models.AdvisorProfile, error) {
	var profile models.AdvisorProfile
	err := database.DB.Preload("ServiceTypes").First(&profile, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("advisor with id %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to retrieve advisor with id %d: %w", id, err)
	}
	return &profile, nil
}

// GetByUserID retrieves an advisor profile by the owning user's ID.
func (repo *GormAdvisorRepo) GetByUserID(userID uint) (*models.AdvisorProfile, error) {
	var profile models.AdvisorProfile
	err := database.DB.Preload("ServiceTypes").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("advisor profile for user %d not found: %w", userID, err)
	}
	return &profile, nil
}

// GetAll retrieves all advisor profiles.
func (repo *GormAdvisorRepo) GetAll() ([]models.AdvisorProfile, error) {
	var profiles []models.AdvisorProfile
	err := database.DB.Preload("ServiceTypes").Find(&profiles).Error
	return profiles, err
}

// GetByServiceType retrieves all advisors offering a given service type.
func (repo *GormAdvisorRepo) GetByServiceType(serviceType string) ([]models.AdvisorProfile, error) {
	var profiles []models.AdvisorProfile
	err := database.DB.Preload("ServiceTypes").
		Joins("JOIN advisor_service_types ast ON ast.advisor_profile_id = advisor_profiles.id").
		Joins("JOIN service_types st ON st.id = ast.service_type_id").
		Where("LOWER(st.name) = ?", strings.ToLower(serviceType)).
		Find(&profiles).Error
	return profiles, err
}

// Create inserts a new advisor profile record.
func (repo *GormAdvisorRepo) Create(profile *models.AdvisorProfile) error {
	return database.DB.Create(profile).Error
}

// Update saves the updated advisor profile record.
func (repo *GormAdvisorRepo) Update(profile *models.AdvisorProfile) error {
	return database.DB.Save(profile).Error
}

// Delete removes the advisor profile record by ID.
func (repo *GormAdvisorRepo) Delete(id uint) error {
	return database.DB.Delete(&models.AdvisorProfile{}, "id = ?", id).Error
}

// UpdateAverageRating writes the denormalized rating aggregate.
func (repo *GormAdvisorRepo) UpdateAverageRating(advisorID uint, rating float64) error {
	return database.DB.Model(&models.AdvisorProfile{}).
		Where("id = ?", advisorID).
		Update("average_rating", rating).Error
}

// GetShiftSchedule retrieves the advisor's working-shift configuration.
func (repo *GormAdvisorRepo) GetShiftSchedule(advisorID uint) (*models.ShiftSchedule, error) {
	var schedule models.ShiftSchedule
	err := database.DB.First(&schedule, "advisor_id = ?", advisorID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no shift schedule for advisor %d: %w", advisorID, err)
		}
		return nil, fmt.Errorf("failed to retrieve shift schedule for advisor %d: %w", advisorID, err)
	}
	return &schedule, nil
}

// SaveShiftSchedule inserts or updates the advisor's shift configuration.
func (repo *GormAdvisorRepo) SaveShiftSchedule(schedule *models.ShiftSchedule) error {
	var existing models.ShiftSchedule
	err := database.DB.First(&existing, "advisor_id = ?", schedule.AdvisorID).Error
	if err == nil {
		schedule.ID = existing.ID
		schedule.CreatedAt = existing.CreatedAt
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to look up shift schedule for advisor %d: %w", schedule.AdvisorID, err)
	}
	if err := database.DB.Save(schedule).Error; err != nil {
		return fmt.Errorf("failed to save shift schedule for advisor %d: %w", schedule.AdvisorID, err)
	}
	return nil
}

// ListServiceTypes retrieves all service type records.
func (repo *GormAdvisorRepo) ListServiceTypes() ([]models.ServiceType, error) {
	var types []models.ServiceType
	err := database.DB.Order("name").Find(&types).Error
	return types, err
}

// ReplaceServiceTypes replaces the advisor's offered service types.
func (repo *GormAdvisorRepo) ReplaceServiceTypes(profile *models.AdvisorProfile, typeIDs []uint) error {
	var types []models.ServiceType
	if len(typeIDs) > 0 {
		if err := database.DB.Find(&types, "id IN ?", typeIDs).Error; err != nil {
			return fmt.Errorf("failed to load service types: %w", err)
		}
	}
	return database.DB.Model(profile).Association("ServiceTypes").Replace(types)
}
