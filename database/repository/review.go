// database/repository/review.go
package repository

import (
	"fmt"

	"myadvisor/database"
	"myadvisor/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByAppointmentID(appointmentID uint) (*models.Review, error)
	ListByAdvisor(advisorID uint) ([]models.Review, error)
	AverageRating(advisorID uint) (float64, error)
	Delete(id uint) error
}

// GormReviewRepo implements ReviewRepository using GORM.
type GormReviewRepo struct{}

func NewGormReviewRepo() ReviewRepository {
	return &GormReviewRepo{}
}

// Create inserts a new review record.
func (repo *GormReviewRepo) Create(review *models.Review) error {
	if err := database.DB.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByAppointmentID retrieves the review left for an appointment, if any.
func (repo *GormReviewRepo) GetByAppointmentID(appointmentID uint) (*models.Review, error) {
	var review models.Review
	err := database.DB.First(&review, "appointment_id = ?", appointmentID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve review for appointment %d: %w", appointmentID, err)
	}
	return &review, nil
}

// ListByAdvisor retrieves an advisor's reviews, newest first.
func (repo *GormReviewRepo) ListByAdvisor(advisorID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := database.DB.
		Where("advisor_id = ?", advisorID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// AverageRating computes the advisor's mean rating (0 when unreviewed).
func (repo *GormReviewRepo) AverageRating(advisorID uint) (float64, error) {
	var avg float64
	err := database.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0)").
		Where("advisor_id = ?", advisorID).
		Scan(&avg).Error
	return avg, err
}

// Delete removes the review record by ID.
func (repo *GormReviewRepo) Delete(id uint) error {
	return database.DB.Delete(&models.Review{}, "id = ?", id).Error
}
