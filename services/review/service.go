// services/review/service.go
package review

import (
	"errors"
	"fmt"

	"myadvisor/database/repository"
	"myadvisor/models"
	"myadvisor/utils"

	"go.uber.org/zap"
)

var (
	// ErrInvalidRating signals a rating outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrNotReviewable signals that the appointment cannot be reviewed by
	// this user (not theirs, not completed, or already reviewed).
	ErrNotReviewable = errors.New("appointment cannot be reviewed")
)

// ReviewInput carries the fields of a new review.
type ReviewInput struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	ReviewText    string `json:"review_text"`
}

// ReviewService defines review operations.
type ReviewService interface {
	CreateReview(investorID uint, input ReviewInput) (*models.Review, error)
	ListByAdvisor(advisorID uint) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo            repository.ReviewRepository
	AppointmentRepo repository.AppointmentRepository
	AdvisorRepo     repository.AdvisorRepository
}

// CreateReview validates and stores a review for a completed appointment,
// then refreshes the advisor's denormalized average rating.
func (s *DefaultReviewService) CreateReview(investorID uint, input ReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	appointment, err := s.AppointmentRepo.GetByID(input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.InvestorID != investorID {
		return nil, fmt.Errorf("%w: not this investor's appointment", ErrNotReviewable)
	}
	if appointment.Status != models.AppointmentCompleted {
		return nil, fmt.Errorf("%w: appointment is %s", ErrNotReviewable, appointment.Status)
	}
	if existing, err := s.Repo.GetByAppointmentID(input.AppointmentID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: already reviewed", ErrNotReviewable)
	}

	review := &models.Review{
		AdvisorID:     appointment.AdvisorID,
		InvestorID:    investorID,
		AppointmentID: input.AppointmentID,
		Rating:        input.Rating,
		ReviewText:    input.ReviewText,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}

	avg, err := s.Repo.AverageRating(appointment.AdvisorID)
	if err != nil {
		utils.GetLogger().Warn("failed to recompute advisor rating",
			zap.Uint("advisorID", appointment.AdvisorID), zap.Error(err))
		return review, nil
	}
	if err := s.AdvisorRepo.UpdateAverageRating(appointment.AdvisorID, avg); err != nil {
		utils.GetLogger().Warn("failed to store advisor rating",
			zap.Uint("advisorID", appointment.AdvisorID), zap.Error(err))
	}
	return review, nil
}

// ListByAdvisor retrieves an advisor's reviews.
func (s *DefaultReviewService) ListByAdvisor(advisorID uint) ([]models.Review, error) {
	return s.Repo.ListByAdvisor(advisorID)
}
