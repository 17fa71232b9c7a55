// services/advisor/service.go
package advisor

import (
	"errors"
	"fmt"
	"time"

	"myadvisor/database/repository"
	"myadvisor/models"
	"myadvisor/services/booking"
	"myadvisor/utils"

	"go.uber.org/zap"
)

// ErrInvalidShift signals a shift configuration that violates the schedule
// invariants (start >= end, or shift 2 overlapping shift 1).
var ErrInvalidShift = errors.New("invalid shift configuration")

// ProfileInput carries the editable advisor profile fields.
type ProfileInput struct {
	ExperienceYrs  int    `json:"experience_years"`
	ContactInfo    string `json:"contact_information"`
	OfficeAddress  string `json:"office_address"`
	ServiceTypeIDs []uint `json:"service_type_ids"`
}

// SearchResult pairs an advisor with their free windows for the requested range.
type SearchResult struct {
	Advisor      models.AdvisorProfile `json:"advisor"`
	Availability models.FreeWindowSet  `json:"availability"`
}

// AdvisorService defines advisor profile, schedule and search operations.
type AdvisorService interface {
	GetProfile(advisorID uint) (*models.AdvisorProfile, error)
	GetProfileByUserID(userID uint) (*models.AdvisorProfile, error)
	SaveProfile(userID uint, input ProfileInput) (*models.AdvisorProfile, error)
	GetSchedule(userID uint) (*models.ShiftSchedule, error)
	SaveSchedule(userID uint, schedule models.ShiftSchedule) (*models.ShiftSchedule, error)
	ListServiceTypes() ([]models.ServiceType, error)
	Search(serviceType string, rangeStart, rangeEnd time.Time) ([]SearchResult, error)
}

// DefaultAdvisorService implements AdvisorService.
type DefaultAdvisorService struct {
	Repo       repository.AdvisorRepository
	BookingSvc booking.BookingService
}

// GetProfile retrieves an advisor profile by its ID.
func (s *DefaultAdvisorService) GetProfile(advisorID uint) (*models.AdvisorProfile, error) {
	return s.Repo.GetByID(advisorID)
}

// GetProfileByUserID retrieves the advisor profile owned by a user.
func (s *DefaultAdvisorService) GetProfileByUserID(userID uint) (*models.AdvisorProfile, error) {
	return s.Repo.GetByUserID(userID)
}

// SaveProfile creates or updates the advisor profile for a user.
func (s *DefaultAdvisorService) SaveProfile(userID uint, input ProfileInput) (*models.AdvisorProfile, error) {
	profile, err := s.Repo.GetByUserID(userID)
	if err != nil {
		profile = &models.AdvisorProfile{UserID: userID}
		if err := s.Repo.Create(profile); err != nil {
			return nil, fmt.Errorf("failed to create advisor profile: %w", err)
		}
	}

	profile.ExperienceYrs = input.ExperienceYrs
	profile.ContactInfo = input.ContactInfo
	profile.OfficeAddress = input.OfficeAddress
	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	if input.ServiceTypeIDs != nil {
		if err := s.Repo.ReplaceServiceTypes(profile, input.ServiceTypeIDs); err != nil {
			return nil, err
		}
	}
	return s.Repo.GetByUserID(userID)
}

// GetSchedule retrieves the shift configuration for the advisor owned by a user.
func (s *DefaultAdvisorService) GetSchedule(userID uint) (*models.ShiftSchedule, error) {
	profile, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetShiftSchedule(profile.ID)
}

// SaveSchedule validates and stores the advisor's working shifts.
func (s *DefaultAdvisorService) SaveSchedule(userID uint, schedule models.ShiftSchedule) (*models.ShiftSchedule, error) {
	profile, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	schedule.AdvisorID = profile.ID
	if err := s.Repo.SaveShiftSchedule(&schedule); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("shift schedule saved", zap.Uint("advisorID", profile.ID))
	return &schedule, nil
}

// ListServiceTypes retrieves the available advisory service categories.
func (s *DefaultAdvisorService) ListServiceTypes() ([]models.ServiceType, error) {
	return s.Repo.ListServiceTypes()
}

// Search finds advisors by service type and attaches each advisor's free
// windows for the requested range. Advisors without a shift schedule are
// returned with empty availability.
func (s *DefaultAdvisorService) Search(serviceType string, rangeStart, rangeEnd time.Time) ([]SearchResult, error) {
	logger := utils.GetLogger()

	var profiles []models.AdvisorProfile
	var err error
	if serviceType == "" {
		profiles, err = s.Repo.GetAll()
	} else {
		profiles, err = s.Repo.GetByServiceType(serviceType)
	}
	if err != nil {
		return nil, fmt.Errorf("advisor search failed: %w", err)
	}

	results := make([]SearchResult, 0, len(profiles))
	for _, profile := range profiles {
		windows, err := s.BookingSvc.GetFreeWindows(profile.ID, rangeStart, rangeEnd)
		if err != nil {
			if errors.Is(err, booking.ErrInvalidRange) {
				return nil, err
			}
			// No schedule yet: list the advisor without availability.
			logger.Debug("no availability for advisor",
				zap.Uint("advisorID", profile.ID), zap.Error(err))
			windows = models.FreeWindowSet{}
		}
		results = append(results, SearchResult{Advisor: profile, Availability: windows})
	}
	return results, nil
}

// validateSchedule enforces the shift invariants: within a shift start < end,
// and shift 2 (when present) must not overlap shift 1.
func validateSchedule(schedule models.ShiftSchedule) error {
	s1start, s1end, err := shiftBounds(schedule.Shift1Start, schedule.Shift1End)
	if err != nil {
		return err
	}

	if schedule.Shift2Start != nil || schedule.Shift2End != nil {
		if !schedule.HasSecondShift() {
			return fmt.Errorf("%w: shift 2 requires both start and end", ErrInvalidShift)
		}
		s2start, s2end, err := shiftBounds(*schedule.Shift2Start, *schedule.Shift2End)
		if err != nil {
			return err
		}
		if s2start < s1end && s1start < s2end {
			return fmt.Errorf("%w: shift 2 overlaps shift 1", ErrInvalidShift)
		}
	}
	return nil
}

// shiftBounds parses a shift's bounds into minutes from midnight.
func shiftBounds(startClock, endClock string) (int, int, error) {
	start, err := clockMinutes(startClock)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidShift, err)
	}
	end, err := clockMinutes(endClock)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidShift, err)
	}
	if start >= end {
		return 0, 0, fmt.Errorf("%w: shift start %s is not before end %s", ErrInvalidShift, startClock, endClock)
	}
	return start, end, nil
}

func clockMinutes(clock string) (int, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", clock)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}
