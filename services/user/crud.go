// services/user/crud.go
package user

import (
	"fmt"

	"myadvisor/models"
	"myadvisor/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(id uint) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// UpdateUser updates the mutable account fields.
func (s *DefaultUserService) UpdateUser(id uint, name, phoneNumber string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		usr.Name = name
	}
	if phoneNumber != "" {
		usr.PhoneNumber = phoneNumber
	}
	if err := s.Repo.Update(usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// UpdateUserPassword verifies the current password and stores the new hash.
func (s *DefaultUserService) UpdateUserPassword(id uint, currentPassword, newPassword string) error {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("UpdateUserPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to update password, please try again")
	}
	usr.PasswordHash = string(hashed)
	return s.Repo.Update(usr)
}

// DeleteUser removes the account.
func (s *DefaultUserService) DeleteUser(id uint) error {
	return s.Repo.Delete(id)
}

// GetInvestorProfile retrieves the investor profile for a user.
func (s *DefaultUserService) GetInvestorProfile(userID uint) (*models.InvestorProfile, error) {
	return s.Repo.GetInvestorProfile(userID)
}

// SaveInvestorProfile creates or updates the investor profile for a user.
func (s *DefaultUserService) SaveInvestorProfile(userID uint, profile models.InvestorProfile) (*models.InvestorProfile, error) {
	existing, err := s.Repo.GetInvestorProfile(userID)
	if err == nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}
	profile.UserID = userID
	if err := s.Repo.SaveInvestorProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
