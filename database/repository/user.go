// database/repository/user.go
package repository

import (
	"fmt"

	"myadvisor/database"
	"myadvisor/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(hash string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) error
	GetAll() ([]models.User, error)
	CountByRole(role string) (int64, error)
	GetInvestorProfile(userID uint) (*models.InvestorProfile, error)
	SaveInvestorProfile(profile *models.InvestorProfile) error
}

// GormUserRepo implements UserRepository using GORM.
type GormUserRepo struct{}

func NewGormUserRepo() UserRepository {
	return &GormUserRepo{}
}

// GetByID retrieves a user by their ID.
func (repo *GormUserRepo) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := database.DB.First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with id %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to retrieve user with id %d: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email.
func (repo *GormUserRepo) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := database.DB.First(&user, "email = ?", email).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with email %s not found: %w", email, err)
		}
		return nil, fmt.Errorf("failed to retrieve user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetByTokenHash retrieves a user by the hash of their current auth token.
func (repo *GormUserRepo) GetByTokenHash(hash string) (*models.User, error) {
	var user models.User
	err := database.DB.First(&user, "auth_token_hash = ?", hash).Error
	if err != nil {
		return nil, fmt.Errorf("no user matches the supplied token: %w", err)
	}
	return &user, nil
}

// Create inserts a new user record into the database.
func (repo *GormUserRepo) Create(user *models.User) error {
	if err := database.DB.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update saves the updated user record.
func (repo *GormUserRepo) Update(user *models.User) error {
	if err := database.DB.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user with id %d: %w", user.ID, err)
	}
	return nil
}

// Delete removes the user record by ID.
func (repo *GormUserRepo) Delete(id uint) error {
	if err := database.DB.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete user with id %d: %w", id, err)
	}
	return nil
}

// GetAll retrieves all user records.
func (repo *GormUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	err := database.DB.Find(&users).Error
	return users, err
}

// CountByRole counts non-deleted users with the given role.
func (repo *GormUserRepo) CountByRole(role string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// GetInvestorProfile retrieves the investor profile for a user.
func (repo *GormUserRepo) GetInvestorProfile(userID uint) (*models.InvestorProfile, error) {
	var profile models.InvestorProfile
	err := database.DB.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("investor profile for user %d not found: %w", userID, err)
	}
	return &profile, nil
}

// SaveInvestorProfile inserts or updates an investor profile.
func (repo *GormUserRepo) SaveInvestorProfile(profile *models.InvestorProfile) error {
	if err := database.DB.Save(profile).Error; err != nil {
		return fmt.Errorf("failed to save investor profile for user %d: %w", profile.UserID, err)
	}
	return nil
}
