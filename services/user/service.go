// services/user/service.go
package user

import (
	"myadvisor/database/repository"
	"myadvisor/models"
)

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegistrationRequest carries the fields required to create an account.
type RegistrationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
}

// UserService defines account and investor-profile operations.
type UserService interface {
	Register(req RegistrationRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID uint) error

	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(id uint, name, phoneNumber string) (*models.User, error)
	UpdateUserPassword(id uint, currentPassword, newPassword string) error
	DeleteUser(id uint) error

	GetInvestorProfile(userID uint) (*models.InvestorProfile, error)
	SaveInvestorProfile(userID uint, profile models.InvestorProfile) (*models.InvestorProfile, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo repository.UserRepository
}
