// services/user/auth.go
package user

import (
	"context"
	"fmt"
	"time"

	"myadvisor/models"
	"myadvisor/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 24 * time.Hour

// Register validates the request, creates the account, and signs the caller in.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	role := req.Role
	if role == "" {
		role = models.RoleInvestor
	}
	if role != models.RoleInvestor && role != models.RoleAdvisor {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	if existing, _ := s.Repo.GetByEmail(req.Email); existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
	}
	if err := s.Repo.Create(&userObj); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(&userObj)
}

// Authenticate verifies the credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueToken(usr)
}

// RevokeAuthToken invalidates the user's current token.
func (s *DefaultUserService) RevokeAuthToken(userID uint) error {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return err
	}
	if usr.AuthTokenHash != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := utils.GetAuthCacheClient().Del(ctx, authCacheKey(usr.AuthTokenHash)).Err(); err != nil {
			utils.GetLogger().Warn("RevokeAuthToken: failed to drop cached session", zap.Error(err))
		}
	}
	usr.AuthTokenHash = ""
	return s.Repo.Update(usr)
}

// issueToken signs a JWT, persists its hash and primes the session cache.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(fmt.Sprintf("%d", usr.ID), usr.Email, usr.Role, authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	usr.AuthTokenHash = utils.HashToken(token)
	if err := s.Repo.Update(usr); err != nil {
		return nil, fmt.Errorf("failed to persist auth token: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Set(ctx, authCacheKey(usr.AuthTokenHash), usr.ID, authTokenTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache session", zap.Error(err))
	}

	return &AuthResponse{Token: token, User: *usr}, nil
}

func authCacheKey(tokenHash string) string {
	return utils.AuthCachePrefix + tokenHash
}

// VerifyPasswordComplexity enforces the minimum password rules.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return nil
}
