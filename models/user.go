// models/user.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Account roles.
const (
	RoleInvestor = "investor"
	RoleAdvisor  = "advisor"
	RoleAdmin    = "admin"
)

// User represents a platform account (investor or advisor).
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `json:"name"`
	Email         string         `gorm:"uniqueIndex" json:"email"`
	PasswordHash  string         `json:"-"` // Store hashed passwords
	PhoneNumber   string         `json:"phone_number"`
	Role          string         `gorm:"index;default:'investor'" json:"role"`
	AuthTokenHash string         `gorm:"index" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// InvestorProfile holds investor-side profile details.
type InvestorProfile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	NetWorthRange string    `json:"net_worth_range"`
	IncomeRange   string    `json:"income_range"`
	Geography     string    `json:"geography"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
