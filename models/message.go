package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a direct message between an investor and an advisor.
type Message struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SenderID    uint           `gorm:"index;not null" json:"sender_id"`
	RecipientID uint           `gorm:"index;not null" json:"recipient_id"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Read        bool           `gorm:"default:false" json:"read"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
