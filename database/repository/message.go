// database/repository/message.go
package repository

import (
	"fmt"

	"myadvisor/database"
	"myadvisor/models"
)

// MessageRepository defines the interface for message data access.
type MessageRepository interface {
	Create(message *models.Message) error
	// Conversation returns all messages between two users, oldest first.
	Conversation(userA, userB uint) ([]models.Message, error)
	MarkRead(recipientID, senderID uint) error
}

// GormMessageRepo implements MessageRepository using GORM.
type GormMessageRepo struct{}

func NewGormMessageRepo() MessageRepository {
	return &GormMessageRepo{}
}

// Create inserts a new message record.
func (repo *GormMessageRepo) Create(message *models.Message) error {
	if err := database.DB.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// Conversation returns the message thread between two users.
func (repo *GormMessageRepo) Conversation(userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	err := database.DB.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("created_at").
		Find(&messages).Error
	return messages, err
}

// MarkRead flags all messages from sender to recipient as read.
func (repo *GormMessageRepo) MarkRead(recipientID, senderID uint) error {
	return database.DB.Model(&models.Message{}).
		Where("recipient_id = ? AND sender_id = ? AND read = ?", recipientID, senderID, false).
		Update("read", true).Error
}
