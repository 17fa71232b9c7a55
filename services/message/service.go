// services/message/service.go
package message

import (
	"errors"
	"fmt"
	"strings"

	"myadvisor/database/repository"
	"myadvisor/models"
)

// ErrEmptyMessage signals a blank message body.
var ErrEmptyMessage = errors.New("message content must not be empty")

// MessageService defines direct-messaging operations.
type MessageService interface {
	Send(senderID, recipientID uint, content string) (*models.Message, error)
	Conversation(userID, otherID uint) ([]models.Message, error)
}

// DefaultMessageService implements MessageService.
type DefaultMessageService struct {
	Repo     repository.MessageRepository
	UserRepo repository.UserRepository
}

// Send stores a message from sender to recipient.
func (s *DefaultMessageService) Send(senderID, recipientID uint, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}
	if senderID == recipientID {
		return nil, fmt.Errorf("cannot message yourself")
	}
	if _, err := s.UserRepo.GetByID(recipientID); err != nil {
		return nil, fmt.Errorf("recipient not found: %w", err)
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
	}
	if err := s.Repo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// Conversation returns the thread between the user and another party, marking
// the other party's messages as read.
func (s *DefaultMessageService) Conversation(userID, otherID uint) ([]models.Message, error) {
	messages, err := s.Repo.Conversation(userID, otherID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.MarkRead(userID, otherID); err != nil {
		return nil, err
	}
	return messages, nil
}
